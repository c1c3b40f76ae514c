package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"jobmarket-service/internal/auth"
	"jobmarket-service/internal/config"
	"jobmarket-service/internal/db"
	"jobmarket-service/internal/handlers"
	"jobmarket-service/internal/middleware"
	"jobmarket-service/internal/observability"
	"jobmarket-service/internal/rabbitmq"
	"jobmarket-service/internal/repositories"
	"jobmarket-service/internal/storage"
	"jobmarket-service/internal/telemetry"
	"jobmarket-service/internal/ws"
)

const serviceName = "jobmarket-service"

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}

	ctx := context.Background()
	shutdownTracing, err := observability.SetupTracing(ctx, serviceName, cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("failed to set up tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(ctx); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	publisher := rabbitmq.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	defer publisher.Close()
	log.Printf("audit publisher mode=%s", rabbitmq.PublisherMode(publisher))
	auditEmitter := telemetry.NewAuditEmitter(publisher, "audit.logs", serviceName, cfg.Environment)

	if eventsPublisher, err := observability.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange); err != nil {
		log.Printf("event publishing disabled: %v", err)
	} else {
		observability.SetPublisher(eventsPublisher)
		defer eventsPublisher.Close()
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	var revoker auth.TokenRevoker
	if cfg.RedisAddr != "" {
		revoker = auth.NewRedisTokenRevoker(cfg.RedisAddr, cfg.RedisPassword)
	} else {
		log.Printf("redis disabled, revoked tokens kept in memory")
		revoker = auth.NewMemoryTokenRevoker()
	}

	var blobs storage.BlobStore
	if cfg.MinioEndpoint != "" {
		blobs, err = storage.NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccess, cfg.MinioSecret, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			log.Fatalf("failed to connect to minio: %v", err)
		}
	} else {
		blobs, err = storage.NewDiskStore(cfg.UploadDir)
		if err != nil {
			log.Fatalf("failed to prepare upload dir: %v", err)
		}
	}

	userRepo := repositories.NewUserRepo(database)
	fileRepo := repositories.NewFileRepo(database)
	jobRepo := repositories.NewJobRepo(database)
	applicationRepo := repositories.NewApplicationRepo(database)
	paymentRepo := repositories.NewPaymentRepo(database)
	roomRepo := repositories.NewChatRoomRepo(database)
	messageRepo := repositories.NewMessageRepo(database)

	hub := ws.NewHub()

	authHandler := handlers.NewAuthHandler(userRepo, tokens, revoker)
	userHandler := handlers.NewUserHandler(userRepo, fileRepo)
	fileHandler := handlers.NewFileHandler(fileRepo, blobs)
	jobHandler := handlers.NewJobHandler(jobRepo, auditEmitter)
	applicationHandler := handlers.NewApplicationHandler(applicationRepo, jobRepo, auditEmitter)
	paymentHandler := handlers.NewPaymentHandler(paymentRepo, jobRepo, auditEmitter)
	chatHandler := handlers.NewChatHandler(roomRepo, messageRepo, userRepo, jobRepo, hub, auditEmitter)
	pageHandler := handlers.NewPageHandler(jobRepo, roomRepo)

	roomWS := ws.NewRoomWebSocketHandler(hub, roomRepo, tokens)

	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(serviceName))
	router.Use(observability.HTTPMetricsMiddleware())
	router.LoadHTMLGlob("web/templates/*.html")

	authMiddleware := middleware.AuthMiddleware(tokens, revoker)
	adminOnly := middleware.RequireAdmin()

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/auth/register", authHandler.Register)
	router.POST("/auth/login", authHandler.Login)
	router.POST("/auth/logout", authMiddleware, authHandler.Logout)

	router.GET("/users/me", authMiddleware, userHandler.Me)
	router.PUT("/users/me", authMiddleware, userHandler.Update)
	router.PUT("/users/me/avatar", authMiddleware, userHandler.SetAvatar)
	router.GET("/users/:user_id", authMiddleware, userHandler.Get)
	router.GET("/admin/users", authMiddleware, adminOnly, userHandler.List)

	router.POST("/jobs", authMiddleware, jobHandler.Create)
	router.GET("/jobs", jobHandler.List)
	router.GET("/jobs/:announcement_id", jobHandler.Get)
	router.PUT("/jobs/:announcement_id", authMiddleware, jobHandler.Update)
	router.DELETE("/jobs/:announcement_id", authMiddleware, jobHandler.Delete)
	router.GET("/users/:user_id/jobs", authMiddleware, jobHandler.ListByOwner)

	router.POST("/jobs/:announcement_id/applications", authMiddleware, applicationHandler.Create)
	router.GET("/jobs/:announcement_id/applications", authMiddleware, applicationHandler.ListByAnnouncement)
	router.GET("/applications/mine", authMiddleware, applicationHandler.ListMine)
	router.PATCH("/applications/:application_id", authMiddleware, applicationHandler.UpdateStatus)

	router.POST("/files", authMiddleware, fileHandler.Upload)
	router.GET("/files/mine", authMiddleware, fileHandler.ListMine)
	router.GET("/files/:file_id", authMiddleware, fileHandler.Get)
	router.GET("/files/:file_id/content", authMiddleware, fileHandler.Download)
	router.DELETE("/files/:file_id", authMiddleware, fileHandler.Delete)

	router.POST("/payments", authMiddleware, paymentHandler.Create)
	router.GET("/payments/mine", authMiddleware, paymentHandler.ListMine)
	router.GET("/payments/:payment_id", authMiddleware, paymentHandler.Get)
	router.POST("/payments/:payment_id/confirm", authMiddleware, adminOnly, paymentHandler.Confirm)

	router.POST("/chat/rooms", authMiddleware, chatHandler.CreateRoom)
	router.GET("/chat/rooms", authMiddleware, adminOnly, chatHandler.ListRooms)
	router.GET("/chat/rooms/page", authMiddleware, adminOnly, chatHandler.ListRoomsPage)
	router.GET("/chat/rooms/mine", authMiddleware, chatHandler.ListRooms)
	router.GET("/chat/rooms/mine/page", authMiddleware, chatHandler.ListRoomsPage)
	router.GET("/chat/rooms/:room_id", authMiddleware, chatHandler.GetRoom)
	router.DELETE("/chat/rooms/:room_id", authMiddleware, chatHandler.DeleteRoom)
	router.GET("/chat/rooms/:room_id/messages", authMiddleware, chatHandler.ListMessages)
	router.GET("/chat/rooms/:room_id/messages/page", authMiddleware, chatHandler.ListMessagesPage)
	router.POST("/chat/rooms/:room_id/messages", authMiddleware, chatHandler.PostMessage)
	router.GET("/chat/messages/:message_id", authMiddleware, chatHandler.GetMessage)
	router.DELETE("/chat/messages/:message_id", authMiddleware, chatHandler.DeleteMessage)
	router.GET("/chat/recruiters/:recruiter_id/rooms", authMiddleware, chatHandler.ListRooms)
	router.GET("/chat/recruiters/:recruiter_id/rooms/page", authMiddleware, chatHandler.ListRoomsPage)
	router.GET("/chat/applicants/:applicant_id/rooms", authMiddleware, chatHandler.ListRooms)
	router.GET("/chat/applicants/:applicant_id/rooms/page", authMiddleware, chatHandler.ListRoomsPage)
	router.GET("/chat/announcements/:announcement_id/rooms", authMiddleware, chatHandler.ListRooms)
	router.GET("/chat/announcements/:announcement_id/rooms/page", authMiddleware, chatHandler.ListRoomsPage)

	router.GET("/ws/chat/rooms/:room_id", roomWS.Handle)

	router.GET("/pages/jobs", pageHandler.JobsPage)
	router.GET("/pages/chat/rooms/:room_id", pageHandler.RoomPage)

	handlers.RegisterDebugRoutes(router, auditEmitter, cfg.DebugRoutes)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
