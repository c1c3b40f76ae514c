package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobmarket-service/internal/mocks"
	"jobmarket-service/internal/models"
	"jobmarket-service/internal/pagination"
	"jobmarket-service/internal/repositories"
	"jobmarket-service/internal/ws"
)

func setupChatRouter(handler *ChatHandler, userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	})
	r.POST("/chat/rooms", handler.CreateRoom)
	r.GET("/chat/rooms", handler.ListRooms)
	r.GET("/chat/rooms/page", handler.ListRoomsPage)
	r.GET("/chat/rooms/mine", handler.ListRooms)
	r.GET("/chat/rooms/mine/page", handler.ListRoomsPage)
	r.GET("/chat/recruiters/:recruiter_id/rooms", handler.ListRooms)
	r.GET("/chat/recruiters/:recruiter_id/rooms/page", handler.ListRoomsPage)
	r.GET("/chat/applicants/:applicant_id/rooms/page", handler.ListRoomsPage)
	r.GET("/chat/announcements/:announcement_id/rooms/page", handler.ListRoomsPage)
	r.GET("/chat/rooms/:room_id", handler.GetRoom)
	r.DELETE("/chat/rooms/:room_id", handler.DeleteRoom)
	r.GET("/chat/rooms/:room_id/messages", handler.ListMessages)
	r.GET("/chat/rooms/:room_id/messages/page", handler.ListMessagesPage)
	r.POST("/chat/rooms/:room_id/messages", handler.PostMessage)
	r.GET("/chat/messages/:message_id", handler.GetMessage)
	r.DELETE("/chat/messages/:message_id", handler.DeleteMessage)
	return r
}

func newChatHandler(roomRepo *mocks.ChatRoomRepositoryMock, messageRepo *mocks.MessageRepositoryMock, userRepo *mocks.UserRepositoryMock, jobRepo *mocks.JobRepositoryMock) *ChatHandler {
	return NewChatHandler(roomRepo, messageRepo, userRepo, jobRepo, ws.NewHub(), nil)
}

func TestCreateRoomSuccess(t *testing.T) {
	roomRepo := new(mocks.ChatRoomRepositoryMock)
	userRepo := new(mocks.UserRepositoryMock)
	jobRepo := new(mocks.JobRepositoryMock)
	handler := newChatHandler(roomRepo, new(mocks.MessageRepositoryMock), userRepo, jobRepo)
	router := setupChatRouter(handler, 1)

	userRepo.On("FindByID", mock.Anything, 2).Return(models.User{ID: 2}, nil).Once()
	jobRepo.On("FindByIDWithOwner", mock.Anything, 5).Return(models.AnnouncementDetail{
		JobAnnouncement: models.JobAnnouncement{ID: 5, OwnerID: 1},
	}, nil).Once()
	roomRepo.On("Create", mock.Anything, 1, 2, 5).Return(models.ChatRoom{
		ID: 10, RecruiterID: 1, ApplicantID: 2, AnnouncementID: 5,
	}, nil).Once()

	body := bytes.NewBufferString(`{"applicant_id":2,"job_announcement_id":5}`)
	req := httptest.NewRequest(http.MethodPost, "/chat/rooms", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var room models.ChatRoom
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&room))
	assert.Equal(t, 10, room.ID)
	assert.Equal(t, 1, room.RecruiterID)
	assert.Equal(t, 2, room.ApplicantID)
	roomRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	jobRepo.AssertExpectations(t)
}

func TestCreateRoomWithSelf(t *testing.T) {
	roomRepo := new(mocks.ChatRoomRepositoryMock)
	handler := newChatHandler(roomRepo, new(mocks.MessageRepositoryMock), new(mocks.UserRepositoryMock), new(mocks.JobRepositoryMock))
	router := setupChatRouter(handler, 1)

	body := bytes.NewBufferString(`{"applicant_id":1,"job_announcement_id":5}`)
	req := httptest.NewRequest(http.MethodPost, "/chat/rooms", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	roomRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateRoomApplicantMissing(t *testing.T) {
	userRepo := new(mocks.UserRepositoryMock)
	handler := newChatHandler(new(mocks.ChatRoomRepositoryMock), new(mocks.MessageRepositoryMock), userRepo, new(mocks.JobRepositoryMock))
	router := setupChatRouter(handler, 1)

	userRepo.On("FindByID", mock.Anything, 99).Return(models.User{}, repositories.ErrUserNotFound).Once()

	body := bytes.NewBufferString(`{"applicant_id":99,"job_announcement_id":5}`)
	req := httptest.NewRequest(http.MethodPost, "/chat/rooms", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	userRepo.AssertExpectations(t)
}

func TestCreateRoomNotAnnouncementOwner(t *testing.T) {
	roomRepo := new(mocks.ChatRoomRepositoryMock)
	userRepo := new(mocks.UserRepositoryMock)
	jobRepo := new(mocks.JobRepositoryMock)
	handler := newChatHandler(roomRepo, new(mocks.MessageRepositoryMock), userRepo, jobRepo)
	router := setupChatRouter(handler, 3)

	userRepo.On("FindByID", mock.Anything, 2).Return(models.User{ID: 2}, nil).Once()
	jobRepo.On("FindByIDWithOwner", mock.Anything, 5).Return(models.AnnouncementDetail{
		JobAnnouncement: models.JobAnnouncement{ID: 5, OwnerID: 1},
	}, nil).Once()

	body := bytes.NewBufferString(`{"applicant_id":2,"job_announcement_id":5}`)
	req := httptest.NewRequest(http.MethodPost, "/chat/rooms", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	roomRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateRoomDuplicate(t *testing.T) {
	roomRepo := new(mocks.ChatRoomRepositoryMock)
	userRepo := new(mocks.UserRepositoryMock)
	jobRepo := new(mocks.JobRepositoryMock)
	handler := newChatHandler(roomRepo, new(mocks.MessageRepositoryMock), userRepo, jobRepo)
	router := setupChatRouter(handler, 1)

	userRepo.On("FindByID", mock.Anything, 2).Return(models.User{ID: 2}, nil).Once()
	jobRepo.On("FindByIDWithOwner", mock.Anything, 5).Return(models.AnnouncementDetail{
		JobAnnouncement: models.JobAnnouncement{ID: 5, OwnerID: 1},
	}, nil).Once()
	roomRepo.On("Create", mock.Anything, 1, 2, 5).Return(models.ChatRoom{}, repositories.ErrDuplicate).Once()

	body := bytes.NewBufferString(`{"applicant_id":2,"job_announcement_id":5}`)
	req := httptest.NewRequest(http.MethodPost, "/chat/rooms", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	roomRepo.AssertExpectations(t)
}

func TestGetRoomNotFound(t *testing.T) {
	roomRepo := new(mocks.ChatRoomRepositoryMock)
	handler := newChatHandler(roomRepo, new(mocks.MessageRepositoryMock), new(mocks.UserRepositoryMock), new(mocks.JobRepositoryMock))
	router := setupChatRouter(handler, 1)

	roomRepo.On("GetDetail", mock.Anything, 42).Return(models.RoomDetail{}, repositories.ErrRoomNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/chat/rooms/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	roomRepo.AssertExpectations(t)
}

func TestListRoomsMine(t *testing.T) {
	roomRepo := new(mocks.ChatRoomRepositoryMock)
	handler := newChatHandler(roomRepo, new(mocks.MessageRepositoryMock), new(mocks.UserRepositoryMock), new(mocks.JobRepositoryMock))
	router := setupChatRouter(handler, 7)

	roomRepo.On("List", mock.Anything, repositories.RoomFilter{MemberID: 7}).Return([]models.RoomDetail{
		{ChatRoom: models.ChatRoom{ID: 1, RecruiterID: 7, ApplicantID: 2}},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/chat/rooms/mine", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	roomRepo.AssertExpectations(t)
}

func TestListAllRooms(t *testing.T) {
	roomRepo := new(mocks.ChatRoomRepositoryMock)
	handler := newChatHandler(roomRepo, new(mocks.MessageRepositoryMock), new(mocks.UserRepositoryMock), new(mocks.JobRepositoryMock))
	router := setupChatRouter(handler, 7)

	// no route param and not "mine": the unfiltered listing
	roomRepo.On("List", mock.Anything, repositories.RoomFilter{}).Return([]models.RoomDetail{
		{ChatRoom: models.ChatRoom{ID: 1, RecruiterID: 7, ApplicantID: 2}},
		{ChatRoom: models.ChatRoom{ID: 2, RecruiterID: 3, ApplicantID: 4}},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/chat/rooms", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	roomRepo.AssertExpectations(t)
}

func TestListAllRoomsPage(t *testing.T) {
	roomRepo := new(mocks.ChatRoomRepositoryMock)
	handler := newChatHandler(roomRepo, new(mocks.MessageRepositoryMock), new(mocks.UserRepositoryMock), new(mocks.JobRepositoryMock))
	router := setupChatRouter(handler, 7)

	roomRepo.On("ListPage", mock.Anything, repositories.RoomFilter{}, pagination.Params{Page: 1, Limit: 10}).
		Return([]models.RoomDetail{
			{ChatRoom: models.ChatRoom{ID: 1, RecruiterID: 7, ApplicantID: 2}},
		}, 1, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/chat/rooms/page", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var page pagination.Page[models.RoomDetail]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	assert.Equal(t, 1, page.Meta.TotalItems)
	roomRepo.AssertExpectations(t)
}

func TestListRoomsPageByRecruiter(t *testing.T) {
	roomRepo := new(mocks.ChatRoomRepositoryMock)
	handler := newChatHandler(roomRepo, new(mocks.MessageRepositoryMock), new(mocks.UserRepositoryMock), new(mocks.JobRepositoryMock))
	router := setupChatRouter(handler, 7)

	roomRepo.On("ListPage", mock.Anything, repositories.RoomFilter{RecruiterID: 3}, pagination.Params{Page: 2, Limit: 5}).
		Return([]models.RoomDetail{
			{ChatRoom: models.ChatRoom{ID: 6, RecruiterID: 3, ApplicantID: 4}},
		}, 6, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/chat/recruiters/3/rooms/page?page=2&limit=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var page pagination.Page[models.RoomDetail]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	assert.Equal(t, 2, page.Meta.TotalPages)
	assert.Equal(t, 2, page.Meta.CurrentPage)
	roomRepo.AssertExpectations(t)
}

func TestListRoomsPageByApplicant(t *testing.T) {
	roomRepo := new(mocks.ChatRoomRepositoryMock)
	handler := newChatHandler(roomRepo, new(mocks.MessageRepositoryMock), new(mocks.UserRepositoryMock), new(mocks.JobRepositoryMock))
	router := setupChatRouter(handler, 7)

	roomRepo.On("ListPage", mock.Anything, repositories.RoomFilter{ApplicantID: 4}, pagination.Params{Page: 1, Limit: 10}).
		Return([]models.RoomDetail{}, 0, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/chat/applicants/4/rooms/page", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	roomRepo.AssertExpectations(t)
}

func TestListRoomsPageByAnnouncement(t *testing.T) {
	roomRepo := new(mocks.ChatRoomRepositoryMock)
	handler := newChatHandler(roomRepo, new(mocks.MessageRepositoryMock), new(mocks.UserRepositoryMock), new(mocks.JobRepositoryMock))
	router := setupChatRouter(handler, 7)

	roomRepo.On("ListPage", mock.Anything, repositories.RoomFilter{AnnouncementID: 9}, pagination.Params{Page: 1, Limit: 10}).
		Return([]models.RoomDetail{
			{ChatRoom: models.ChatRoom{ID: 11, AnnouncementID: 9}},
		}, 1, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/chat/announcements/9/rooms/page", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	roomRepo.AssertExpectations(t)
}

func TestDeleteRoomByParticipant(t *testing.T) {
	roomRepo := new(mocks.ChatRoomRepositoryMock)
	handler := newChatHandler(roomRepo, new(mocks.MessageRepositoryMock), new(mocks.UserRepositoryMock), new(mocks.JobRepositoryMock))
	router := setupChatRouter(handler, 2)

	roomRepo.On("Get", mock.Anything, 10).Return(models.ChatRoom{
		ID: 10, RecruiterID: 1, ApplicantID: 2,
	}, nil).Once()
	roomRepo.On("Delete", mock.Anything, 10).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/chat/rooms/10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	roomRepo.AssertExpectations(t)
}

func TestDeleteRoomByOutsider(t *testing.T) {
	roomRepo := new(mocks.ChatRoomRepositoryMock)
	handler := newChatHandler(roomRepo, new(mocks.MessageRepositoryMock), new(mocks.UserRepositoryMock), new(mocks.JobRepositoryMock))
	router := setupChatRouter(handler, 9)

	roomRepo.On("Get", mock.Anything, 10).Return(models.ChatRoom{
		ID: 10, RecruiterID: 1, ApplicantID: 2,
	}, nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/chat/rooms/10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	roomRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPostMessageAsParticipant(t *testing.T) {
	roomRepo := new(mocks.ChatRoomRepositoryMock)
	messageRepo := new(mocks.MessageRepositoryMock)
	handler := newChatHandler(roomRepo, messageRepo, new(mocks.UserRepositoryMock), new(mocks.JobRepositoryMock))
	router := setupChatRouter(handler, 2)

	roomRepo.On("Get", mock.Anything, 10).Return(models.ChatRoom{
		ID: 10, RecruiterID: 1, ApplicantID: 2,
	}, nil).Once()
	messageRepo.On("Create", mock.Anything, 10, 2, "hello").Return(models.Message{
		ID: 100, RoomID: 10, SenderID: 2, Content: "hello",
	}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/chat/rooms/10/messages", bytes.NewBufferString(`{"content":"hello"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	roomRepo.AssertExpectations(t)
	messageRepo.AssertExpectations(t)
}

func TestPostMessageAsOutsider(t *testing.T) {
	roomRepo := new(mocks.ChatRoomRepositoryMock)
	messageRepo := new(mocks.MessageRepositoryMock)
	handler := newChatHandler(roomRepo, messageRepo, new(mocks.UserRepositoryMock), new(mocks.JobRepositoryMock))
	router := setupChatRouter(handler, 9)

	roomRepo.On("Get", mock.Anything, 10).Return(models.ChatRoom{
		ID: 10, RecruiterID: 1, ApplicantID: 2,
	}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/chat/rooms/10/messages", bytes.NewBufferString(`{"content":"hi"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPostMessageEmptyContent(t *testing.T) {
	roomRepo := new(mocks.ChatRoomRepositoryMock)
	messageRepo := new(mocks.MessageRepositoryMock)
	handler := newChatHandler(roomRepo, messageRepo, new(mocks.UserRepositoryMock), new(mocks.JobRepositoryMock))
	router := setupChatRouter(handler, 2)

	roomRepo.On("Get", mock.Anything, 10).Return(models.ChatRoom{
		ID: 10, RecruiterID: 1, ApplicantID: 2,
	}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/chat/rooms/10/messages", bytes.NewBufferString(`{"content":""}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListMessagesAsParticipant(t *testing.T) {
	roomRepo := new(mocks.ChatRoomRepositoryMock)
	messageRepo := new(mocks.MessageRepositoryMock)
	handler := newChatHandler(roomRepo, messageRepo, new(mocks.UserRepositoryMock), new(mocks.JobRepositoryMock))
	router := setupChatRouter(handler, 1)

	roomRepo.On("Get", mock.Anything, 10).Return(models.ChatRoom{
		ID: 10, RecruiterID: 1, ApplicantID: 2,
	}, nil).Once()
	messageRepo.On("ListByRoom", mock.Anything, 10).Return([]models.Message{
		{ID: 1, RoomID: 10, SenderID: 1, Content: "first"},
		{ID: 2, RoomID: 10, SenderID: 2, Content: "second"},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/chat/rooms/10/messages", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Messages []models.Message `json:"messages"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, "first", resp.Messages[0].Content)
	assert.Equal(t, "second", resp.Messages[1].Content)
	roomRepo.AssertExpectations(t)
	messageRepo.AssertExpectations(t)
}

func TestListMessagesAsOutsider(t *testing.T) {
	roomRepo := new(mocks.ChatRoomRepositoryMock)
	messageRepo := new(mocks.MessageRepositoryMock)
	handler := newChatHandler(roomRepo, messageRepo, new(mocks.UserRepositoryMock), new(mocks.JobRepositoryMock))
	router := setupChatRouter(handler, 9)

	roomRepo.On("Get", mock.Anything, 10).Return(models.ChatRoom{
		ID: 10, RecruiterID: 1, ApplicantID: 2,
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/chat/rooms/10/messages", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	messageRepo.AssertNotCalled(t, "ListByRoom", mock.Anything, mock.Anything)
}

func TestListMessagesPage(t *testing.T) {
	roomRepo := new(mocks.ChatRoomRepositoryMock)
	messageRepo := new(mocks.MessageRepositoryMock)
	handler := newChatHandler(roomRepo, messageRepo, new(mocks.UserRepositoryMock), new(mocks.JobRepositoryMock))
	router := setupChatRouter(handler, 1)

	roomRepo.On("Get", mock.Anything, 10).Return(models.ChatRoom{
		ID: 10, RecruiterID: 1, ApplicantID: 2,
	}, nil).Once()
	messageRepo.On("ListPageByRoom", mock.Anything, 10, pagination.Params{Page: 2, Limit: 5}).Return([]models.Message{
		{ID: 6}, {ID: 7},
	}, 7, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/chat/rooms/10/messages/page?page=2&limit=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var page pagination.Page[models.Message]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	assert.Equal(t, 7, page.Meta.TotalItems)
	assert.Equal(t, 2, page.Meta.CurrentPage)
	assert.Equal(t, 2, page.Meta.TotalPages)
	assert.Len(t, page.Items, 2)
	messageRepo.AssertExpectations(t)
}

func TestGetMessageAsOutsider(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	handler := newChatHandler(new(mocks.ChatRoomRepositoryMock), messageRepo, new(mocks.UserRepositoryMock), new(mocks.JobRepositoryMock))
	router := setupChatRouter(handler, 9)

	messageRepo.On("GetDetail", mock.Anything, 100).Return(models.MessageDetail{
		Message: models.Message{ID: 100, RoomID: 10, SenderID: 1},
		Room:    models.ChatRoom{ID: 10, RecruiterID: 1, ApplicantID: 2},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/chat/messages/100", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	messageRepo.AssertExpectations(t)
}

func TestDeleteMessageBySender(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	handler := newChatHandler(new(mocks.ChatRoomRepositoryMock), messageRepo, new(mocks.UserRepositoryMock), new(mocks.JobRepositoryMock))
	router := setupChatRouter(handler, 2)

	messageRepo.On("Get", mock.Anything, 100).Return(models.Message{
		ID: 100, RoomID: 10, SenderID: 2,
	}, nil).Once()
	messageRepo.On("Delete", mock.Anything, 100).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/chat/messages/100", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	messageRepo.AssertExpectations(t)
}

func TestDeleteMessageByOtherParticipant(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	handler := newChatHandler(new(mocks.ChatRoomRepositoryMock), messageRepo, new(mocks.UserRepositoryMock), new(mocks.JobRepositoryMock))
	router := setupChatRouter(handler, 1)

	messageRepo.On("Get", mock.Anything, 100).Return(models.Message{
		ID: 100, RoomID: 10, SenderID: 2,
	}, nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/chat/messages/100", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	messageRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRoomIDNotNumeric(t *testing.T) {
	handler := newChatHandler(new(mocks.ChatRoomRepositoryMock), new(mocks.MessageRepositoryMock), new(mocks.UserRepositoryMock), new(mocks.JobRepositoryMock))
	router := setupChatRouter(handler, 1)

	req := httptest.NewRequest(http.MethodGet, "/chat/rooms/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
