package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jobmarket-service/internal/models"
	"jobmarket-service/internal/pagination"
	"jobmarket-service/internal/repositories"
	"jobmarket-service/internal/telemetry"
)

type PublisherMock struct {
	mock.Mock
}

func (m *PublisherMock) Publish(ctx context.Context, routingKey string, event any) error {
	args := m.Called(ctx, routingKey, event)
	return args.Error(0)
}

func (m *PublisherMock) Close() error {
	args := m.Called()
	return args.Error(0)
}

type ChatRoomRepositoryMock struct {
	mock.Mock
}

func (m *ChatRoomRepositoryMock) Create(ctx context.Context, recruiterID, applicantID, announcementID int) (models.ChatRoom, error) {
	args := m.Called(ctx, recruiterID, applicantID, announcementID)
	var room models.ChatRoom
	if val := args.Get(0); val != nil {
		room = val.(models.ChatRoom)
	}
	return room, args.Error(1)
}

func (m *ChatRoomRepositoryMock) Get(ctx context.Context, roomID int) (models.ChatRoom, error) {
	args := m.Called(ctx, roomID)
	var room models.ChatRoom
	if val := args.Get(0); val != nil {
		room = val.(models.ChatRoom)
	}
	return room, args.Error(1)
}

func (m *ChatRoomRepositoryMock) GetDetail(ctx context.Context, roomID int) (models.RoomDetail, error) {
	args := m.Called(ctx, roomID)
	var detail models.RoomDetail
	if val := args.Get(0); val != nil {
		detail = val.(models.RoomDetail)
	}
	return detail, args.Error(1)
}

func (m *ChatRoomRepositoryMock) List(ctx context.Context, f repositories.RoomFilter) ([]models.RoomDetail, error) {
	args := m.Called(ctx, f)
	var list []models.RoomDetail
	if val := args.Get(0); val != nil {
		list = val.([]models.RoomDetail)
	}
	return list, args.Error(1)
}

func (m *ChatRoomRepositoryMock) ListPage(ctx context.Context, f repositories.RoomFilter, p pagination.Params) ([]models.RoomDetail, int, error) {
	args := m.Called(ctx, f, p)
	var list []models.RoomDetail
	if val := args.Get(0); val != nil {
		list = val.([]models.RoomDetail)
	}
	return list, args.Int(1), args.Error(2)
}

func (m *ChatRoomRepositoryMock) Delete(ctx context.Context, roomID int) error {
	args := m.Called(ctx, roomID)
	return args.Error(0)
}

type MessageRepositoryMock struct {
	mock.Mock
}

func (m *MessageRepositoryMock) Create(ctx context.Context, roomID, senderID int, content string) (models.Message, error) {
	args := m.Called(ctx, roomID, senderID, content)
	var msg models.Message
	if val := args.Get(0); val != nil {
		msg = val.(models.Message)
	}
	return msg, args.Error(1)
}

func (m *MessageRepositoryMock) ListByRoom(ctx context.Context, roomID int) ([]models.Message, error) {
	args := m.Called(ctx, roomID)
	var list []models.Message
	if val := args.Get(0); val != nil {
		list = val.([]models.Message)
	}
	return list, args.Error(1)
}

func (m *MessageRepositoryMock) ListPageByRoom(ctx context.Context, roomID int, p pagination.Params) ([]models.Message, int, error) {
	args := m.Called(ctx, roomID, p)
	var list []models.Message
	if val := args.Get(0); val != nil {
		list = val.([]models.Message)
	}
	return list, args.Int(1), args.Error(2)
}

func (m *MessageRepositoryMock) Get(ctx context.Context, messageID int) (models.Message, error) {
	args := m.Called(ctx, messageID)
	var msg models.Message
	if val := args.Get(0); val != nil {
		msg = val.(models.Message)
	}
	return msg, args.Error(1)
}

func (m *MessageRepositoryMock) GetDetail(ctx context.Context, messageID int) (models.MessageDetail, error) {
	args := m.Called(ctx, messageID)
	var detail models.MessageDetail
	if val := args.Get(0); val != nil {
		detail = val.(models.MessageDetail)
	}
	return detail, args.Error(1)
}

func (m *MessageRepositoryMock) Delete(ctx context.Context, messageID int) error {
	args := m.Called(ctx, messageID)
	return args.Error(0)
}

type UserRepositoryMock struct {
	mock.Mock
}

func (m *UserRepositoryMock) Create(ctx context.Context, user models.User) (models.User, error) {
	args := m.Called(ctx, user)
	var stored models.User
	if val := args.Get(0); val != nil {
		stored = val.(models.User)
	}
	return stored, args.Error(1)
}

func (m *UserRepositoryMock) FindByID(ctx context.Context, userID int) (models.User, error) {
	args := m.Called(ctx, userID)
	var user models.User
	if val := args.Get(0); val != nil {
		user = val.(models.User)
	}
	return user, args.Error(1)
}

func (m *UserRepositoryMock) FindByUsername(ctx context.Context, username string) (models.User, error) {
	args := m.Called(ctx, username)
	var user models.User
	if val := args.Get(0); val != nil {
		user = val.(models.User)
	}
	return user, args.Error(1)
}

func (m *UserRepositoryMock) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	args := m.Called(ctx, user)
	var stored models.User
	if val := args.Get(0); val != nil {
		stored = val.(models.User)
	}
	return stored, args.Error(1)
}

func (m *UserRepositoryMock) SetAvatar(ctx context.Context, userID int, fileID int) error {
	args := m.Called(ctx, userID, fileID)
	return args.Error(0)
}

func (m *UserRepositoryMock) ListPage(ctx context.Context, p pagination.Params) ([]models.User, int, error) {
	args := m.Called(ctx, p)
	var list []models.User
	if val := args.Get(0); val != nil {
		list = val.([]models.User)
	}
	return list, args.Int(1), args.Error(2)
}

type JobRepositoryMock struct {
	mock.Mock
}

func (m *JobRepositoryMock) Create(ctx context.Context, a models.JobAnnouncement) (models.JobAnnouncement, error) {
	args := m.Called(ctx, a)
	var stored models.JobAnnouncement
	if val := args.Get(0); val != nil {
		stored = val.(models.JobAnnouncement)
	}
	return stored, args.Error(1)
}

func (m *JobRepositoryMock) FindByID(ctx context.Context, announcementID int) (models.JobAnnouncement, error) {
	args := m.Called(ctx, announcementID)
	var a models.JobAnnouncement
	if val := args.Get(0); val != nil {
		a = val.(models.JobAnnouncement)
	}
	return a, args.Error(1)
}

func (m *JobRepositoryMock) FindByIDWithOwner(ctx context.Context, announcementID int) (models.AnnouncementDetail, error) {
	args := m.Called(ctx, announcementID)
	var detail models.AnnouncementDetail
	if val := args.Get(0); val != nil {
		detail = val.(models.AnnouncementDetail)
	}
	return detail, args.Error(1)
}

func (m *JobRepositoryMock) List(ctx context.Context, ownerID int) ([]models.JobAnnouncement, error) {
	args := m.Called(ctx, ownerID)
	var list []models.JobAnnouncement
	if val := args.Get(0); val != nil {
		list = val.([]models.JobAnnouncement)
	}
	return list, args.Error(1)
}

func (m *JobRepositoryMock) ListPage(ctx context.Context, ownerID int, p pagination.Params) ([]models.JobAnnouncement, int, error) {
	args := m.Called(ctx, ownerID, p)
	var list []models.JobAnnouncement
	if val := args.Get(0); val != nil {
		list = val.([]models.JobAnnouncement)
	}
	return list, args.Int(1), args.Error(2)
}

func (m *JobRepositoryMock) Update(ctx context.Context, a models.JobAnnouncement) (models.JobAnnouncement, error) {
	args := m.Called(ctx, a)
	var stored models.JobAnnouncement
	if val := args.Get(0); val != nil {
		stored = val.(models.JobAnnouncement)
	}
	return stored, args.Error(1)
}

func (m *JobRepositoryMock) Delete(ctx context.Context, announcementID int) error {
	args := m.Called(ctx, announcementID)
	return args.Error(0)
}

type FileRepositoryMock struct {
	mock.Mock
}

func (m *FileRepositoryMock) Create(ctx context.Context, item models.FileItem) (models.FileItem, error) {
	args := m.Called(ctx, item)
	var stored models.FileItem
	if val := args.Get(0); val != nil {
		stored = val.(models.FileItem)
	}
	return stored, args.Error(1)
}

func (m *FileRepositoryMock) FindByID(ctx context.Context, fileID int) (models.FileItem, error) {
	args := m.Called(ctx, fileID)
	var item models.FileItem
	if val := args.Get(0); val != nil {
		item = val.(models.FileItem)
	}
	return item, args.Error(1)
}

func (m *FileRepositoryMock) ListByOwner(ctx context.Context, ownerID int) ([]models.FileItem, error) {
	args := m.Called(ctx, ownerID)
	var list []models.FileItem
	if val := args.Get(0); val != nil {
		list = val.([]models.FileItem)
	}
	return list, args.Error(1)
}

func (m *FileRepositoryMock) Delete(ctx context.Context, fileID int) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

type ApplicationRepositoryMock struct {
	mock.Mock
}

func (m *ApplicationRepositoryMock) Create(ctx context.Context, app models.JobApplication) (models.JobApplication, error) {
	args := m.Called(ctx, app)
	var stored models.JobApplication
	if val := args.Get(0); val != nil {
		stored = val.(models.JobApplication)
	}
	return stored, args.Error(1)
}

func (m *ApplicationRepositoryMock) FindByID(ctx context.Context, applicationID int) (models.JobApplication, error) {
	args := m.Called(ctx, applicationID)
	var app models.JobApplication
	if val := args.Get(0); val != nil {
		app = val.(models.JobApplication)
	}
	return app, args.Error(1)
}

func (m *ApplicationRepositoryMock) ListByAnnouncement(ctx context.Context, announcementID int) ([]models.JobApplication, error) {
	args := m.Called(ctx, announcementID)
	var list []models.JobApplication
	if val := args.Get(0); val != nil {
		list = val.([]models.JobApplication)
	}
	return list, args.Error(1)
}

func (m *ApplicationRepositoryMock) ListByApplicant(ctx context.Context, applicantID int) ([]models.JobApplication, error) {
	args := m.Called(ctx, applicantID)
	var list []models.JobApplication
	if val := args.Get(0); val != nil {
		list = val.([]models.JobApplication)
	}
	return list, args.Error(1)
}

func (m *ApplicationRepositoryMock) UpdateStatus(ctx context.Context, applicationID int, status string) (models.JobApplication, error) {
	args := m.Called(ctx, applicationID, status)
	var app models.JobApplication
	if val := args.Get(0); val != nil {
		app = val.(models.JobApplication)
	}
	return app, args.Error(1)
}

type PaymentRepositoryMock struct {
	mock.Mock
}

func (m *PaymentRepositoryMock) Create(ctx context.Context, slip models.PaymentSlip) (models.PaymentSlip, error) {
	args := m.Called(ctx, slip)
	var stored models.PaymentSlip
	if val := args.Get(0); val != nil {
		stored = val.(models.PaymentSlip)
	}
	return stored, args.Error(1)
}

func (m *PaymentRepositoryMock) FindByID(ctx context.Context, slipID int) (models.PaymentSlip, error) {
	args := m.Called(ctx, slipID)
	var slip models.PaymentSlip
	if val := args.Get(0); val != nil {
		slip = val.(models.PaymentSlip)
	}
	return slip, args.Error(1)
}

func (m *PaymentRepositoryMock) ListByPayer(ctx context.Context, payerID int) ([]models.PaymentSlip, error) {
	args := m.Called(ctx, payerID)
	var list []models.PaymentSlip
	if val := args.Get(0); val != nil {
		list = val.([]models.PaymentSlip)
	}
	return list, args.Error(1)
}

func (m *PaymentRepositoryMock) Confirm(ctx context.Context, slipID int) (models.PaymentSlip, error) {
	args := m.Called(ctx, slipID)
	var slip models.PaymentSlip
	if val := args.Get(0); val != nil {
		slip = val.(models.PaymentSlip)
	}
	return slip, args.Error(1)
}

var _ repositories.ChatRoomRepository = (*ChatRoomRepositoryMock)(nil)
var _ repositories.MessageRepository = (*MessageRepositoryMock)(nil)
var _ repositories.UserRepository = (*UserRepositoryMock)(nil)
var _ repositories.JobRepository = (*JobRepositoryMock)(nil)
var _ repositories.FileRepository = (*FileRepositoryMock)(nil)
var _ repositories.ApplicationRepository = (*ApplicationRepositoryMock)(nil)
var _ repositories.PaymentRepository = (*PaymentRepositoryMock)(nil)
var _ telemetry.Publisher = (*PublisherMock)(nil)
