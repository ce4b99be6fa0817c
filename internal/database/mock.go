package database

import (
	"github.com/stretchr/testify/mock"
)

type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) Ping() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockChatRepository) CreateAccount(params CreateAccountParams) (User, error) {
	args := m.Called(params)
	return args.Get(0).(User), args.Error(1)
}
func (m *MockChatRepository) GetAccountById(accountId int) (User, error) {
	args := m.Called(accountId)
	return args.Get(0).(User), args.Error(1)
}
func (m *MockChatRepository) GetAccountByEmail(email string) (User, error) {
	args := m.Called(email)
	return args.Get(0).(User), args.Error(1)
}
func (m *MockChatRepository) UpdateProfilePicture(accountId int, profilePicture string) (User, error) {
	args := m.Called(accountId, profilePicture)
	return args.Get(0).(User), args.Error(1)
}
func (m *MockChatRepository) CreateRoom(params CreateRoomParams) (Room, error) {
	args := m.Called(params)
	return args.Get(0).(Room), args.Error(1)
}
func (m *MockChatRepository) ListRooms() ([]Room, error) {
	args := m.Called()
	if rooms, ok := args.Get(0).([]Room); ok {
		return rooms, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockChatRepository) GetRoomByExternalId(externalId string) (Room, error) {
	args := m.Called(externalId)
	return args.Get(0).(Room), args.Error(1)
}
func (m *MockChatRepository) DeleteRoom(roomId int) error {
	args := m.Called(roomId)
	return args.Error(0)
}
func (m *MockChatRepository) CreateMessage(params CreateMessageParams) (Message, error) {
	args := m.Called(params)
	return args.Get(0).(Message), args.Error(1)
}
func (m *MockChatRepository) GetMessages(roomId int) ([]Message, error) {
	args := m.Called(roomId)
	if messages, ok := args.Get(0).([]Message); ok {
		return messages, args.Error(1)
	}
	return nil, args.Error(1)
}
