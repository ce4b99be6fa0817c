package database

// ChatRepository is the persistence contract for the chat service.
// Implementations return ErrNotFound and ErrDuplicateEmail for the
// conditions handlers are expected to map to 4xx responses; any other
// error is a store failure.
type ChatRepository interface {
	Ping() error
	CreateAccount(params CreateAccountParams) (User, error)
	GetAccountById(accountId int) (User, error)
	GetAccountByEmail(email string) (User, error)
	UpdateProfilePicture(accountId int, profilePicture string) (User, error)
	CreateRoom(params CreateRoomParams) (Room, error)
	ListRooms() ([]Room, error)
	GetRoomByExternalId(externalId string) (Room, error)
	DeleteRoom(roomId int) error
	CreateMessage(params CreateMessageParams) (Message, error)
	GetMessages(roomId int) ([]Message, error)
}
