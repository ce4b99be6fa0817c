package database

import "time"

type User struct {
	Id             int
	Username       string
	Email          string
	PasswordHash   string
	ProfilePicture string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Room struct {
	Id         int
	ExternalId string
	Name       string
	Creator    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MessageSender is the subset of user fields a message is enriched
// with when read back. It is nil when the sender id no longer
// resolves to a user.
type MessageSender struct {
	Id             int
	Username       string
	ProfilePicture string
}

type Message struct {
	Id        int
	RoomId    int
	SenderId  int
	Text      string
	Sender    *MessageSender
	CreatedAt time.Time
}

type CreateAccountParams struct {
	Username     string
	Email        string
	PasswordHash string
}

type CreateRoomParams struct {
	Name       string
	Creator    string
	ExternalId string
}

type CreateMessageParams struct {
	RoomId   int
	SenderId int
	Text     string
}
