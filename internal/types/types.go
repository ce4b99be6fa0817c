package types

import (
	"time"
)

// Field names follow the service's public wire format (camelCase),
// which existing clients depend on.

type User struct {
	Id             int       `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email,omitempty"`
	Password       string    `json:"-"`
	ProfilePicture string    `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt,omitempty"`
}

type Room struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Creator   string    `json:"creator"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// MessageSender holds the public user fields a message's sender
// is enriched with at read time.
type MessageSender struct {
	Id             int    `json:"id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}

type Message struct {
	Id        int            `json:"id"`
	RoomId    string         `json:"roomId"`
	Sender    *MessageSender `json:"sender"`
	Text      string         `json:"text"`
	Timestamp time.Time      `json:"timestamp"`
}
