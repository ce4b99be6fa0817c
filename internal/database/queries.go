package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	userColumns    = "id, username, email, profile_picture, created_at, updated_at"
	roomColumns    = "id, external_id, name, creator, created_at, updated_at"
	messageColumns = "id, room_id, sender_id, text, created_at"
)

func (db *PgChatRepository) CreateAccount(params CreateAccountParams) (User, error) {
	now := time.Now().UTC()
	res := db.conn.QueryRow(
		"INSERT INTO users (username, email, password_hash, profile_picture, created_at, updated_at) "+
			"VALUES ($1, $2, $3, '', $4, $4) RETURNING "+userColumns,
		params.Username,
		params.Email,
		params.PasswordHash,
		now,
	)

	var u User
	err := res.Scan(
		&u.Id,
		&u.Username,
		&u.Email,
		&u.ProfilePicture,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return User{}, ErrDuplicateEmail
	}

	return u, err
}

func (db *PgChatRepository) GetAccountById(accountId int) (User, error) {
	row := db.conn.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE id = $1 LIMIT 1",
		accountId,
	)

	var u User
	err := row.Scan(
		&u.Id,
		&u.Username,
		&u.Email,
		&u.ProfilePicture,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}

	return u, err
}

func (db *PgChatRepository) GetAccountByEmail(email string) (User, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, email, password_hash, profile_picture, created_at, updated_at "+
			"FROM users WHERE email = $1 LIMIT 1",
		email,
	)

	var u User
	err := row.Scan(
		&u.Id,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.ProfilePicture,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}

	return u, err
}

func (db *PgChatRepository) UpdateProfilePicture(accountId int, profilePicture string) (User, error) {
	res := db.conn.QueryRow(
		"UPDATE users SET profile_picture = $2, updated_at = $3 WHERE id = $1 RETURNING "+userColumns,
		accountId,
		profilePicture,
		time.Now().UTC(),
	)

	var u User
	err := res.Scan(
		&u.Id,
		&u.Username,
		&u.Email,
		&u.ProfilePicture,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}

	return u, err
}

func (db *PgChatRepository) CreateRoom(params CreateRoomParams) (Room, error) {
	now := time.Now().UTC()
	res := db.conn.QueryRow(
		"INSERT INTO rooms (external_id, name, creator, created_at, updated_at) "+
			"VALUES ($1, $2, $3, $4, $4) RETURNING "+roomColumns,
		params.ExternalId,
		params.Name,
		params.Creator,
		now,
	)

	var room Room
	err := res.Scan(
		&room.Id,
		&room.ExternalId,
		&room.Name,
		&room.Creator,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	return room, err
}

func (db *PgChatRepository) ListRooms() ([]Room, error) {
	rows, err := db.conn.Query("SELECT " + roomColumns + " FROM rooms ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms = make([]Room, 0)
	for rows.Next() {
		var room Room
		if err = rows.Scan(
			&room.Id,
			&room.ExternalId,
			&room.Name,
			&room.Creator,
			&room.CreatedAt,
			&room.UpdatedAt,
		); err != nil {
			return nil, err
		}

		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

func (db *PgChatRepository) GetRoomByExternalId(externalId string) (Room, error) {
	row := db.conn.QueryRow(
		"SELECT "+roomColumns+" FROM rooms WHERE external_id = $1 LIMIT 1",
		externalId,
	)

	var room Room
	err := row.Scan(
		&room.Id,
		&room.ExternalId,
		&room.Name,
		&room.Creator,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Room{}, ErrNotFound
	}

	return room, err
}

func (db *PgChatRepository) DeleteRoom(roomId int) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.Exec("DELETE FROM messages WHERE room_id = $1", roomId)
	if err != nil {
		return err
	}

	_, err = tx.Exec("DELETE FROM rooms WHERE id = $1", roomId)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// CreateMessage appends a message to the room's history and touches the
// room's updated_at in the same transaction. The returned message has
// its sender enriched after commit; a sender that no longer resolves
// yields a nil Sender rather than an error, so a failed enrichment
// never undoes the append.
func (db *PgChatRepository) CreateMessage(params CreateMessageParams) (Message, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return Message{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	now := time.Now().UTC()
	res := tx.QueryRow(
		"INSERT INTO messages (room_id, sender_id, text, created_at) "+
			"VALUES ($1, $2, $3, $4) RETURNING "+messageColumns,
		params.RoomId,
		params.SenderId,
		params.Text,
		now,
	)

	var msg Message
	err = res.Scan(
		&msg.Id,
		&msg.RoomId,
		&msg.SenderId,
		&msg.Text,
		&msg.CreatedAt,
	)
	if err != nil {
		return Message{}, err
	}

	_, err = tx.Exec("UPDATE rooms SET updated_at = $1 WHERE id = $2", now, params.RoomId)
	if err != nil {
		return Message{}, err
	}

	if err = tx.Commit(); err != nil {
		return Message{}, err
	}

	msg.Sender = db.lookupSender(msg.SenderId)

	return msg, nil
}

func (db *PgChatRepository) lookupSender(senderId int) *MessageSender {
	row := db.conn.QueryRow(
		"SELECT id, username, profile_picture FROM users WHERE id = $1 LIMIT 1",
		senderId,
	)

	var sender MessageSender
	if err := row.Scan(&sender.Id, &sender.Username, &sender.ProfilePicture); err != nil {
		return nil
	}

	return &sender
}

func (db *PgChatRepository) GetMessages(roomId int) ([]Message, error) {
	rows, err := db.conn.Query(
		"SELECT m.id, m.room_id, m.sender_id, m.text, m.created_at, u.id, u.username, u.profile_picture "+
			"FROM messages m LEFT JOIN users u ON m.sender_id = u.id "+
			"WHERE m.room_id = $1 ORDER BY m.id",
		roomId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages = make([]Message, 0)
	for rows.Next() {
		var (
			msg            Message
			senderId       sql.NullInt64
			username       sql.NullString
			profilePicture sql.NullString
		)

		if err = rows.Scan(
			&msg.Id,
			&msg.RoomId,
			&msg.SenderId,
			&msg.Text,
			&msg.CreatedAt,
			&senderId,
			&username,
			&profilePicture,
		); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		if senderId.Valid && username.Valid {
			msg.Sender = &MessageSender{
				Id:             int(senderId.Int64),
				Username:       username.String,
				ProfilePicture: profilePicture.String,
			}
		}

		messages = append(messages, msg)
	}

	return messages, rows.Err()
}
