package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"chatroom-api/internal/database"
	"chatroom-api/internal/stats"
	"chatroom-api/internal/types"
)

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateRoomRequest struct {
	RoomName string `json:"roomName"`
	Creator  string `json:"creator"`
}

type DeleteRoomRequest struct {
	Creator string `json:"creator"`
}

type DeleteRoomResponse struct {
	Message string `json:"message"`
}

type CreateMessageRequest struct {
	RoomId   string `json:"roomId"`
	SenderId int    `json:"senderId"`
	Text     string `json:"text"`
}

type UpdateProfilePictureRequest struct {
	ProfilePicture string `json:"profilePicture"`
}

type GenerateContentRequest struct {
	Prompt string `json:"prompt"`
}

type GenerateContentResponse struct {
	Result string `json:"result"`
}

func (s *ChatApp) writeJson(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Printf("json encode: %v", err)
	}
}

func userResponse(u database.User) types.User {
	return types.User{
		Id:             u.Id,
		Username:       u.Username,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func roomResponse(r database.Room) types.Room {
	return types.Room{
		Id:        r.ExternalId,
		Name:      r.Name,
		Creator:   r.Creator,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func messageResponse(m database.Message, roomExternalId string) types.Message {
	msg := types.Message{
		Id:        m.Id,
		RoomId:    roomExternalId,
		Text:      m.Text,
		Timestamp: m.CreatedAt,
	}

	if m.Sender != nil {
		msg.Sender = &types.MessageSender{
			Id:             m.Sender.Id,
			Username:       m.Sender.Username,
			ProfilePicture: m.Sender.ProfilePicture,
		}
	}

	return msg
}

func (s *ChatApp) healthCheck(w http.ResponseWriter, _ *http.Request) {
	if err := s.db.Ping(); err != nil {
		s.log.Println("health check:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *ChatApp) signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	pwdHash, err := hashPassword(req.Password)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	params := database.CreateAccountParams{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: pwdHash,
	}

	newUser, err := s.db.CreateAccount(params)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, database.ErrDuplicateEmail) {
			errResp = NewDuplicateEmailError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.incrStat(stats.UsersRegistered)

	s.writeJson(w, http.StatusCreated, userResponse(newUser))
}

func (s *ChatApp) login(w http.ResponseWriter, r *http.Request) {
	var lr LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&lr); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if lr.Email == "" || lr.Password == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	dbUser, err := s.db.GetAccountByEmail(lr.Email)
	if err != nil {
		var errResp *ApiError
		// an unknown email reads the same as a bad password, so the
		// endpoint is not an account-existence oracle
		if errors.Is(err, database.ErrNotFound) {
			errResp = NewUnauthorizedError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if !verifyPassword(dbUser.PasswordHash, lr.Password) {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	u := userResponse(dbUser)

	token, err := s.createJwtForSession(u, defaultJwtExpiration)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	http.SetCookie(w, createJwtCookie(token, defaultJwtExpiration))

	s.writeJson(w, http.StatusOK, u)
}

func (s *ChatApp) session(w http.ResponseWriter, r *http.Request) {
	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	user, err := s.db.GetAccountById(userId)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, database.ErrNotFound) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, userResponse(user))
}

func (s *ChatApp) logout(w http.ResponseWriter, _ *http.Request) {
	// instruct browser to delete cookie by overwriting it with an expired token
	http.SetCookie(w, createJwtCookie("", time.Duration(time.Unix(0, 0).Unix())))
	w.WriteHeader(http.StatusNoContent)
}

func (s *ChatApp) createRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.RoomName == "" || req.Creator == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	sid, err := s.generateShortId()
	if err != nil {
		s.log.Print("generateShortId:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	params := database.CreateRoomParams{
		Name:       req.RoomName,
		Creator:    req.Creator,
		ExternalId: sid,
	}

	newRoom, err := s.db.CreateRoom(params)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.incrStat(stats.RoomsCreated)

	s.writeJson(w, http.StatusCreated, roomResponse(newRoom))
}

func (s *ChatApp) listRooms(w http.ResponseWriter, _ *http.Request) {
	dbRooms, err := s.db.ListRooms()
	if err != nil {
		s.log.Println("list rooms:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	rooms := make([]types.Room, 0, len(dbRooms))
	for _, dbRoom := range dbRooms {
		rooms = append(rooms, roomResponse(dbRoom))
	}

	s.writeJson(w, http.StatusOK, rooms)
}

func (s *ChatApp) deleteRoom(w http.ResponseWriter, r *http.Request) {
	externalId := r.PathValue("id")
	if externalId == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req DeleteRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	room, err := s.db.GetRoomByExternalId(externalId)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, database.ErrNotFound) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	// only the creator may delete the room
	if room.Creator != req.Creator {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := s.db.DeleteRoom(room.Id); err != nil {
		s.log.Println("delete room:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.incrStat(stats.RoomsDeleted)

	s.writeJson(w, http.StatusOK, DeleteRoomResponse{Message: "room deleted successfully"})
}

func (s *ChatApp) getMessages(w http.ResponseWriter, r *http.Request) {
	externalId := r.URL.Query().Get("roomId")
	if externalId == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	room, err := s.db.GetRoomByExternalId(externalId)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, database.ErrNotFound) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	dbMessages, err := s.db.GetMessages(room.Id)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	messages := make([]types.Message, 0, len(dbMessages))
	for _, msg := range dbMessages {
		messages = append(messages, messageResponse(msg, room.ExternalId))
	}

	s.writeJson(w, http.StatusOK, messages)
}

func (s *ChatApp) createMessage(w http.ResponseWriter, r *http.Request) {
	var req CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.RoomId == "" || req.SenderId == 0 || req.Text == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	room, err := s.db.GetRoomByExternalId(req.RoomId)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, database.ErrNotFound) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	params := database.CreateMessageParams{
		RoomId:   room.Id,
		SenderId: req.SenderId,
		Text:     req.Text,
	}

	msg, err := s.db.CreateMessage(params)
	if err != nil {
		s.log.Println("create message:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.incrStat(stats.MessagesSent)

	s.writeJson(w, http.StatusCreated, messageResponse(msg, room.ExternalId))
}

func (s *ChatApp) getProfilePicture(w http.ResponseWriter, r *http.Request) {
	userId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	user, err := s.db.GetAccountById(userId)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, database.ErrNotFound) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, userResponse(user))
}

func (s *ChatApp) updateProfilePicture(w http.ResponseWriter, r *http.Request) {
	userId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req UpdateProfilePictureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	user, err := s.db.UpdateProfilePicture(userId, req.ProfilePicture)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, database.ErrNotFound) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, userResponse(user))
}

func (s *ChatApp) generateContent(w http.ResponseWriter, r *http.Request) {
	var req GenerateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.Prompt == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	result, err := s.gen.GenerateContent(r.Context(), req.Prompt)
	if err != nil {
		s.log.Println("generate content:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.incrStat(stats.ContentRequests)

	s.writeJson(w, http.StatusOK, GenerateContentResponse{Result: result})
}
