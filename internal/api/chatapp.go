package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/teris-io/shortid"

	"chatroom-api/internal/config"
	"chatroom-api/internal/database"
	"chatroom-api/internal/genai"
	"chatroom-api/internal/stats"
)

type ChatApp struct {
	log            *log.Logger
	db             database.ChatRepository
	mux            *http.Server
	gen            *genai.Client
	stats          stats.StatsProvider
	signingKey     []byte
	allowedOrigins []string

	// swapped out in tests
	generateShortId func() (string, error)
}

func NewChatApp(mux *http.ServeMux, logger *log.Logger, db database.ChatRepository, gen *genai.Client, statsProvider stats.StatsProvider, cfg *config.Config) *ChatApp {
	s := &ChatApp{
		log:             logger,
		db:              db,
		gen:             gen,
		stats:           statsProvider,
		signingKey:      cfg.SigningKey,
		allowedOrigins:  cfg.AllowedOrigins,
		generateShortId: shortid.Generate,
	}

	if statsProvider != nil {
		for _, metric := range []string{
			stats.UsersRegistered,
			stats.RoomsCreated,
			stats.RoomsDeleted,
			stats.MessagesSent,
			stats.ContentRequests,
		} {
			statsProvider.RegisterMetric(metric)
		}
	}

	mux.HandleFunc("GET /healthz", s.healthCheck)
	mux.HandleFunc("POST /signup", s.signup)
	mux.HandleFunc("POST /login", s.login)
	mux.Handle("GET /session", s.authMiddleware(s.session))
	mux.Handle("GET /logout", s.authMiddleware(s.logout))
	mux.HandleFunc("POST /rooms", s.createRoom)
	mux.HandleFunc("GET /rooms", s.listRooms)
	mux.HandleFunc("DELETE /rooms/{id}", s.deleteRoom)
	mux.HandleFunc("GET /messages", s.getMessages)
	mux.HandleFunc("POST /messages", s.createMessage)
	mux.HandleFunc("GET /users/{id}/profile-picture", s.getProfilePicture)
	mux.HandleFunc("PUT /users/{id}/profile-picture", s.updateProfilePicture)
	mux.HandleFunc("POST /content", s.generateContent)

	h := handlers.CORS(
		handlers.MaxAge(3600),
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Origin", "Content-Type", "Accept"}),
		handlers.AllowCredentials(),
	)(mux)

	h = s.errorHandler(h)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: h,
	}

	s.mux = srv
	return s
}

func (s *ChatApp) incrStat(name string) {
	if s.stats != nil {
		s.stats.Incr(name)
	}
}

func (s *ChatApp) Start() error {
	s.log.Printf("starting server on %s\n", s.mux.Addr)
	return s.mux.ListenAndServe()
}

func (s *ChatApp) Shutdown(ctx context.Context) error {
	s.log.Println("shutting down HTTP server...")
	if err := s.mux.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
