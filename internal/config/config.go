package config

import (
	"encoding/base64"
	"fmt"
)

const DefaultGeminiModel = "gemini-1.5-flash-8b"

type Config struct {
	ServerAddr     string
	DatabaseDSN    string
	SigningKey     []byte
	AllowedOrigins []string
	GeminiAPIKey   string
	GeminiModel    string
}

func decodeSigningSecret(base64Secret string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(base64Secret)
}

func NewConfig(serverAddr, databaseDSN, base64Secret, geminiAPIKey, geminiModel string, allowedOrigins []string) (*Config, error) {
	if serverAddr == "" {
		return nil, fmt.Errorf("server address cannot be empty")
	}
	if databaseDSN == "" {
		return nil, fmt.Errorf("database DSN cannot be empty")
	}
	if base64Secret == "" {
		return nil, fmt.Errorf("signing secret cannot be empty")
	}
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("gemini API key cannot be empty")
	}

	signingKey, err := decodeSigningSecret(base64Secret)
	if err != nil {
		return nil, fmt.Errorf("decode signing secret: %w", err)
	}

	if geminiModel == "" {
		geminiModel = DefaultGeminiModel
	}

	if len(allowedOrigins) == 0 {
		// the service historically allowed any origin
		allowedOrigins = []string{"*"}
	}

	return &Config{
		ServerAddr:     serverAddr,
		DatabaseDSN:    databaseDSN,
		SigningKey:     signingKey,
		AllowedOrigins: allowedOrigins,
		GeminiAPIKey:   geminiAPIKey,
		GeminiModel:    geminiModel,
	}, nil
}
