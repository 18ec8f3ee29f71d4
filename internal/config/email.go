package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ResendConfig struct {
	APIKey string
	APIURL string
	From   string
}

func NewResendConfig() *ResendConfig {
	apiURL := os.Getenv("RESEND_API_URL")
	if apiURL == "" {
		apiURL = "https://api.resend.com/emails"
	}
	return &ResendConfig{
		APIKey: os.Getenv("RESEND_API_KEY"),
		APIURL: apiURL,
		From:   os.Getenv("FROM_EMAIL"),
	}
}

type EmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html"`
}

// EmailService delivers best-effort email copies of broadcast messages.
// When no API key is configured the service is a no-op.
type EmailService struct {
	Config *ResendConfig
	client *http.Client
	logger *zap.Logger
}

func NewEmailService(lc fx.Lifecycle, config *ResendConfig, logger *zap.Logger) *EmailService {
	service := &EmailService{
		Config: config,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if service.Enabled() {
				logger.Info("Email Service initialized")
			} else {
				logger.Warn("Email Service disabled, RESEND_API_KEY not set")
			}
			return nil
		},
	})
	return service
}

func (e *EmailService) Enabled() bool {
	return e.Config.APIKey != "" && e.Config.From != ""
}

func (e *EmailService) SendEmail(ctx context.Context, to, subject, body string) error {
	if !e.Enabled() {
		return nil
	}

	payload := EmailRequest{
		From:    e.Config.From,
		To:      []string{to},
		Subject: subject,
		Html:    body,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.Config.APIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+e.Config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errorResponse map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorResponse)
		return fmt.Errorf("failed to send email, status code: %d, error: %v", resp.StatusCode, errorResponse)
	}

	e.logger.Debug("Email sent", zap.String("to", to))
	return nil
}
