package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"slotify/config"
	"slotify/models"
)

// WhatsAppSender delivers a text message through the WhatsApp Business API.
type WhatsAppSender interface {
	Send(ctx context.Context, settings models.WhatsAppSettings, to, body string) error
}

// HTTPWhatsAppSender talks to the Graph API messages endpoint using the
// business's own phone ID and token.
type HTTPWhatsAppSender struct {
	Client *http.Client
}

func NewHTTPWhatsAppSender() *HTTPWhatsAppSender {
	timeout := time.Duration(config.AppConfig.DispatchTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPWhatsAppSender{
		Client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPWhatsAppSender) Send(ctx context.Context, settings models.WhatsAppSettings, to, body string) error {
	if settings.PhoneID == "" || settings.Token == "" {
		return fmt.Errorf("whatsapp sender: missing phone ID or token")
	}

	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "text",
		"text":              map[string]string{"body": body},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("whatsapp sender: marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", config.AppConfig.WhatsAppAPIBase, settings.PhoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("whatsapp sender: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+settings.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp sender: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("whatsapp sender: provider returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}
