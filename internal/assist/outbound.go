package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Vovarama1992/assistbot/internal/logging"
)

// LogNotifier writes the follow-up prompt to the log.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, userID, text string) error {
	logger := logging.Component("followup")
	logger.Info().Str("user_id", userID).Str("text", text).Msg("follow-up")
	return nil
}

// WebhookNotifier POSTs follow-ups as JSON to an external endpoint.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *WebhookNotifier) Notify(ctx context.Context, userID, text string) error {
	b, err := json.Marshal(map[string]string{
		"user_id": userID,
		"text":    text,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("follow-up webhook: %s body=%s", resp.Status, respBody)
	}

	return nil
}

// MultiNotifier delivers to every notifier and joins their errors.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context, userID, text string) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, userID, text); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
