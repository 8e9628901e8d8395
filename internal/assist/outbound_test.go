package assist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWebhookNotifier(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := NewWebhookNotifier(srv.URL).Notify(context.Background(), "u1", FollowUpPrompt); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if got["user_id"] != "u1" || got["text"] != FollowUpPrompt {
		t.Errorf("payload = %v", got)
	}
}

func TestWebhookNotifierErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	if err := NewWebhookNotifier(srv.URL).Notify(context.Background(), "u1", "hi"); err == nil {
		t.Fatal("expected error")
	}
}

type failingNotifier struct{ err error }

func (f failingNotifier) Notify(context.Context, string, string) error { return f.err }

func TestMultiNotifierDeliversToAll(t *testing.T) {
	boom := errors.New("boom")
	rec := newRecordingNotifier()

	err := MultiNotifier{failingNotifier{boom}, rec, LogNotifier{}}.Notify(context.Background(), "u1", "hi")
	if !errors.Is(err, boom) {
		t.Errorf("err = %v", err)
	}
	if len(rec.Sent()) != 1 {
		t.Errorf("sent = %+v", rec.Sent())
	}
}
