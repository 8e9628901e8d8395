package assist

import (
	"context"
	"errors"
)

var ErrValidation = errors.New("validation failed")

// Profile is a signed-up business. It lives only in process memory.
type Profile struct {
	ID     string
	Name   string
	Orders map[string]string // order id -> status
	Trial  bool
}

// FAQRepo — persistence of the faqs table. Questions are normalized to
// lowercase by the implementation.
type FAQRepo interface {
	UpsertFAQ(ctx context.Context, question, answer string) error
	RecordUnanswered(ctx context.Context, question string) error
	LookupAnswer(ctx context.Context, question string) (string, bool, error)
	ListUnanswered(ctx context.Context) ([]string, error)
}

// Notifier delivers a follow-up prompt to a user.
type Notifier interface {
	Notify(ctx context.Context, userID, text string) error
}

// Service — orchestration of a single chat turn plus FAQ authoring.
type Service interface {
	GenerateResponse(ctx context.Context, message, businessID, userID string) (string, error)
	AddFAQ(ctx context.Context, question, answer string) error
	UnansweredQuestions(ctx context.Context) ([]string, error)
}
