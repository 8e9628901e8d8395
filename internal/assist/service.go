package assist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Vovarama1992/assistbot/internal/ai"
	"github.com/Vovarama1992/assistbot/internal/logging"
)

type service struct {
	faqs      FAQRepo
	registry  *Registry
	followUps *FollowUps
	ai        ai.AI

	now func() time.Time
}

func NewService(faqs FAQRepo, registry *Registry, followUps *FollowUps, aiClient ai.AI) Service {
	return &service{
		faqs:      faqs,
		registry:  registry,
		followUps: followUps,
		ai:        aiClient,
		now:       time.Now,
	}
}

// GenerateResponse answers one chat message: order status first, then the
// FAQ table, then the completion service.
func (s *service) GenerateResponse(ctx context.Context, message, businessID, userID string) (string, error) {
	logger := logging.Component("assist")
	s.followUps.Touch(userID, s.now())

	if strings.Contains(strings.ToLower(message), orderStatusPhrase) {
		return s.orderStatus(message, businessID), nil
	}

	answer, found, err := s.faqs.LookupAnswer(ctx, message)
	if err != nil {
		return "", fmt.Errorf("faq lookup: %w", err)
	}
	if found {
		s.followUps.Schedule(userID)
		return answer, nil
	}

	// recorded even if the completion below ends up answering it
	if err := s.faqs.RecordUnanswered(ctx, message); err != nil {
		return "", fmt.Errorf("record unanswered: %w", err)
	}

	res := s.ai.Complete(ctx, SystemPrompt, message)
	if !res.OK() {
		logger.Error().Err(res.Err).Str("user_id", userID).Str("business_id", businessID).Msg("completion failed")
		return ApologyReply, nil
	}

	s.followUps.Schedule(userID)
	return res.Text, nil
}

func (s *service) orderStatus(message, businessID string) string {
	fields := strings.Fields(message)
	orderID := fields[len(fields)-1]

	profile, _ := s.registry.Get(businessID)
	if status, ok := profile.Orders[orderID]; ok {
		return status
	}
	return OrderNotFound
}

func (s *service) AddFAQ(ctx context.Context, question, answer string) error {
	if question == "" || answer == "" {
		return fmt.Errorf("%w: %s", ErrValidation, FAQRequiredError)
	}
	return s.faqs.UpsertFAQ(ctx, question, answer)
}

func (s *service) UnansweredQuestions(ctx context.Context) ([]string, error) {
	return s.faqs.ListUnanswered(ctx)
}
