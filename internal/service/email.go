package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/Akhil-Baki/empathetic-email-helper/common/logger"
	"github.com/Akhil-Baki/empathetic-email-helper/internal/model"
	"github.com/Akhil-Baki/empathetic-email-helper/internal/store"
)

var ErrEmailNotFound = errors.New("email not found")

type EmailService interface {
	GetByID(ctx context.Context, id string) (*model.Email, error)
	List(ctx context.Context) ([]model.Email, error)
	Stats(ctx context.Context) (*model.EmailStats, error)
}

type emailService struct {
	emailStore store.EmailStore
}

func NewEmailService(emailStore store.EmailStore) EmailService {
	return &emailService{emailStore: emailStore}
}

func (s *emailService) GetByID(ctx context.Context, id string) (*model.Email, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		EmailID:   logger.Ptr(id),
		Component: "email_helper.service.email",
	})

	email, err := s.emailStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.InfoContext(ctx, "email not found")
			return nil, ErrEmailNotFound
		}
		return nil, fmt.Errorf("getting email: %w", err)
	}

	return email, nil
}

// List returns every email, newest first.
func (s *emailService) List(ctx context.Context) ([]model.Email, error) {
	emails, err := s.emailStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing emails: %w", err)
	}

	slices.SortStableFunc(emails, func(a, b model.Email) int {
		return b.ReceivedAt.Compare(a.ReceivedAt)
	})
	return emails, nil
}

func (s *emailService) Stats(ctx context.Context) (*model.EmailStats, error) {
	emails, err := s.emailStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing emails: %w", err)
	}

	stats := &model.EmailStats{
		Total: len(emails),
		SentimentBreakdown: map[model.Sentiment]int{
			model.SentimentPositive: 0,
			model.SentimentNeutral:  0,
			model.SentimentNegative: 0,
		},
		UrgencyBreakdown: map[model.Urgency]int{
			model.UrgencyLow:    0,
			model.UrgencyMedium: 0,
			model.UrgencyHigh:   0,
			model.UrgencyUrgent: 0,
		},
	}

	for _, e := range emails {
		switch e.Status {
		case model.StatusUnread:
			stats.Unread++
		case model.StatusReplied:
			stats.Replied++
		}
		if e.Sentiment.IsValid() {
			stats.SentimentBreakdown[e.Sentiment]++
		}
		if e.Urgency.IsValid() {
			stats.UrgencyBreakdown[e.Urgency]++
		}
	}

	return stats, nil
}
