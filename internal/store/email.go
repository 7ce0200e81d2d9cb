package store

import (
	"context"
	"slices"

	"github.com/Akhil-Baki/empathetic-email-helper/internal/model"
)

type staticEmailStore struct {
	emails []model.Email
}

// NewStaticEmailStore serves a fixed table of emails. Records are copied on the way
// in and on the way out so callers can never mutate the table.
func NewStaticEmailStore(emails []model.Email) EmailStore {
	table := make([]model.Email, len(emails))
	for i, e := range emails {
		table[i] = cloneEmail(e)
	}
	return &staticEmailStore{emails: table}
}

func (s *staticEmailStore) GetByID(_ context.Context, id string) (*model.Email, error) {
	for _, e := range s.emails {
		if e.ID == id {
			found := cloneEmail(e)
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *staticEmailStore) List(_ context.Context) ([]model.Email, error) {
	result := make([]model.Email, len(s.emails))
	for i, e := range s.emails {
		result[i] = cloneEmail(e)
	}
	return result, nil
}

func cloneEmail(e model.Email) model.Email {
	e.Contacts = slices.Clone(e.Contacts)
	e.Requests = slices.Clone(e.Requests)
	return e
}
