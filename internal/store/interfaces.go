package store

import (
	"context"
	"errors"

	"github.com/Akhil-Baki/empathetic-email-helper/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// EmailStore defines the contract for email data access.
// The only implementation today is the read-only demo table; a database-backed
// store can replace it without touching the services.
type EmailStore interface {
	GetByID(ctx context.Context, id string) (*model.Email, error)
	List(ctx context.Context) ([]model.Email, error)
}
