package member

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the store-agnostic contract for the members collection.
//
// FindByID reports a missing id through the bool, never through the error.
// Save and Update do not check existence themselves; the orchestration
// layer performs that check inside the same transaction. DeleteByID also
// removes the member from every course's subscriber set.
type Repository interface {
	FindAll(ctx context.Context) ([]Member, error)
	FindByID(ctx context.Context, id uuid.UUID) (Member, bool, error)
	Save(ctx context.Context, m Member) error
	Update(ctx context.Context, m Member) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
