package course

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the store-agnostic contract for the courses collection.
// Update replaces the whole course, subscriber set included; adapters
// decide how the set is represented (join rows or embedded snapshots).
type Repository interface {
	FindAll(ctx context.Context) ([]Course, error)
	FindByID(ctx context.Context, id uuid.UUID) (Course, bool, error)
	Save(ctx context.Context, c Course) error
	Update(ctx context.Context, c Course) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
