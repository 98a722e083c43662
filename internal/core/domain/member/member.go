package member

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
)

// Member is a registered gym member. The id is assigned by the caller
// before the first save, never by the store.
type Member struct {
	ID          uuid.UUID
	Name        string
	Surname     string
	DateOfBirth time.Time
}

func (m Member) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.ID, validation.By(idIsSet)),
		validation.Field(&m.Name, validation.Required),
		validation.Field(&m.Surname, validation.Required),
		validation.Field(&m.DateOfBirth, validation.Required),
	)
}

func idIsSet(value interface{}) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return errors.New("must be a non-zero uuid")
	}
	return nil
}

// Date builds a calendar date at UTC midnight. Dates of birth carry no
// time component, so every adapter round-trips them through this shape.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
