package course

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"

	"gymme/internal/core/domain/member"
)

// Course is a gym course together with its subscriber set. Subscribers
// are embedded member snapshots with set semantics: a member appears at
// most once and read-back order is whatever the store returns.
type Course struct {
	ID          uuid.UUID
	Name        string
	Subscribers []member.Member
}

func (c Course) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.By(idIsSet)),
		validation.Field(&c.Name, validation.Required, validation.By(notBlank)),
	)
}

// IsSubscribed reports whether the member id is in the subscriber set.
func (c Course) IsSubscribed(id uuid.UUID) bool {
	for _, s := range c.Subscribers {
		if s.ID == id {
			return true
		}
	}
	return false
}

// Subscribe returns a copy of the course with the member added to the
// subscriber set. Subscribing an already subscribed member is a no-op.
func (c Course) Subscribe(m member.Member) Course {
	if c.IsSubscribed(m.ID) {
		return c
	}
	subscribers := make([]member.Member, 0, len(c.Subscribers)+1)
	subscribers = append(subscribers, c.Subscribers...)
	subscribers = append(subscribers, m)
	c.Subscribers = subscribers
	return c
}

// Unsubscribe returns a copy of the course with the member removed from
// the subscriber set.
func (c Course) Unsubscribe(id uuid.UUID) Course {
	subscribers := make([]member.Member, 0, len(c.Subscribers))
	for _, s := range c.Subscribers {
		if s.ID != id {
			subscribers = append(subscribers, s)
		}
	}
	c.Subscribers = subscribers
	return c
}

func idIsSet(value interface{}) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return errors.New("must be a non-zero uuid")
	}
	return nil
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("must not be blank")
	}
	return nil
}
