package course

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"gymme/internal/core/domain/member"
)

func newMember(name string) member.Member {
	return member.Member{
		ID:          uuid.New(),
		Name:        name,
		Surname:     "Doe",
		DateOfBirth: member.Date(1996, time.October, 31),
	}
}

func TestValidate(t *testing.T) {
	assert := require.New(t)

	assert.Nil(Course{ID: uuid.New(), Name: "Yoga"}.Validate())
	assert.NotNil(Course{Name: "Yoga"}.Validate())
	assert.NotNil(Course{ID: uuid.New()}.Validate())
	assert.NotNil(Course{ID: uuid.New(), Name: "   "}.Validate())
}

func TestSubscribe(t *testing.T) {
	assert := require.New(t)
	jane := newMember("Jane")
	bob := newMember("Bob")
	c := Course{ID: uuid.New(), Name: "Yoga"}

	c = c.Subscribe(jane)
	assert.True(c.IsSubscribed(jane.ID))
	assert.False(c.IsSubscribed(bob.ID))
	assert.Len(c.Subscribers, 1)

	// set semantics: subscribing twice is a no-op
	c = c.Subscribe(jane)
	assert.Len(c.Subscribers, 1)

	c = c.Subscribe(bob)
	assert.Len(c.Subscribers, 2)
}

func TestUnsubscribe(t *testing.T) {
	assert := require.New(t)
	jane := newMember("Jane")
	bob := newMember("Bob")
	c := Course{ID: uuid.New(), Name: "Yoga"}.Subscribe(jane).Subscribe(bob)

	c = c.Unsubscribe(jane.ID)
	assert.False(c.IsSubscribed(jane.ID))
	assert.True(c.IsSubscribed(bob.ID))

	c = c.Unsubscribe(jane.ID)
	assert.Len(c.Subscribers, 1)
}

func TestSubscribeDoesNotMutateReceiver(t *testing.T) {
	assert := require.New(t)
	jane := newMember("Jane")
	original := Course{ID: uuid.New(), Name: "Yoga"}

	subscribed := original.Subscribe(jane)

	assert.Empty(original.Subscribers)
	assert.Len(subscribed.Subscribers, 1)
}
