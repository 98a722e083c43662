package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"gymme/internal/core/domain/course"
	"gymme/internal/core/domain/member"
)

func TestShowMembers(t *testing.T) {
	out := &bytes.Buffer{}
	v := NewConsoleView(out, &bytes.Buffer{})
	jane := member.Member{
		ID:          uuid.MustParse("a81bc81b-dead-4e5d-abff-90865d1e13b1"),
		Name:        "Jane",
		Surname:     "Doe",
		DateOfBirth: member.Date(1996, time.October, 31),
	}

	v.ShowMembers([]member.Member{jane})

	assert.Contains(t, out.String(), "Doe")
	assert.Contains(t, out.String(), "1996-10-31")
	assert.Contains(t, out.String(), "a81bc81b-dead-4e5d-abff-90865d1e13b1")
}

func TestShowCourses(t *testing.T) {
	out := &bytes.Buffer{}
	v := NewConsoleView(out, &bytes.Buffer{})
	yoga := course.Course{ID: uuid.New(), Name: "Yoga", Subscribers: []member.Member{{ID: uuid.New()}}}

	v.ShowCourses([]course.Course{yoga})

	assert.Contains(t, out.String(), "Yoga")
	assert.Contains(t, out.String(), "1")
}

func TestShowErrorGoesToErrorWriter(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	v := NewConsoleView(out, errOut)

	v.ShowError("something broke")

	assert.Empty(t, out.String())
	assert.Equal(t, "ERROR: something broke\n", errOut.String())
}
