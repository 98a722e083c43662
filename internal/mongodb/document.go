package mongodb

import (
	"time"

	"github.com/google/uuid"

	"gymme/internal/core/domain/course"
	"gymme/internal/core/domain/member"
)

const MEMBER_COLLECTION = "members"
const COURSE_COLLECTION = "courses"

// Dates of birth are persisted as plain YYYY-MM-DD strings; they carry
// no time component.
const DATE_LAYOUT = "2006-01-02"

type memberDocument struct {
	ID          string `bson:"_id"`
	Name        string `bson:"name"`
	Surname     string `bson:"surname"`
	DateOfBirth string `bson:"dateOfBirth"`
}

// subscriberDocument is the member snapshot embedded inside a course
// document. It repeats the member fields under an "id" key so that the
// course's own "_id" stays unambiguous.
type subscriberDocument struct {
	ID          string `bson:"id"`
	Name        string `bson:"name"`
	Surname     string `bson:"surname"`
	DateOfBirth string `bson:"dateOfBirth"`
}

type courseDocument struct {
	ID          string               `bson:"_id"`
	Name        string               `bson:"name"`
	Subscribers []subscriberDocument `bson:"subscribers"`
}

func encodeMember(m member.Member) memberDocument {
	return memberDocument{
		ID:          m.ID.String(),
		Name:        m.Name,
		Surname:     m.Surname,
		DateOfBirth: m.DateOfBirth.Format(DATE_LAYOUT),
	}
}

func decodeMember(doc memberDocument) (m member.Member, err error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return m, err
	}
	dateOfBirth, err := time.ParseInLocation(DATE_LAYOUT, doc.DateOfBirth, time.UTC)
	if err != nil {
		return m, err
	}
	return member.Member{
		ID:          id,
		Name:        doc.Name,
		Surname:     doc.Surname,
		DateOfBirth: dateOfBirth,
	}, nil
}

func encodeCourse(c course.Course) courseDocument {
	subscribers := make([]subscriberDocument, 0, len(c.Subscribers))
	for _, s := range c.Subscribers {
		snapshot := encodeMember(s)
		subscribers = append(subscribers, subscriberDocument(snapshot))
	}
	return courseDocument{
		ID:          c.ID.String(),
		Name:        c.Name,
		Subscribers: subscribers,
	}
}

func decodeCourse(doc courseDocument) (c course.Course, err error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return c, err
	}
	subscribers := make([]member.Member, 0, len(doc.Subscribers))
	for _, s := range doc.Subscribers {
		m, err := decodeMember(memberDocument(s))
		if err != nil {
			return c, err
		}
		subscribers = append(subscribers, m)
	}
	return course.Course{
		ID:          id,
		Name:        doc.Name,
		Subscribers: subscribers,
	}, nil
}
