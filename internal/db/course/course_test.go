package course

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"

	"gymme/internal/core/domain/course"
	"gymme/internal/core/domain/member"
	"gymme/internal/db"
	dbmember "gymme/internal/db/member"
)

type testSuite struct {
	suite.Suite
	pool    *pgxpool.Pool
	repo    *PgxCourseRepository
	members *dbmember.PgxMemberRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxCourseRepository(suite.pool)
	suite.members = dbmember.NewPgxMemberRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxCourseRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) createMember(name, surname string) member.Member {
	s.T().Helper()
	m := member.Member{
		ID:          uuid.New(),
		Name:        name,
		Surname:     surname,
		DateOfBirth: member.Date(1996, time.October, 31),
	}
	s.Require().Nil(s.members.Save(context.Background(), m))
	return m
}

func (s *testSuite) TestSaveAndFindByID() {
	jane := s.createMember("Jane", "Doe")
	yoga := course.Course{ID: uuid.New(), Name: "Yoga", Subscribers: []member.Member{jane}}

	err := s.repo.Save(context.Background(), yoga)
	s.Require().Nil(err)

	found, ok, err := s.repo.FindByID(context.Background(), yoga.ID)
	assert := s.Require()
	assert.Nil(err)
	assert.True(ok)
	assert.Equal(yoga.ID, found.ID)
	assert.Equal(yoga.Name, found.Name)
	assert.ElementsMatch(yoga.Subscribers, found.Subscribers)
}

func (s *testSuite) TestSaveWithoutSubscribers() {
	yoga := course.Course{ID: uuid.New(), Name: "Yoga"}

	err := s.repo.Save(context.Background(), yoga)
	s.Require().Nil(err)

	found, ok, err := s.repo.FindByID(context.Background(), yoga.ID)
	assert := s.Require()
	assert.Nil(err)
	assert.True(ok)
	assert.Empty(found.Subscribers)
}

func (s *testSuite) TestFindByIDMissingIsNotAnError() {
	_, ok, err := s.repo.FindByID(context.Background(), uuid.New())

	assert := s.Require()
	assert.Nil(err)
	assert.False(ok)
}

func (s *testSuite) TestFindAllOrdersByName() {
	yoga := course.Course{ID: uuid.New(), Name: "Yoga"}
	crossfit := course.Course{ID: uuid.New(), Name: "Crossfit"}
	s.Require().Nil(s.repo.Save(context.Background(), yoga))
	s.Require().Nil(s.repo.Save(context.Background(), crossfit))

	courses, err := s.repo.FindAll(context.Background())

	assert := s.Require()
	assert.Nil(err)
	assert.Len(courses, 2)
	assert.Equal("Crossfit", courses[0].Name)
	assert.Equal("Yoga", courses[1].Name)
}

func (s *testSuite) TestFindAllEmpty() {
	courses, err := s.repo.FindAll(context.Background())

	assert := s.Require()
	assert.Nil(err)
	assert.Empty(courses)
	assert.NotNil(courses)
}

func (s *testSuite) TestUpdateReplacesSubscriberSet() {
	jane := s.createMember("Jane", "Doe")
	bob := s.createMember("Bob", "Adams")
	yoga := course.Course{ID: uuid.New(), Name: "Yoga", Subscribers: []member.Member{jane}}
	s.Require().Nil(s.repo.Save(context.Background(), yoga))

	updated := yoga
	updated.Name = "Power Yoga"
	updated.Subscribers = []member.Member{bob}
	err := s.repo.Update(context.Background(), updated)
	s.Require().Nil(err)

	found, ok, err := s.repo.FindByID(context.Background(), yoga.ID)
	assert := s.Require()
	assert.Nil(err)
	assert.True(ok)
	assert.Equal("Power Yoga", found.Name)
	assert.ElementsMatch([]member.Member{bob}, found.Subscribers)
}

func (s *testSuite) TestDeleteByID() {
	jane := s.createMember("Jane", "Doe")
	yoga := course.Course{ID: uuid.New(), Name: "Yoga", Subscribers: []member.Member{jane}}
	s.Require().Nil(s.repo.Save(context.Background(), yoga))

	err := s.repo.DeleteByID(context.Background(), yoga.ID)
	s.Require().Nil(err)

	_, ok, err := s.repo.FindByID(context.Background(), yoga.ID)
	assert := s.Require()
	assert.Nil(err)
	assert.False(ok)

	// the member itself survives the course deletion
	_, ok, err = s.members.FindByID(context.Background(), jane.ID)
	assert.Nil(err)
	assert.True(ok)
}
