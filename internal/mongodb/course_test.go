package mongodb

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"

	"gymme/internal/core/domain/course"
	"gymme/internal/core/domain/member"
)

type courseTestSuite struct {
	suite.Suite
	client   *mongo.Client
	database *mongo.Database
	repo     *MongoCourseRepository
}

func (suite *courseTestSuite) SetupSuite() {
	suite.client, suite.database = CreateTestDatabase()
	suite.repo = NewMongoCourseRepository(suite.database.Collection(COURSE_COLLECTION))
}

func (suite *courseTestSuite) TearDownSuite() {
	suite.client.Disconnect(context.Background())
}

func (suite *courseTestSuite) TearDownTest() {
	DropCollections(suite.database)
}

func TestMongoCourseRepository(t *testing.T) {
	suite.Run(t, new(courseTestSuite))
}

func (s *courseTestSuite) TestSaveAndFindByID() {
	jane := newMember("Jane", "Doe")
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

func (s *courseTestSuite) TestSaveWithoutSubscribers() {
	yoga := course.Course{ID: uuid.New(), Name: "Yoga"}

	err := s.repo.Save(context.Background(), yoga)
	s.Require().Nil(err)

	found, ok, err := s.repo.FindByID(context.Background(), yoga.ID)
	assert := s.Require()
	assert.Nil(err)
	assert.True(ok)
	assert.Empty(found.Subscribers)
}

func (s *courseTestSuite) TestFindByIDMissingIsNotAnError() {
	_, ok, err := s.repo.FindByID(context.Background(), uuid.New())

	assert := s.Require()
	assert.Nil(err)
	assert.False(ok)
}

func (s *courseTestSuite) TestFindAllOrdersByName() {
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

func (s *courseTestSuite) TestUpdateReplacesSubscriberSet() {
	jane := newMember("Jane", "Doe")
	bob := newMember("Bob", "Adams")
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

func (s *courseTestSuite) TestDeleteByID() {
	yoga := course.Course{ID: uuid.New(), Name: "Yoga"}
	s.Require().Nil(s.repo.Save(context.Background(), yoga))

	err := s.repo.DeleteByID(context.Background(), yoga.ID)
	s.Require().Nil(err)

	_, ok, err := s.repo.FindByID(context.Background(), yoga.ID)
	assert := s.Require()
	assert.Nil(err)
	assert.False(ok)
}
