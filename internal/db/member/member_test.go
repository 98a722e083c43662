package member

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"

	"gymme/internal/core/domain/member"
	"gymme/internal/db"
)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxMemberRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxMemberRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxMemberRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func newMember(name, surname string) member.Member {
	return member.Member{
		ID:          uuid.New(),
		Name:        name,
		Surname:     surname,
		DateOfBirth: member.Date(1996, time.October, 31),
	}
}

func (s *testSuite) TestSaveAndFindByID() {
	jane := newMember("Jane", "Doe")

	err := s.repo.Save(context.Background(), jane)
	s.Require().Nil(err)

	found, ok, err := s.repo.FindByID(context.Background(), jane.ID)
	assert := s.Require()
	assert.Nil(err)
	assert.True(ok)
	assert.Equal(jane, found)
}

func (s *testSuite) TestFindByIDMissingIsNotAnError() {
	_, ok, err := s.repo.FindByID(context.Background(), uuid.New())

	assert := s.Require()
	assert.Nil(err)
	assert.False(ok)
}

func (s *testSuite) TestFindAllEmpty() {
	members, err := s.repo.FindAll(context.Background())

	assert := s.Require()
	assert.Nil(err)
	assert.Empty(members)
	assert.NotNil(members)
}

func (s *testSuite) TestFindAllOrdersBySurname() {
	zoe := newMember("Zoe", "Adams")
	jane := newMember("Jane", "Doe")
	s.Require().Nil(s.repo.Save(context.Background(), jane))
	s.Require().Nil(s.repo.Save(context.Background(), zoe))

	members, err := s.repo.FindAll(context.Background())

	assert := s.Require()
	assert.Nil(err)
	assert.Equal([]member.Member{zoe, jane}, members)
}

func (s *testSuite) TestUpdate() {
	jane := newMember("Jane", "Doe")
	s.Require().Nil(s.repo.Save(context.Background(), jane))

	updated := jane
	updated.Surname = "Smith"
	updated.DateOfBirth = member.Date(1995, time.January, 1)
	err := s.repo.Update(context.Background(), updated)
	s.Require().Nil(err)

	found, ok, err := s.repo.FindByID(context.Background(), jane.ID)
	assert := s.Require()
	assert.Nil(err)
	assert.True(ok)
	assert.Equal(updated, found)
}

func (s *testSuite) TestDeleteByID() {
	jane := newMember("Jane", "Doe")
	s.Require().Nil(s.repo.Save(context.Background(), jane))

	err := s.repo.DeleteByID(context.Background(), jane.ID)
	s.Require().Nil(err)

	_, ok, err := s.repo.FindByID(context.Background(), jane.ID)
	assert := s.Require()
	assert.Nil(err)
	assert.False(ok)
}

func (s *testSuite) TestDeleteByIDRemovesSubscriptions() {
	jane := newMember("Jane", "Doe")
	s.Require().Nil(s.repo.Save(context.Background(), jane))
	courseID := uuid.New()
	ctx := context.Background()
	_, err := s.pool.Exec(ctx, "INSERT INTO course (id, name) VALUES ($1, 'Yoga')", courseID.String())
	s.Require().Nil(err)
	_, err = s.pool.Exec(
		ctx,
		"INSERT INTO course_subscriber (course_id, member_id) VALUES ($1, $2)",
		courseID.String(),
		jane.ID.String(),
	)
	s.Require().Nil(err)

	err = s.repo.DeleteByID(ctx, jane.ID)
	s.Require().Nil(err)

	var count int
	err = s.pool.QueryRow(ctx, "SELECT count(*) FROM course_subscriber").Scan(&count)
	assert := s.Require()
	assert.Nil(err)
	assert.Zero(count)
}
