package course

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"gymme/internal/core/domain/course"
	e "gymme/internal/core/domain/errors"
	"gymme/internal/core/domain/member"
	"gymme/internal/db"
)

const QUERY_FIND_ALL = `SELECT id, name FROM course ORDER BY name`
const QUERY_FIND_BY_ID = `SELECT id, name FROM course WHERE id = $1`
const QUERY_FIND_SUBS = `SELECT m.id, m.name, m.surname, m.date_of_birth
	FROM course_subscriber AS s
	INNER JOIN member AS m ON s.member_id = m.id
	WHERE s.course_id = $1
	ORDER BY m.surname, m.name`
const QUERY_INSERT_COURSE = `INSERT INTO course (id, name) VALUES ($1, $2)`
const QUERY_INSERT_SUB = `INSERT INTO course_subscriber (course_id, member_id) VALUES ($1, $2)`
const QUERY_UPDATE_COURSE = `UPDATE course SET name = $2 WHERE id = $1`
const QUERY_DELETE_COURSE = `DELETE FROM course WHERE id = $1`
const QUERY_DELETE_SUBS = `DELETE FROM course_subscriber WHERE course_id = $1`

// PgxCourseRepository keeps the subscriber set in the course_subscriber
// join table and reconstructs it on every read, so subscriber attributes
// always reflect the current member rows.
type PgxCourseRepository struct {
	db db.Querier
}

func NewPgxCourseRepository(db db.Querier) *PgxCourseRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxCourseRepository{db: db}
}

func (r *PgxCourseRepository) FindAll(ctx context.Context) ([]course.Course, error) {
	rows, err := r.db.Query(ctx, QUERY_FIND_ALL)
	if err != nil {
		return nil, err
	}

	// Collect the course rows before loading subscribers: a pgx
	// connection supports only one active query at a time.
	courses := make([]course.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		courses = append(courses, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for ix := range courses {
		subscribers, err := r.findSubscribers(ctx, courses[ix].ID)
		if err != nil {
			return nil, err
		}
		courses[ix].Subscribers = subscribers
	}
	return courses, nil
}

func (r *PgxCourseRepository) FindByID(ctx context.Context, id uuid.UUID) (c course.Course, ok bool, err error) {
	row := r.db.QueryRow(ctx, QUERY_FIND_BY_ID, encodeUUID(id))
	c, err = scanCourse(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return c, false, nil
	}
	if err != nil {
		return c, false, err
	}
	c.Subscribers, err = r.findSubscribers(ctx, c.ID)
	if err != nil {
		return c, false, err
	}
	return c, true, nil
}

func (r *PgxCourseRepository) Save(ctx context.Context, c course.Course) error {
	if _, err := r.db.Exec(ctx, QUERY_INSERT_COURSE, encodeUUID(c.ID), c.Name); err != nil {
		return err
	}
	for _, s := range c.Subscribers {
		if _, err := r.db.Exec(ctx, QUERY_INSERT_SUB, encodeUUID(c.ID), encodeUUID(s.ID)); err != nil {
			return err
		}
	}
	return nil
}

// Update replaces the course name and rewrites the whole subscriber set.
func (r *PgxCourseRepository) Update(ctx context.Context, c course.Course) error {
	if _, err := r.db.Exec(ctx, QUERY_UPDATE_COURSE, encodeUUID(c.ID), c.Name); err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, QUERY_DELETE_SUBS, encodeUUID(c.ID)); err != nil {
		return err
	}
	for _, s := range c.Subscribers {
		if _, err := r.db.Exec(ctx, QUERY_INSERT_SUB, encodeUUID(c.ID), encodeUUID(s.ID)); err != nil {
			return err
		}
	}
	return nil
}

func (r *PgxCourseRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, QUERY_DELETE_SUBS, encodeUUID(id)); err != nil {
		return err
	}
	_, err := r.db.Exec(ctx, QUERY_DELETE_COURSE, encodeUUID(id))
	return err
}

func (r *PgxCourseRepository) findSubscribers(ctx context.Context, courseID uuid.UUID) ([]member.Member, error) {
	rows, err := r.db.Query(ctx, QUERY_FIND_SUBS, encodeUUID(courseID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subscribers := make([]member.Member, 0)
	for rows.Next() {
		var id pgtype.UUID
		var name, surname string
		var dateOfBirth pgtype.Date
		if err := rows.Scan(&id, &name, &surname, &dateOfBirth); err != nil {
			return nil, err
		}
		subscribers = append(subscribers, member.Member{
			ID:          uuid.UUID(id.Bytes),
			Name:        name,
			Surname:     surname,
			DateOfBirth: member.Date(dateOfBirth.Time.Date()),
		})
	}
	return subscribers, rows.Err()
}

func scanCourse(row pgx.Row) (c course.Course, err error) {
	var id pgtype.UUID
	var name string
	if err := row.Scan(&id, &name); err != nil {
		return c, err
	}
	return course.Course{ID: uuid.UUID(id.Bytes), Name: name}, nil
}

func encodeUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: [16]byte(id), Status: pgtype.Present}
}
