package member

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	e "gymme/internal/core/domain/errors"
	"gymme/internal/core/domain/member"
	"gymme/internal/db"
)

const QUERY_FIND_ALL = `SELECT id, name, surname, date_of_birth FROM member ORDER BY surname, name`
const QUERY_FIND_BY_ID = `SELECT id, name, surname, date_of_birth FROM member WHERE id = $1`
const QUERY_INSERT = `INSERT INTO member (id, name, surname, date_of_birth) VALUES ($1, $2, $3, $4)`
const QUERY_UPDATE = `UPDATE member SET name = $2, surname = $3, date_of_birth = $4 WHERE id = $1`
const QUERY_DELETE = `DELETE FROM member WHERE id = $1`
const QUERY_DELETE_SUBS = `DELETE FROM course_subscriber WHERE member_id = $1`

type PgxMemberRepository struct {
	db db.Querier
}

func NewPgxMemberRepository(db db.Querier) *PgxMemberRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxMemberRepository{db: db}
}

func (r *PgxMemberRepository) FindAll(ctx context.Context) ([]member.Member, error) {
	rows, err := r.db.Query(ctx, QUERY_FIND_ALL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]member.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *PgxMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (m member.Member, ok bool, err error) {
	row := r.db.QueryRow(ctx, QUERY_FIND_BY_ID, encodeUUID(id))
	m, err = scanMember(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return m, false, nil
	}
	if err != nil {
		return m, false, err
	}
	return m, true, nil
}

func (r *PgxMemberRepository) Save(ctx context.Context, m member.Member) error {
	_, err := r.db.Exec(ctx, QUERY_INSERT, encodeUUID(m.ID), m.Name, m.Surname, encodeDate(m.DateOfBirth))
	return err
}

func (r *PgxMemberRepository) Update(ctx context.Context, m member.Member) error {
	_, err := r.db.Exec(ctx, QUERY_UPDATE, encodeUUID(m.ID), m.Name, m.Surname, encodeDate(m.DateOfBirth))
	return err
}

// DeleteByID strips the member from every subscriber set before removing
// the member row. Both statements run on the same Querier, so inside a
// transaction they land or vanish together.
func (r *PgxMemberRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, QUERY_DELETE_SUBS, encodeUUID(id)); err != nil {
		return err
	}
	_, err := r.db.Exec(ctx, QUERY_DELETE, encodeUUID(id))
	return err
}

func scanMember(row pgx.Row) (m member.Member, err error) {
	var id pgtype.UUID
	var name, surname string
	var dateOfBirth pgtype.Date
	if err := row.Scan(&id, &name, &surname, &dateOfBirth); err != nil {
		return m, err
	}
	return member.Member{
		ID:          uuid.UUID(id.Bytes),
		Name:        name,
		Surname:     surname,
		DateOfBirth: member.Date(dateOfBirth.Time.Date()),
	}, nil
}

func encodeUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: [16]byte(id), Status: pgtype.Present}
}

func encodeDate(date time.Time) pgtype.Date {
	return pgtype.Date{Time: date, Status: pgtype.Present}
}
