package transaction

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"gymme/internal/core/domain/course"
	e "gymme/internal/core/domain/errors"
	"gymme/internal/core/domain/logging"
	"gymme/internal/core/domain/member"
	"gymme/internal/core/domain/transaction"
	dbcourse "gymme/internal/db/course"
	dbmember "gymme/internal/db/member"
)

// PgxRepositoryProvider binds both repositories to one open transaction.
type PgxRepositoryProvider struct {
	tx pgx.Tx
}

func NewPgxRepositoryProvider(tx pgx.Tx) *PgxRepositoryProvider {
	if tx == nil {
		panic(e.NewNilArgumentError("tx"))
	}
	return &PgxRepositoryProvider{tx: tx}
}

func (p *PgxRepositoryProvider) Members() member.Repository {
	return dbmember.NewPgxMemberRepository(p.tx)
}

func (p *PgxRepositoryProvider) Courses() course.Repository {
	return dbcourse.NewPgxCourseRepository(p.tx)
}

// PgxTransactionManager runs each unit of work on a connection borrowed
// from the pool for exactly the span of one transaction. BEGIN suspends
// the connection's implicit autocommit mode and COMMIT/ROLLBACK restores
// it; releasing the connection back to the pool on every exit path is
// what keeps it usable for the next call.
type PgxTransactionManager struct {
	pool *pgxpool.Pool
	log  logging.Logger
}

func NewPgxTransactionManager(pool *pgxpool.Pool, log logging.Logger) *PgxTransactionManager {
	if pool == nil {
		panic(e.NewNilArgumentError("pool"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &PgxTransactionManager{pool: pool, log: log}
}

func (m *PgxTransactionManager) Do(ctx context.Context, code transaction.Code) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return transaction.NewError(err.Error(), err)
	}

	if err := code(ctx, NewPgxRepositoryProvider(tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			// The rollback error is the more actionable diagnostic,
			// so it supersedes the unit-of-work error.
			m.log.Error(ctx, "Could not roll back the transaction.",
				logging.Entry("err", rbErr), logging.Entry("cause", err))
			return transaction.NewError(rbErr.Error(), rbErr)
		}
		return transaction.NewError(err.Error(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			m.log.Error(ctx, "Could not roll back the transaction.",
				logging.Entry("err", rbErr), logging.Entry("cause", err))
			return transaction.NewError(rbErr.Error(), rbErr)
		}
		return transaction.NewError(err.Error(), err)
	}
	return nil
}
