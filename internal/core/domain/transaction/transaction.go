package transaction

import (
	"context"

	"gymme/internal/core/domain/course"
	"gymme/internal/core/domain/member"
)

// RepositoryProvider hands out repositories bound to one active
// transaction. Instances obtained from it must not be reused after the
// transaction ends.
type RepositoryProvider interface {
	Members() member.Repository
	Courses() course.Repository
}

// Code is a unit of work executed entirely within one atomic transaction
// boundary. It may perform any number of repository calls; either all of
// them become visible or none do.
type Code func(ctx context.Context, provider RepositoryProvider) error

// Manager runs a unit of work inside the native transaction boundary of
// the backing store. Every store-level failure, whether it happens in the
// unit of work, at commit, or during rollback, surfaces as *Error; no
// driver error escapes unwrapped. A Manager instance wraps one shared
// connection or session and must not be used by two in-flight calls at
// once.
type Manager interface {
	Do(ctx context.Context, code Code) error
}
