package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"gymme/internal/core/domain/course"
	e "gymme/internal/core/domain/errors"
	"gymme/internal/core/domain/logging"
	"gymme/internal/core/domain/member"
	"gymme/internal/core/domain/transaction"
)

// MongoRepositoryProvider hands out the repositories; the session they
// operate under travels in the context, so the same instances serve
// every transaction of the manager.
type MongoRepositoryProvider struct {
	memberRepository *MongoMemberRepository
	courseRepository *MongoCourseRepository
}

func NewMongoRepositoryProvider(
	memberRepository *MongoMemberRepository,
	courseRepository *MongoCourseRepository,
) *MongoRepositoryProvider {
	if memberRepository == nil {
		panic(e.NewNilArgumentError("memberRepository"))
	}
	if courseRepository == nil {
		panic(e.NewNilArgumentError("courseRepository"))
	}
	return &MongoRepositoryProvider{
		memberRepository: memberRepository,
		courseRepository: courseRepository,
	}
}

func (p *MongoRepositoryProvider) Members() member.Repository {
	return p.memberRepository
}

func (p *MongoRepositoryProvider) Courses() course.Repository {
	return p.courseRepository
}

// MongoTransactionManager wraps each unit of work in a session
// transaction. It drives StartTransaction/CommitTransaction/
// AbortTransaction explicitly instead of session.WithTransaction, which
// would retry transient errors on its own; a failed unit of work must
// surface as a single failure, retrying is the caller's decision.
// Requires a replica set or mongos deployment.
type MongoTransactionManager struct {
	client   *mongo.Client
	provider *MongoRepositoryProvider
	log      logging.Logger
}

func NewMongoTransactionManager(
	client *mongo.Client,
	provider *MongoRepositoryProvider,
	log logging.Logger,
) *MongoTransactionManager {
	if client == nil {
		panic(e.NewNilArgumentError("client"))
	}
	if provider == nil {
		panic(e.NewNilArgumentError("provider"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &MongoTransactionManager{client: client, provider: provider, log: log}
}

func (m *MongoTransactionManager) Do(ctx context.Context, code transaction.Code) error {
	session, err := m.client.StartSession()
	if err != nil {
		return transaction.NewError(err.Error(), err)
	}
	// EndSession also aborts a transaction left open on a panic path.
	defer session.EndSession(ctx)

	if err := session.StartTransaction(); err != nil {
		return transaction.NewError(err.Error(), err)
	}

	sessCtx := mongo.NewSessionContext(ctx, session)
	if err := code(sessCtx, m.provider); err != nil {
		if abortErr := session.AbortTransaction(ctx); abortErr != nil {
			m.log.Error(ctx, "Could not abort the transaction.",
				logging.Entry("err", abortErr), logging.Entry("cause", err))
			return transaction.NewError(abortErr.Error(), abortErr)
		}
		return transaction.NewError(err.Error(), err)
	}

	if err := session.CommitTransaction(ctx); err != nil {
		return transaction.NewError(err.Error(), err)
	}
	return nil
}
