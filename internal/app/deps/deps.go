package deps

import (
	"context"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v4/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"gymme/internal/config"
	dl "gymme/internal/core/domain/logging"
	"gymme/internal/core/domain/transaction"
	dbtransaction "gymme/internal/db/transaction"
	"gymme/internal/implementations/logging"
	"gymme/internal/mongodb"
)

// Deps wires the configured backing store behind the transaction
// manager abstraction. The rest of the application only sees
// transaction.Manager.
type Deps struct {
	Config  *config.Config
	Logger  dl.Logger
	Manager transaction.Manager

	DB          *pgxpool.Pool
	MongoClient *mongo.Client
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	closeLogger := deps.initLogger()

	var closeStore func()
	switch deps.Config.Store {
	case config.STORE_POSTGRESQL:
		closeStore = deps.initPostgresqlStore()
	case config.STORE_MONGODB:
		closeStore = deps.initMongodbStore()
	}

	return deps, func() {
		closeStore()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() {
		logger.Sync()
	}
}

func (deps *Deps) initPostgresqlStore() func() {
	deps.applyMigrations()

	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	deps.Manager = dbtransaction.NewPgxTransactionManager(db, deps.Logger)
	return func() {
		db.Close()
	}
}

func (deps *Deps) applyMigrations() {
	m, err := migrate.New(deps.Config.MigrationsPath, deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB for applying migrations.", dl.Entry("err", err))
		panic(err)
	}
	defer m.Close()
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		deps.Logger.Error(context.Background(), "Could not apply migrations.", dl.Entry("err", err))
		panic(err)
	}
}

func (deps *Deps) initMongodbStore() func() {
	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(deps.Config.MongodbURL))
	if err != nil {
		deps.Logger.Error(ctx, "Could not connect to MongoDB.", dl.Entry("err", err))
		panic(err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		deps.Logger.Error(ctx, "Could not reach the MongoDB primary.", dl.Entry("err", err))
		panic(err)
	}
	deps.MongoClient = client

	database := client.Database(deps.Config.MongodbDatabase)
	members := database.Collection(mongodb.MEMBER_COLLECTION)
	courses := database.Collection(mongodb.COURSE_COLLECTION)
	provider := mongodb.NewMongoRepositoryProvider(
		mongodb.NewMongoMemberRepository(members, courses),
		mongodb.NewMongoCourseRepository(courses),
	)
	deps.Manager = mongodb.NewMongoTransactionManager(client, provider, deps.Logger)
	return func() {
		client.Disconnect(context.Background())
	}
}
