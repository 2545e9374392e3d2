package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"embed"
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/DataDog/go-sqllexer"
	"github.com/XSAM/otelsql"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// InitDB opens the session store database and migrates it.
// With DB_HOST set to "-" nothing is registered and sessions stay in memory.
type InitDB struct {
	db                 *sql.DB
	metricRegistration metric.Registration
	skipMigration      bool
	Logger             *log.Logger   `resolve:""`
	DBUser             string        `config:"DB_USER" default:"fareassist"`
	DBPass             string        `config:"DB_PASS" default:"-"`
	DBHost             string        `config:"DB_HOST" default:"-"`
	DBPort             string        `config:"DB_PORT" default:"5432"`
	DBName             string        `config:"DB_NAME" default:"fareassist"`
	SSLMode            string        `config:"DB_SSLMODE" default:"disable"`
	MaxConns           int32         `config:"DB_MAX_CONNS" default:"10"`
	ConnectTimeout     time.Duration `config:"DB_CONNECT_TIMEOUT" default:"5s"`
}

// Initialize connects, applies the embedded migrations and registers the *sql.DB.
func (di *InitDB) Initialize(ctx context.Context) (context.Context, error) {
	if !di.enabled() {
		di.Logger.Println("InitDB: no database configured, sessions are kept in memory")
		return ctx, nil
	}

	cfg, err := pgxpool.ParseConfig(di.dsn())
	if err != nil {
		return ctx, fmt.Errorf("invalid database config: %w", err)
	}
	if di.MaxConns > 0 {
		cfg.MaxConns = di.MaxConns
	}
	cfg.ConnConfig.ConnectTimeout = di.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return ctx, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	dbAttributes := otelsql.WithAttributes(
		semconv.DBSystemNamePostgreSQL,
		semconv.DBNamespace(di.DBName),
	)
	di.db = otelsql.OpenDB(
		stdlib.GetPoolConnector(pool),
		dbAttributes,
		otelsql.WithInstrumentAttributesGetter(withQueryAttributes(di.Logger)),
	)

	di.metricRegistration, err = otelsql.RegisterDBStatsMetrics(di.db, dbAttributes)
	if err != nil {
		return ctx, fmt.Errorf("failed to register db stats metrics: %w", err)
	}

	if !di.skipMigration {
		pingCtx, cancel := context.WithTimeout(ctx, di.ConnectTimeout)
		defer cancel()
		if err := di.db.PingContext(pingCtx); err != nil {
			return ctx, fmt.Errorf("database %s unreachable: %w", di.DBHost, err)
		}
		if err := di.runMigrations(); err != nil {
			return ctx, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	depend.Register(di.db)
	di.Logger.Printf("InitDB: session store at %s/%s", di.DBHost, di.DBName)
	return ctx, nil
}

func (di *InitDB) enabled() bool {
	return di.DBHost != "-" && di.DBHost != ""
}

// dsn builds the connection URL with escaped credentials.
func (di *InitDB) dsn() string {
	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(di.DBHost, di.DBPort),
		Path:     "/" + di.DBName,
		RawQuery: url.Values{"sslmode": []string{di.SSLMode}}.Encode(),
	}
	if di.DBPass == "-" || di.DBPass == "" {
		u.User = url.User(di.DBUser)
	} else {
		u.User = url.UserPassword(di.DBUser, di.DBPass)
	}
	return u.String()
}

func (di *InitDB) runMigrations() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	driver, err := postgres.WithInstance(di.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	di.Logger.Printf("InitDB: schema at version %d (dirty=%t)", version, dirty)
	return nil
}

// Close releases the database and its stats callback.
func (di *InitDB) Close() {
	if di.db == nil {
		return
	}
	if err := di.db.Close(); err != nil {
		di.Logger.Printf("InitDB: failed to close database connection: %v", err)
	}
	if di.metricRegistration != nil {
		if err := di.metricRegistration.Unregister(); err != nil {
			di.Logger.Printf("InitDB: failed to unregister db stats metrics: %v", err)
		}
	}
}

// withQueryAttributes labels query and exec spans with the statement kind and the
// tables it touches, e.g. "INSERT chat_session_messages".
func withQueryAttributes(logger *log.Logger) func(ctx context.Context, method otelsql.Method, query string, args []driver.NamedValue) []attribute.KeyValue {
	return func(ctx context.Context, method otelsql.Method, query string, args []driver.NamedValue) []attribute.KeyValue {
		if method != otelsql.MethodConnQuery && method != otelsql.MethodConnExec {
			return nil
		}

		operations, tables := extractSQLOperation(logger, query)
		attrs := make([]attribute.KeyValue, 0, 2)
		if len(operations) > 0 {
			attrs = append(attrs, semconv.DBQuerySummary(strings.TrimSpace(
				strings.Join(operations, ",")+" "+strings.Join(tables, ","),
			)))
		}
		if len(tables) > 0 {
			attrs = append(attrs, semconv.DBCollectionName(strings.Join(tables, ",")))
		}
		return attrs
	}
}

func extractSQLOperation(logger *log.Logger, query string) ([]string, []string) {
	normalizer := sqllexer.NewNormalizer(
		sqllexer.WithCollectTables(true),
		sqllexer.WithCollectCommands(true),
		sqllexer.WithCollectComments(false),
	)

	_, meta, err := normalizer.Normalize(query)
	if err != nil {
		logger.Printf("InitDB: failed to parse query for tracing: %v", err)
		return nil, nil
	}
	return meta.Commands, meta.Tables
}
