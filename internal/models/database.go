package models

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Extended SQLite result codes, see https://www.sqlite.org/rescode.html
const (
	sqliteConstraintForeignKey = 787
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

// PostgreSQL error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// PoolConfig configures the connection pool underneath the gorm connection.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// SQLite returns the dialector for the SQLite database at path with foreign
// key enforcement enabled.
func SQLite(path string) gorm.Dialector {
	return sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path))
}

// Connect opens the database with the dialector and configures the connection pool.
//
// The returned connection translates storage engine errors into the errors
// defined in this package.
func Connect(dialector gorm.Dialector, pool PoolConfig) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(dialector, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	if pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}

	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}

	err = registerCallbacks(db)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	log.Debug().Str("dialector", dialector.Name()).Int("maxOpenConns", pool.MaxOpenConns).Msg("Database connected")
	return db, nil
}

// Close closes the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	return sqlDB.Close()
}

// Migrate migrates all models to the schema defined in the code.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(Category{}, Item{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}

// Watch pings the database every interval until ctx is done. When a ping
// fails, onFailure is called with the error and Watch returns.
func Watch(ctx context.Context, db *gorm.DB, interval time.Duration, onFailure func(error)) {
	if interval <= 0 {
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		onFailure(err)
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := sqlDB.PingContext(ctx)
			if err != nil && ctx.Err() == nil {
				log.Error().Err(err).Msg("Unexpected error on idle database connection")
				onFailure(err)
				return
			}
		}
	}
}

func registerCallbacks(db *gorm.DB) error {
	err := db.Callback().Query().After("*").Register("inventory:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("inventory:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("inventory:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("inventory:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("inventory:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("inventory:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Delete().After("*").Register("inventory:after_delete", deleteCallback)
	if err != nil {
		return err
	}

	return db.Callback().Delete().After("*").Register("inventory:after_delete_general", generalCallback)
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// "categories" => "category", "items" => "item"
		name := strings.TrimSuffix(db.Statement.Table, "s")
		if strings.HasSuffix(name, "ie") {
			name = strings.TrimSuffix(name, "ie") + "y"
		}

		db.Error = fmt.Errorf("%w %s matching your query", ErrNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	switch constraintViolation(db.Error) {
	case violationUnique:
		// Names are unique per resource type
		switch db.Statement.Table {
		case "categories":
			db.Error = ErrCategoryNameNotUnique
		case "items":
			db.Error = ErrItemNameNotUnique
		}

	case violationForeignKey:
		// Items reference their category
		if db.Statement.Table == "items" {
			db.Error = ErrCategoryDoesNotExist
		}
	}
}

// deleteCallback translates foreign key violations on delete. Deleting a
// category is restricted while items reference it.
func deleteCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if constraintViolation(db.Error) == violationForeignKey && db.Statement.Table == "categories" {
		db.Error = ErrCategoryInUse
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil || known(db.Error) {
		return
	}

	log.Error().Str("table", db.Statement.Table).Msgf("%T: %v", db.Error, db.Error.Error())
	db.Error = ErrGeneral
}

// known reports if the error is one of the errors of this package.
func known(err error) bool {
	for _, e := range []error{ErrGeneral, ErrNotFound, ErrUniqueViolation, ErrForeignKeyViolation, ErrReferentialIntegrityViolation} {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

type violation int

const (
	violationNone violation = iota
	violationUnique
	violationForeignKey
)

// constraintViolation returns the kind of constraint the error reports as
// violated, for both PostgreSQL and SQLite.
func constraintViolation(err error) violation {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return violationUnique
		case pgForeignKeyViolation:
			return violationForeignKey
		}

		return violationNone
	}

	var sqliteErr *go_sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqliteConstraintUnique, sqliteConstraintPrimaryKey:
			return violationUnique
		case sqliteConstraintForeignKey:
			return violationForeignKey
		}
	}

	// The SQLite driver only reports extended codes when they are enabled,
	// the message is always the same
	switch {
	case strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return violationUnique
	case strings.Contains(err.Error(), "FOREIGN KEY constraint failed"):
		return violationForeignKey
	}

	return violationNone
}
