package db

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate brings the recipes, accounts and posts tables up to the latest version.
// It runs on one connection checked out of db and hands it back before returning.
func Migrate(ctx context.Context, db *sqlx.DB, log *zap.Logger) (err error) {
	m, err := newMigrate(ctx, db, log)
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if cerr := errors.Join(srcErr, dbErr); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close migrate: %w", cerr))
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	log.Info("database schema ready", zap.Uint("version", version), zap.Bool("dirty", dirty))

	return nil
}

func newMigrate(ctx context.Context, db *sqlx.DB, log *zap.Logger) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		source.Close()
		return nil, fmt.Errorf("failed to get migration connection: %w", err)
	}

	// WithConnection leaves the pool alone: closing the driver releases conn only.
	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
	if err != nil {
		source.Close()
		return nil, errors.Join(fmt.Errorf("failed to create postgres driver: %w", err), conn.Close())
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		source.Close()
		return nil, errors.Join(fmt.Errorf("failed to create migrate instance: %w", err), driver.Close())
	}
	m.Log = &migrateLogger{log: log.Sugar()}

	return m, nil
}

type migrateLogger struct {
	log *zap.SugaredLogger
}

func (l *migrateLogger) Printf(format string, v ...interface{}) {
	l.log.Debugf("[migrate] "+format, v...)
}

func (l *migrateLogger) Verbose() bool {
	return false
}
