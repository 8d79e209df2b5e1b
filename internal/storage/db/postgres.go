package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanRulev/modelrepos.git/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"

	"github.com/jmoiron/sqlx"
)

const pingTimeout = 5 * time.Second

func DSN(conn config.DBConn) string {
	return fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
		conn.Host, conn.Port, conn.Name, conn.User, conn.Password, conn.SSL)
}

// InitDB opens the single handle shared by every repository. Driver is
// "postgres" (lib/pq) or "pgx"; sqlx binds $n placeholders for both.
func InitDB(ctx context.Context, cfg config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(cfg.Driver, DSN(cfg.Conn))
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("failed db ping: %w", err), db.Close())
	}

	return db, nil
}
