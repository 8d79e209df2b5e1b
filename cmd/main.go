package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/DanRulev/modelrepos.git/internal/config"
	"github.com/DanRulev/modelrepos.git/internal/repository"
	"github.com/DanRulev/modelrepos.git/internal/service"
	"github.com/DanRulev/modelrepos.git/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
	}

	logger := setupLogger(cfg.Env)

	if err := run(cfg, logger, os.Stdout); err != nil {
		logger.Error("stopped", zap.String("mode", cfg.App.Mode), zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// run owns the connection for one console session and closes it on every path.
func run(cfg *config.Config, logger *zap.Logger, w io.Writer) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.Timeout)
	defer cancel()

	conn, err := db.InitDB(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("failed init db: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed close db: %w", cerr))
		}
	}()

	if cfg.DB.Migrate {
		if err := db.Migrate(ctx, conn, logger); err != nil {
			return fmt.Errorf("failed migrate db: %w", err)
		}
	}

	repos := repository.NewRepository(conn)
	services := service.InitServices(repos, logger)

	switch cfg.App.Mode {
	case config.ModeSocial:
		return printSocial(ctx, w, services)
	default:
		return printRecipes(ctx, w, services)
	}
}

func printRecipes(ctx context.Context, w io.Writer, s *service.Service) error {
	lines, err := s.Directory(ctx)
	if err != nil {
		return err
	}
	printLines(w, lines)

	first, err := s.Recipe(ctx, 1)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "recipe 1")
	fmt.Fprintln(w, first)

	return nil
}

func printSocial(ctx context.Context, w io.Writer, s *service.Service) error {
	accounts, err := s.Accounts(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "accounts")
	printLines(w, accounts)

	feed, err := s.Feed(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "posts")
	printLines(w, feed)

	return nil
}

func printLines(w io.Writer, lines []string) {
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}
