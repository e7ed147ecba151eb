package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/notekeeper/internal/logging"
	"github.com/iudanet/notekeeper/internal/server/app"
	"github.com/iudanet/notekeeper/internal/server/config"
	"github.com/iudanet/notekeeper/internal/server/jwt"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	envFile := flag.String("env", ".env", "Path to .env file")
	issueToken := flag.String("issue-token", "", "Print an access token for the given user id and exit")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(*envFile, *issueToken); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(envFile, issueToken string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	// Выпуск токена для разработки: роутов регистрации/логина нет
	if issueToken != "" {
		token, expiresAt, err := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Expiration).GenerateAccessToken(issueToken)
		if err != nil {
			return err
		}
		fmt.Println(token)
		fmt.Fprintf(os.Stderr, "expires at %s\n", expiresAt.Format("2006-01-02 15:04:05"))
		return nil
	}

	logger, closer := logging.New(app.LoggingConfig(cfg.Logging), os.Stderr)
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("NoteKeeper server starting",
		"version", Version,
		"build_date", BuildDate,
		"git_commit", GitCommit,
		"env", cfg.Server.Env,
		"db_path", cfg.Database.Path)

	srv, err := app.New(ctx, cfg, logger, Version)
	if err != nil {
		logger.Error("Failed to initialize server", "error", err)
		return err
	}
	defer func() {
		if err := srv.Close(); err != nil {
			logger.Error("Failed to close server", "error", err)
		}
	}()

	if err := srv.Run(ctx); err != nil {
		logger.Error("Server stopped with error", "error", err)
		return err
	}

	logger.Info("Server stopped")
	return nil
}

func printVersion() {
	fmt.Printf("NoteKeeper Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
