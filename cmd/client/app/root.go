// Package app собирает команды клиента NoteKeeper.
package app

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/notekeeper/internal/client/iocli"
	clientsync "github.com/iudanet/notekeeper/internal/client/sync"
	"github.com/iudanet/notekeeper/internal/logging"
)

const (
	defaultServerURL = "http://localhost:8080"
	defaultDBPath    = "notekeeper-client.db"
	envPrefix        = "NOTEKEEPER"
)

// BuildInfo версия сборки, задается через ldflags
type BuildInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	GitCommit string `json:"git_commit"`
}

// root общее состояние дерева команд
type root struct {
	v    *viper.Viper
	io   iocli.IO
	info BuildInfo
}

// NewRootCmd создает корневую команду клиента.
// Настройки читаются из флагов, переменных NOTEKEEPER_* и файла --config (в этом порядке приоритета).
func NewRootCmd(io iocli.IO, info BuildInfo) *cobra.Command {
	r := &root{v: viper.New(), io: io, info: info}

	cmd := &cobra.Command{
		Use:               "notekeeper",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Short:             "NoteKeeper offline-first notes client",
		Long: `NoteKeeper keeps notes, categories and AI assistant settings in a local database
and synchronizes them with a NoteKeeper server. All changes work offline;
run 'notekeeper sync' or 'notekeeper watch' to exchange them with the server.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return r.loadConfig()
		},
		Run: func(cmd *cobra.Command, _ []string) {
			// Без подкоманды показываем помощь
			if err := cmd.Help(); err != nil {
				slog.Error("Error displaying help", "error", err)
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("server", defaultServerURL, "Server URL (used by login)")
	flags.String("db", defaultDBPath, "Path to local database")
	flags.String("config", "", "Path to config file (yaml, json or toml)")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error")
	flags.String("log-format", logging.FormatAuto, "Log format: auto, text, json")
	flags.String("log-file", "", "Write logs to file with rotation instead of stderr")
	flags.Duration("sync-interval", clientsync.DefaultSyncInterval, "Periodic sync interval for watch")

	for _, name := range []string{"server", "db", "config", "log-level", "log-format", "log-file", "sync-interval"} {
		if err := r.v.BindPFlag(name, flags.Lookup(name)); err != nil {
			slog.Error("Error binding flag", "flag", name, "error", err)
		}
	}
	r.v.SetEnvPrefix(envPrefix)
	r.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	r.v.AutomaticEnv()

	cmd.AddCommand(
		r.versionCmd(),
		r.loginCmd(),
		r.logoutCmd(),
		r.statusCmd(),
		r.noteCmd(),
		r.categoryCmd(),
		r.assistantCmd(),
		r.syncCmd(),
		r.pushCmd(),
		r.conflictsCmd(),
		r.resolveCmd(),
		r.watchCmd(),
	)

	return cmd
}

// loadConfig читает файл конфигурации, если он указан
func (r *root) loadConfig() error {
	path := r.v.GetString("config")
	if path == "" {
		return nil
	}

	r.v.SetConfigFile(path)
	if err := r.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return nil
}

func (r *root) loggingConfig() logging.Config {
	return logging.Config{
		Level:  r.v.GetString("log-level"),
		Format: r.v.GetString("log-format"),
		File:   r.v.GetString("log-file"),
	}
}
