package app

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/iudanet/notekeeper/internal/client/cli"
)

func (r *root) versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return err
			}

			if format == "json" {
				output, err := json.MarshalIndent(r.info, "", "  ")
				if err != nil {
					return err
				}
				r.io.Println(string(output))
				return nil
			}

			r.io.Println("NoteKeeper Client")
			r.io.Printf("Version:    %s\n", r.info.Version)
			r.io.Printf("Build Date: %s\n", r.info.BuildDate)
			r.io.Printf("Git Commit: %s\n", r.info.GitCommit)
			return nil
		},
	}
	cmd.Flags().String("format", "", "Output format (json)")
	return cmd
}

func (r *root) loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an access token issued by the server",
		Long: `Store an access token issued by the server for --server.
Without --token the token is read from the terminal without echo.`,
		Args: cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, c *cli.Cli, _ []string) error {
			return c.Login(ctx, r.v.GetString("server"), r.v.GetString("token"))
		}),
	}
	cmd.Flags().String("token", "", "Access token (prefer the interactive prompt)")
	if err := r.v.BindPFlag("token", cmd.Flags().Lookup("token")); err != nil {
		slog.Error("Error binding token flag", "error", err)
	}
	return cmd
}

func (r *root) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the access token; local data is kept",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, c *cli.Cli, _ []string) error {
			return c.Logout(ctx)
		}),
	}
}

func (r *root) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session and synchronization status",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, c *cli.Cli, _ []string) error {
			return c.Status(ctx)
		}),
	}
}
