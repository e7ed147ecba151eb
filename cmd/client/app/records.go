package app

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/iudanet/notekeeper/internal/client/cli"
	"github.com/iudanet/notekeeper/internal/models"
)

func (r *root) noteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"notes"},
		Short:   "Manage notes",
	}
	cmd.AddCommand(r.noteAddCmd(), r.noteEditCmd())
	cmd.AddCommand(r.recordCmds(models.RecordTypeNote)...)
	return cmd
}

func noteFlags(flags *pflag.FlagSet) {
	flags.String("title", "", "Note title")
	flags.String("content", "", "Note content")
	flags.String("content-file", "", "Read note content from file")
	flags.String("format", string(models.NoteFormatMarkdown), "Content format: markdown, richtext, mindmap, drawio")
	flags.String("category", "", "Category ID")
	flags.StringSlice("tag", nil, "Tag (repeatable)")
}

// noteContent содержимое из --content или --content-file
func noteContent(flags *pflag.FlagSet) (string, bool, error) {
	if path, _ := flags.GetString("content-file"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", false, fmt.Errorf("failed to read content file: %w", err)
		}
		return string(b), true, nil
	}
	content, _ := flags.GetString("content")
	return content, flags.Changed("content"), nil
}

func (r *root) noteAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note (interactive without --title)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			content, _, err := noteContent(flags)
			if err != nil {
				return err
			}
			title, _ := flags.GetString("title")
			format, _ := flags.GetString("format")
			category, _ := flags.GetString("category")
			tags, _ := flags.GetStringSlice("tag")

			note := &models.Note{
				Title:      title,
				Content:    content,
				Format:     models.NoteFormat(format),
				CategoryID: category,
				Tags:       tags,
			}
			return r.run(func(ctx context.Context, c *cli.Cli, _ []string) error {
				return c.AddNote(ctx, note)
			})(cmd, args)
		},
	}
	noteFlags(cmd.Flags())
	return cmd
}

func (r *root) noteEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			var edit cli.NoteEdit

			content, changed, err := noteContent(flags)
			if err != nil {
				return err
			}
			if changed {
				edit.Content = &content
			}
			if flags.Changed("title") {
				title, _ := flags.GetString("title")
				edit.Title = &title
			}
			if flags.Changed("format") {
				format, _ := flags.GetString("format")
				f := models.NoteFormat(format)
				edit.Format = &f
			}
			if flags.Changed("category") {
				category, _ := flags.GetString("category")
				edit.CategoryID = &category
			}
			if flags.Changed("tag") {
				edit.Tags, _ = flags.GetStringSlice("tag")
			}

			return r.run(func(ctx context.Context, c *cli.Cli, args []string) error {
				return c.EditNote(ctx, args[0], edit)
			})(cmd, args)
		},
	}
	noteFlags(cmd.Flags())
	return cmd
}

func (r *root) categoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"categories"},
		Short:   "Manage note categories",
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a category (interactive without --name)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			color, _ := cmd.Flags().GetString("color")
			parent, _ := cmd.Flags().GetString("parent")
			category := &models.Category{Name: name, Color: color, ParentID: parent}
			return r.run(func(ctx context.Context, c *cli.Cli, _ []string) error {
				return c.AddCategory(ctx, category)
			})(cmd, args)
		},
	}
	add.Flags().String("name", "", "Category name")
	add.Flags().String("color", "", "Color as #RRGGBB")
	add.Flags().String("parent", "", "Parent category ID")

	cmd.AddCommand(add)
	cmd.AddCommand(r.recordCmds(models.RecordTypeCategory)...)
	return cmd
}

func (r *root) assistantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assistant",
		Aliases: []string{"assistants"},
		Short:   "Manage AI assistant settings",
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add an AI assistant (missing fields are prompted)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			name, _ := flags.GetString("name")
			model, _ := flags.GetString("model")
			endpoint, _ := flags.GetString("endpoint")
			prompt, _ := flags.GetString("prompt")
			temperature, _ := flags.GetFloat64("temperature")
			assistant := &models.AiAssistant{
				Name:         name,
				Model:        model,
				Endpoint:     endpoint,
				SystemPrompt: prompt,
				Temperature:  temperature,
			}
			return r.run(func(ctx context.Context, c *cli.Cli, _ []string) error {
				return c.AddAssistant(ctx, assistant)
			})(cmd, args)
		},
	}
	add.Flags().String("name", "", "Assistant name")
	add.Flags().String("model", "", "Model name")
	add.Flags().String("endpoint", "", "LLM endpoint URL")
	add.Flags().String("prompt", "", "System prompt")
	add.Flags().Float64("temperature", 0.7, "Sampling temperature (0-2)")

	cmd.AddCommand(add)
	cmd.AddCommand(r.recordCmds(models.RecordTypeAiAssistant)...)
	return cmd
}

// recordCmds общие для всех типов команды list, get и delete
func (r *root) recordCmds(recordType models.RecordType) []*cobra.Command {
	return []*cobra.Command{
		{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   fmt.Sprintf("List %s", recordType),
			Args:    cobra.NoArgs,
			RunE: r.run(func(ctx context.Context, c *cli.Cli, _ []string) error {
				return c.List(ctx, recordType)
			}),
		},
		{
			Use:   "get <id>",
			Short: "Show full details and sync state",
			Args:  cobra.ExactArgs(1),
			RunE: r.run(func(ctx context.Context, c *cli.Cli, args []string) error {
				return c.Get(ctx, recordType, args[0])
			}),
		},
		{
			Use:     "delete <id>",
			Aliases: []string{"rm"},
			Short:   "Delete (the deletion is synced to other devices)",
			Args:    cobra.ExactArgs(1),
			RunE: r.run(func(ctx context.Context, c *cli.Cli, args []string) error {
				return c.Delete(ctx, recordType, args[0])
			}),
		},
	}
}
