package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/iudanet/notekeeper/internal/client/storage"
	"github.com/iudanet/notekeeper/internal/models"
)

// List выводит все неудаленные записи указанного типа
func (c *Cli) List(ctx context.Context, recordType models.RecordType) error {
	switch recordType {
	case models.RecordTypeNote:
		return c.listNotes(ctx)
	case models.RecordTypeCategory:
		return c.listCategories(ctx)
	case models.RecordTypeAiAssistant:
		return c.listAssistants(ctx)
	}
	return fmt.Errorf("unknown record type: %s", recordType)
}

func (c *Cli) listNotes(ctx context.Context) error {
	notes, err := c.data.ListNotes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	c.io.Println("=== Notes ===")
	c.io.Println()
	if len(notes) == 0 {
		c.io.Println("No notes found.")
		c.io.Println()
		c.io.Println("Use 'notekeeper note add' to add your first note.")
		return nil
	}

	// Последние изменения сверху
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})

	c.io.Printf("Found %d note(s):\n", len(notes))
	c.io.Println()
	for i, n := range notes {
		c.io.Printf("%d. %s\n", i+1, n.Title)
		c.io.Printf("   ID:     %s\n", n.ID)
		c.io.Printf("   Format: %s\n", n.Format)
		if len(n.Tags) > 0 {
			c.io.Printf("   Tags:   %s\n", strings.Join(n.Tags, ", "))
		}
		c.io.Println()
	}
	return nil
}

func (c *Cli) listCategories(ctx context.Context) error {
	categories, err := c.data.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}

	c.io.Println("=== Categories ===")
	c.io.Println()
	if len(categories) == 0 {
		c.io.Println("No categories found.")
		return nil
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})

	c.io.Printf("Found %d category(ies):\n", len(categories))
	c.io.Println()
	for i, cat := range categories {
		c.io.Printf("%d. %s\n", i+1, cat.Name)
		c.io.Printf("   ID:    %s\n", cat.ID)
		if cat.Color != "" {
			c.io.Printf("   Color: %s\n", cat.Color)
		}
		c.io.Println()
	}
	return nil
}

func (c *Cli) listAssistants(ctx context.Context) error {
	assistants, err := c.data.ListAiAssistants(ctx)
	if err != nil {
		return fmt.Errorf("failed to list assistants: %w", err)
	}

	c.io.Println("=== AI Assistants ===")
	c.io.Println()
	if len(assistants) == 0 {
		c.io.Println("No AI assistants found.")
		return nil
	}

	c.io.Printf("Found %d assistant(s):\n", len(assistants))
	c.io.Println()
	for i, a := range assistants {
		c.io.Printf("%d. %s\n", i+1, a.Name)
		c.io.Printf("   ID:       %s\n", a.ID)
		c.io.Printf("   Model:    %s\n", a.Model)
		c.io.Printf("   Endpoint: %s\n", a.Endpoint)
		c.io.Println()
	}
	return nil
}

// notFound переводит отсутствие записи в понятное пользователю сообщение
func notFound(recordType models.RecordType, id string, err error) error {
	if errors.Is(err, storage.ErrRecordNotFound) {
		return fmt.Errorf("%s not found with ID: %s", recordNoun(recordType), id)
	}
	return fmt.Errorf("failed to get %s: %w", recordNoun(recordType), err)
}

func recordNoun(recordType models.RecordType) string {
	switch recordType {
	case models.RecordTypeNote:
		return "note"
	case models.RecordTypeCategory:
		return "category"
	case models.RecordTypeAiAssistant:
		return "AI assistant"
	}
	return string(recordType)
}
