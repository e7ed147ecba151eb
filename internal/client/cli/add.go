package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/notekeeper/internal/models"
)

// NoteEdit изменения заметки; nil поля не меняются
type NoteEdit struct {
	Title      *string
	Content    *string
	Format     *models.NoteFormat
	CategoryID *string
	Tags       []string
}

// AddNote сохраняет новую заметку локально. Без заголовка поля запрашиваются интерактивно.
func (c *Cli) AddNote(ctx context.Context, note *models.Note) error {
	c.io.Println("=== Add Note ===")
	c.io.Println()

	if note.Title == "" {
		title, err := c.io.ReadInput("Title: ")
		if err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
		note.Title = title

		content, err := c.io.ReadInput("Content (optional): ")
		if err != nil {
			return fmt.Errorf("failed to read content: %w", err)
		}
		note.Content = content
	}

	if err := c.data.AddNote(ctx, note); err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}

	c.io.Println("✓ Note added successfully!")
	c.io.Printf("Title: %s\n", note.Title)
	c.io.Printf("ID:    %s\n", note.ID)
	c.printStoredLocally()
	return nil
}

// EditNote изменяет существующую заметку
func (c *Cli) EditNote(ctx context.Context, id string, edit NoteEdit) error {
	note, err := c.data.GetNote(ctx, id)
	if err != nil {
		return notFound(models.RecordTypeNote, id, err)
	}

	if edit.Title != nil {
		note.Title = *edit.Title
	}
	if edit.Content != nil {
		note.Content = *edit.Content
	}
	if edit.Format != nil {
		note.Format = *edit.Format
	}
	if edit.CategoryID != nil {
		note.CategoryID = *edit.CategoryID
	}
	if edit.Tags != nil {
		note.Tags = edit.Tags
	}

	if err := c.data.UpdateNote(ctx, note); err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}

	c.io.Println("✓ Note updated successfully!")
	c.io.Printf("ID: %s\n", note.ID)
	c.printStoredLocally()
	return nil
}

// AddCategory сохраняет новую категорию локально
func (c *Cli) AddCategory(ctx context.Context, category *models.Category) error {
	c.io.Println("=== Add Category ===")
	c.io.Println()

	if category.Name == "" {
		name, err := c.io.ReadInput("Name: ")
		if err != nil {
			return fmt.Errorf("failed to read name: %w", err)
		}
		category.Name = name
	}

	if err := c.data.AddCategory(ctx, category); err != nil {
		return fmt.Errorf("failed to add category: %w", err)
	}

	c.io.Println("✓ Category added successfully!")
	c.io.Printf("Name: %s\n", category.Name)
	c.io.Printf("ID:   %s\n", category.ID)
	c.printStoredLocally()
	return nil
}

// AddAssistant сохраняет настройки AI ассистента локально
func (c *Cli) AddAssistant(ctx context.Context, assistant *models.AiAssistant) error {
	c.io.Println("=== Add AI Assistant ===")
	c.io.Println()

	prompts := []struct {
		field  *string
		prompt string
	}{
		{&assistant.Name, "Name: "},
		{&assistant.Model, "Model (e.g., 'llama3'): "},
		{&assistant.Endpoint, "Endpoint URL: "},
	}
	for _, p := range prompts {
		if *p.field != "" {
			continue
		}
		value, err := c.io.ReadInput(p.prompt)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		*p.field = value
	}

	if err := c.data.AddAiAssistant(ctx, assistant); err != nil {
		return fmt.Errorf("failed to add assistant: %w", err)
	}

	c.io.Println("✓ AI assistant added successfully!")
	c.io.Printf("Name:  %s\n", assistant.Name)
	c.io.Printf("Model: %s\n", assistant.Model)
	c.io.Printf("ID:    %s\n", assistant.ID)
	c.printStoredLocally()
	return nil
}

func (c *Cli) printStoredLocally() {
	c.io.Println()
	c.io.Println("Note: Data is stored locally. Run 'notekeeper sync' to sync with server.")
}
