package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/notekeeper/internal/models"
)

// Get выводит запись вместе с ее состоянием синхронизации
func (c *Cli) Get(ctx context.Context, recordType models.RecordType, id string) error {
	if id == "" {
		return fmt.Errorf("missing %s ID", recordNoun(recordType))
	}

	var err error
	switch recordType {
	case models.RecordTypeNote:
		var note *models.Note
		if note, err = c.data.GetNote(ctx, id); err == nil {
			err = noteView.Execute(c.io, struct {
				Note   *models.Note
				Record *models.Record
			}{note, c.record(ctx, recordType, id)})
		}
	case models.RecordTypeCategory:
		var category *models.Category
		if category, err = c.data.GetCategory(ctx, id); err == nil {
			err = categoryView.Execute(c.io, struct {
				Category *models.Category
				Record   *models.Record
			}{category, c.record(ctx, recordType, id)})
		}
	case models.RecordTypeAiAssistant:
		var assistant *models.AiAssistant
		if assistant, err = c.data.GetAiAssistant(ctx, id); err == nil {
			err = assistantView.Execute(c.io, struct {
				Assistant *models.AiAssistant
				Record    *models.Record
			}{assistant, c.record(ctx, recordType, id)})
		}
	default:
		return fmt.Errorf("unknown record type: %s", recordType)
	}

	if err != nil {
		return notFound(recordType, id, err)
	}
	return nil
}

// record возвращает служебные поля записи; nil если они недоступны
func (c *Cli) record(ctx context.Context, recordType models.RecordType, id string) *models.Record {
	r, err := c.data.GetRecord(ctx, recordType, id)
	if err != nil {
		return nil
	}
	return r
}
