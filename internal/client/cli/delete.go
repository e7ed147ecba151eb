package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/notekeeper/internal/models"
)

// Delete помечает запись удаленной (tombstone); сервер узнает об удалении при следующей синхронизации
func (c *Cli) Delete(ctx context.Context, recordType models.RecordType, id string) error {
	if id == "" {
		return fmt.Errorf("missing %s ID", recordNoun(recordType))
	}

	var err error
	switch recordType {
	case models.RecordTypeNote:
		err = c.data.DeleteNote(ctx, id)
	case models.RecordTypeCategory:
		err = c.data.DeleteCategory(ctx, id)
	case models.RecordTypeAiAssistant:
		err = c.data.DeleteAiAssistant(ctx, id)
	default:
		return fmt.Errorf("unknown record type: %s", recordType)
	}
	if err != nil {
		return notFound(recordType, id, err)
	}

	c.io.Printf("✓ Deleted %s %s\n", recordNoun(recordType), id)
	c.printStoredLocally()
	return nil
}
