package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/iudanet/notekeeper/internal/models"
)

// validatePayload проверяет, что data - корректный payload указанного типа
func validatePayload(v *validator.Validate, t models.RecordType, data json.RawMessage) error {
	switch t {
	case models.RecordTypeNote:
		return decodeAndValidate[models.Note](v, data)
	case models.RecordTypeCategory:
		return decodeAndValidate[models.Category](v, data)
	case models.RecordTypeAiAssistant:
		return decodeAndValidate[models.AiAssistant](v, data)
	}
	return fmt.Errorf("unknown record type %q", t)
}

func decodeAndValidate[T models.Payload](v *validator.Validate, data json.RawMessage) error {
	if len(data) == 0 {
		return fmt.Errorf("empty payload")
	}

	var payload T
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("malformed payload: %w", err)
	}
	if err := v.Struct(&payload); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	return nil
}
