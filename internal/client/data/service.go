package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/iudanet/notekeeper/internal/client/storage"
	"github.com/iudanet/notekeeper/internal/models"
)

// ErrInvalidPayload данные записи не прошли валидацию
var ErrInvalidPayload = errors.New("invalid payload")

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для клиентского data сервиса.
// Все изменения пишутся в локальный кеш и помечаются pending до подтверждения сервером.
type Service interface {
	AddNote(ctx context.Context, note *models.Note) error
	UpdateNote(ctx context.Context, note *models.Note) error
	GetNote(ctx context.Context, id string) (*models.Note, error)
	ListNotes(ctx context.Context) ([]*models.Note, error)
	DeleteNote(ctx context.Context, id string) error

	AddCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, category *models.Category) error
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	AddAiAssistant(ctx context.Context, assistant *models.AiAssistant) error
	UpdateAiAssistant(ctx context.Context, assistant *models.AiAssistant) error
	GetAiAssistant(ctx context.Context, id string) (*models.AiAssistant, error)
	ListAiAssistants(ctx context.Context) ([]*models.AiAssistant, error)
	DeleteAiAssistant(ctx context.Context, id string) error

	// GetRecord возвращает запись вместе со служебными полями синхронизации
	GetRecord(ctx context.Context, recordType models.RecordType, id string) (*models.Record, error)
}

// service handles client-side data operations over the offline cache
type service struct {
	records  storage.RecordStorage
	validate *validator.Validate
	now      func() time.Time
}

// NewService creates a new data service
func NewService(records storage.RecordStorage) Service {
	return &service{
		records:  records,
		validate: validator.New(),
		now:      time.Now,
	}
}

// AddNote adds a new note to local storage
func (s *service) AddNote(ctx context.Context, note *models.Note) error {
	if note.Format == "" {
		note.Format = models.NoteFormatMarkdown
	}
	return add(ctx, s, note, &note.ID, &note.CreatedAt, &note.UpdatedAt)
}

// UpdateNote replaces an existing note
func (s *service) UpdateNote(ctx context.Context, note *models.Note) error {
	return update(ctx, s, note, note.ID, &note.CreatedAt, &note.UpdatedAt)
}

// GetNote retrieves a note by ID
func (s *service) GetNote(ctx context.Context, id string) (*models.Note, error) {
	return get[models.Note](ctx, s, id)
}

// ListNotes returns all notes
func (s *service) ListNotes(ctx context.Context) ([]*models.Note, error) {
	return list[models.Note](ctx, s)
}

// DeleteNote marks note as deleted (soft delete)
func (s *service) DeleteNote(ctx context.Context, id string) error {
	return s.delete(ctx, models.RecordTypeNote, id)
}

// AddCategory adds a new category to local storage
func (s *service) AddCategory(ctx context.Context, category *models.Category) error {
	return add(ctx, s, category, &category.ID, &category.CreatedAt, &category.UpdatedAt)
}

// UpdateCategory replaces an existing category
func (s *service) UpdateCategory(ctx context.Context, category *models.Category) error {
	return update(ctx, s, category, category.ID, &category.CreatedAt, &category.UpdatedAt)
}

// GetCategory retrieves a category by ID
func (s *service) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	return get[models.Category](ctx, s, id)
}

// ListCategories returns all categories
func (s *service) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return list[models.Category](ctx, s)
}

// DeleteCategory marks category as deleted (soft delete)
func (s *service) DeleteCategory(ctx context.Context, id string) error {
	return s.delete(ctx, models.RecordTypeCategory, id)
}

// AddAiAssistant adds a new AI assistant configuration
func (s *service) AddAiAssistant(ctx context.Context, assistant *models.AiAssistant) error {
	return add(ctx, s, assistant, &assistant.ID, &assistant.CreatedAt, &assistant.UpdatedAt)
}

// UpdateAiAssistant replaces an existing AI assistant configuration
func (s *service) UpdateAiAssistant(ctx context.Context, assistant *models.AiAssistant) error {
	return update(ctx, s, assistant, assistant.ID, &assistant.CreatedAt, &assistant.UpdatedAt)
}

// GetAiAssistant retrieves an AI assistant by ID
func (s *service) GetAiAssistant(ctx context.Context, id string) (*models.AiAssistant, error) {
	return get[models.AiAssistant](ctx, s, id)
}

// ListAiAssistants returns all AI assistants
func (s *service) ListAiAssistants(ctx context.Context) ([]*models.AiAssistant, error) {
	return list[models.AiAssistant](ctx, s)
}

// DeleteAiAssistant marks AI assistant as deleted (soft delete)
func (s *service) DeleteAiAssistant(ctx context.Context, id string) error {
	return s.delete(ctx, models.RecordTypeAiAssistant, id)
}

// GetRecord возвращает запись со служебными полями синхронизации
func (s *service) GetRecord(ctx context.Context, recordType models.RecordType, id string) (*models.Record, error) {
	record, err := s.records.GetRecord(ctx, recordType, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %s: %w", recordType, id, err)
	}
	return record, nil
}

func (s *service) delete(ctx context.Context, recordType models.RecordType, id string) error {
	if err := s.records.DeleteRecord(ctx, recordType, id, s.now().UTC()); err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", recordType, id, err)
	}
	return nil
}

// add присваивает ID и временные метки и сохраняет запись как pending
func add[T models.Payload](ctx context.Context, s *service, payload *T, id *string, createdAt, updatedAt *time.Time) error {
	// Генерируем ID если не задан
	if *id == "" {
		*id = uuid.New().String()
	}

	now := s.now().UTC()
	*createdAt = now
	*updatedAt = now

	return save(ctx, s, payload, *id, now)
}

// update сохраняет новую версию существующей записи, сохраняя время создания
func update[T models.Payload](ctx context.Context, s *service, payload *T, id string, createdAt, updatedAt *time.Time) error {
	existing, err := get[T](ctx, s, id)
	if err != nil {
		return err
	}

	now := s.now().UTC()
	*createdAt = createdAtOf(existing)
	*updatedAt = now

	return save(ctx, s, payload, id, now)
}

func save[T models.Payload](ctx context.Context, s *service, payload *T, id string, now time.Time) error {
	if err := s.validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	record, err := models.NewRecord(id, payload, now)
	if err != nil {
		return err
	}

	if err := s.records.SaveRecord(ctx, record); err != nil {
		return fmt.Errorf("failed to save %s %s: %w", record.Type, id, err)
	}
	return nil
}

func get[T models.Payload](ctx context.Context, s *service, id string) (*T, error) {
	recordType := models.RecordTypeOf[T]()

	record, err := s.records.GetRecord(ctx, recordType, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %s: %w", recordType, id, err)
	}

	// Проверяем что не удалено
	if record.Deleted {
		return nil, fmt.Errorf("%s %s is deleted: %w", recordType, id, storage.ErrRecordNotFound)
	}

	return models.DecodePayload[T](record)
}

func list[T models.Payload](ctx context.Context, s *service) ([]*T, error) {
	recordType := models.RecordTypeOf[T]()

	records, err := s.records.ListRecords(ctx, recordType)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", recordType, err)
	}

	out := make([]*T, 0, len(records))
	for _, record := range records {
		payload, err := models.DecodePayload[T](record)
		if err != nil {
			// Пропускаем поврежденные записи
			continue
		}
		out = append(out, payload)
	}

	return out, nil
}

func createdAtOf(payload any) time.Time {
	switch p := payload.(type) {
	case *models.Note:
		return p.CreatedAt
	case *models.Category:
		return p.CreatedAt
	case *models.AiAssistant:
		return p.CreatedAt
	}
	return time.Time{}
}
