package boltdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/notekeeper/internal/client/storage"
	"github.com/iudanet/notekeeper/internal/models"
)

var (
	// BoltDB bucket names
	bucketNotes        = []byte(models.RecordTypeNote)
	bucketCategories   = []byte(models.RecordTypeCategory)
	bucketAiAssistants = []byte(models.RecordTypeAiAssistant)
	bucketMetadata     = []byte("metadata")
	bucketSession      = []byte("session")
)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db *bbolt.DB
}

var (
	_ storage.RecordStorage   = (*Storage)(nil)
	_ storage.MetadataStorage = (*Storage)(nil)
	_ storage.SessionStorage  = (*Storage)(nil)
)

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Таймаут нужен, чтобы второй процесс клиента не висел на file lock
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	// Инициализируем buckets
	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketNotes, bucketCategories, bucketAiAssistants, bucketMetadata, bucketSession} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// bucketFor возвращает bucket для типа записи
func bucketFor(tx *bbolt.Tx, recordType models.RecordType) (*bbolt.Bucket, error) {
	if !recordType.Valid() {
		return nil, fmt.Errorf("%w: %q", storage.ErrUnknownRecordType, recordType)
	}
	bucket := tx.Bucket([]byte(recordType))
	if bucket == nil {
		return nil, fmt.Errorf("%w: %s bucket not found", storage.ErrLocalStore, recordType)
	}
	return bucket, nil
}

// wrapErr помечает ошибки транзакции как ошибки локального хранилища.
// Доменные ошибки (не найдено, неизвестный тип) пробрасываются как есть.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{
		storage.ErrRecordNotFound,
		storage.ErrConflictNotFound,
		storage.ErrSessionNotFound,
		storage.ErrUnknownRecordType,
		storage.ErrLocalStore,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %s: %w", storage.ErrLocalStore, op, err)
}
