package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecidePush(t *testing.T) {
	stored := &StoredRecord{
		ID:          "n1",
		Type:        RecordTypeNote,
		ContentHash: HashData([]byte(`{"title":"server"}`)),
		Version:     3,
	}
	incoming := func(data string, deleted bool) *StoredRecord {
		return &StoredRecord{
			ID:          "n1",
			Type:        RecordTypeNote,
			ContentHash: HashData([]byte(data)),
			Deleted:     deleted,
		}
	}

	tests := []struct {
		existing *StoredRecord
		incoming *StoredRecord
		wantErr  error
		name     string
		base     int64
		want     PushOutcome
	}{
		{name: "new record", existing: nil, incoming: incoming(`{}`, false), base: 0, want: OutcomeCreated},
		{name: "unknown record with base", existing: nil, incoming: incoming(`{}`, false), base: 5, want: OutcomeCreated},
		{name: "current base", existing: stored, incoming: incoming(`{"title":"local"}`, false), base: 3, want: OutcomeUpdated},
		{name: "stale base different content", existing: stored, incoming: incoming(`{"title":"local"}`, false), base: 2, want: OutcomeConflict},
		{name: "stale base same content", existing: stored, incoming: incoming(`{"title":"server"}`, false), base: 2, want: OutcomeUnchanged},
		{name: "stale base tombstone", existing: stored, incoming: incoming(`{"title":"server"}`, true), base: 1, want: OutcomeConflict},
		{name: "base ahead", existing: stored, incoming: incoming(`{}`, false), base: 4, wantErr: ErrVersionAhead},
		{
			name:     "type mismatch",
			existing: stored,
			incoming: &StoredRecord{ID: "n1", Type: RecordTypeCategory},
			base:     3,
			wantErr:  ErrTypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecidePush(tt.existing, tt.incoming, tt.base)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPushOutcome_String(t *testing.T) {
	assert.Equal(t, "created", OutcomeCreated.String())
	assert.Equal(t, "updated", OutcomeUpdated.String())
	assert.Equal(t, "unchanged", OutcomeUnchanged.String())
	assert.Equal(t, "conflict", OutcomeConflict.String())
	assert.Equal(t, "unknown", PushOutcome(0).String())
}

func TestStoredRecord_Snapshot(t *testing.T) {
	r := &StoredRecord{Data: []byte(`{"a":1}`), ContentHash: "h", Version: 7, Deleted: true}

	s := r.Snapshot()
	assert.Equal(t, int64(7), s.Version)
	assert.True(t, s.Deleted)
	assert.Equal(t, "h", s.ContentHash)

	s.Data[0] = 'x'
	assert.Equal(t, byte('{'), r.Data[0])
}
