package ingestors

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"logwatch/internal/shared/filestorages"
)

// Cursor is the durable read position for one log source. It lives apart from
// the record store so a crashed or re-run ingestion resumes where the last
// committed record left off instead of reprocessing from scratch.
type Cursor struct {
	Offset       int64     `json:"offset"`
	UpdatedAtUTC time.Time `json:"updatedAtUtc"`
}

//go:generate mockgen -source=cursor_store.go -destination=./mocks/cursor_store_mock.go -package=mocks
type CursorStore interface {
	// Load returns the saved cursor for source, or the zero cursor when none
	// has been saved yet.
	Load(ctx context.Context, source string) (Cursor, error)
	Save(ctx context.Context, source string, cursor Cursor) error
}

type cursorStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewCursorStore(fileStorage filestorages.FileStorage) CursorStore {
	return &cursorStore{fileStorage: fileStorage, dir: "cursors"}
}

func (s *cursorStore) Load(ctx context.Context, source string) (Cursor, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(source))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return Cursor{}, nil
		}
		return Cursor{}, fmt.Errorf("failed to load cursor: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return Cursor{}, fmt.Errorf("failed to read cursor: %w", err)
	}
	var cursor Cursor
	if err := json.Unmarshal(data, &cursor); err != nil {
		return Cursor{}, fmt.Errorf("failed to unmarshal cursor: %w", err)
	}
	return cursor, nil
}

func (s *cursorStore) Save(ctx context.Context, source string, cursor Cursor) error {
	jsonData, err := json.Marshal(cursor)
	if err != nil {
		return fmt.Errorf("failed to marshal cursor: %w", err)
	}
	// Atomic overwrite so a crash mid-save leaves the previous cursor intact.
	_, err = s.fileStorage.Put(ctx, s.getKey(source), bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to save cursor: %w", err)
	}
	return nil
}

var sourceKeyReplacer = strings.NewReplacer("/", "_", "\\", "_", ":", "_", " ", "_")

func (s *cursorStore) getKey(source string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, strings.Trim(sourceKeyReplacer.Replace(source), "_"))
}
