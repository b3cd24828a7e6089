package filestore

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"

	"booking-intake/internal/domain/document"
	"booking-intake/internal/infra"
	"booking-intake/internal/pkg/errs"
)

const filePerm = 0o644

// Store keeps the whole document in one JSON file.
// Writers are serialized; a save replaces the file through a rename so readers never see a partial write.
type Store struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the stored document, or an empty one when the file is absent or unreadable.
func (s *Store) Load(_ context.Context) *document.Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("data file not found, starting empty", "path", s.path)
		} else {
			_ = infra.WrapStoreErr(s.logger, infra.KindReadFailure, s.path, "failed to read data file", err)
		}
		return document.New()
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return document.New()
	}

	doc := document.New()
	if err := json.Unmarshal(data, doc); err != nil {
		_ = infra.WrapStoreErr(s.logger, infra.KindDecodeFailure, s.path, "failed to decode data file", err)
		return document.New()
	}
	return doc
}

// Save replaces the stored document with doc.
func (s *Store) Save(ctx context.Context, doc *document.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(ctx, doc)
}

// Update runs load, fn and save as one serialized step.
// Nothing is written when fn returns an error; that error is returned unchanged.
func (s *Store) Update(ctx context.Context, fn func(doc *document.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.Load(ctx)
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(ctx, doc)
}

func (s *Store) write(ctx context.Context, doc *document.Document) error {
	if err := ctx.Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "save aborted"), errs.ErrStorage)
	}

	compact, err := doc.MarshalJSON()
	if err != nil {
		return errs.Mark(infra.WrapStoreErr(s.logger, infra.KindEncodeFailure, s.path, "failed to encode document", err), errs.ErrStorage)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return errs.Mark(infra.WrapStoreErr(s.logger, infra.KindEncodeFailure, s.path, "failed to indent document", err), errs.ErrStorage)
	}

	if err := s.replaceFile(out.Bytes()); err != nil {
		return errs.Mark(infra.WrapStoreErr(s.logger, infra.KindWriteFailure, s.path, "failed to write data file", err), errs.ErrStorage)
	}
	return nil
}

func (s *Store) replaceFile(data []byte) (err error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), filePerm); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
