package mock

import (
	"context"
	"io"
	"sync"

	"github.com/fhuszti/uploads-ms-go/internal/port"
)

// Storage is an in-memory port.Storage for tests.
type Storage struct {
	mu sync.Mutex

	SaveErr   error
	RemoveErr error

	Objects map[string][]byte
}

// compile-time check: *Storage must satisfy port.Storage
var _ port.Storage = (*Storage)(nil)

func NewStorage() *Storage {
	return &Storage{Objects: make(map[string][]byte)}
}

func (s *Storage) InitBucket(bucket string) error { return nil }

func (s *Storage) FileExists(ctx context.Context, fileKey string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.Objects[fileKey]
	return ok, nil
}

func (s *Storage) SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Objects[fileKey] = data
	return nil
}

func (s *Storage) RemoveFile(ctx context.Context, fileKey string) error {
	if s.RemoveErr != nil {
		return s.RemoveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Objects, fileKey)
	return nil
}

func (s *Storage) PublicURL(fileKey string) string {
	return "https://cdn.test/uploads/" + fileKey
}
