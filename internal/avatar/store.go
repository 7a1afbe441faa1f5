// Package avatar stores profile pictures on the local filesystem, one
// file per user.
package avatar

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/rsweeney/sleepaid/internal/domain"
)

// MaxSizeBytes caps uploads at 2 MiB.
const MaxSizeBytes = 2 << 20

// Store reads and writes avatar images under a base directory.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("avatar directory not configured")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create avatar directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(userID uuid.UUID) string {
	return filepath.Join(s.dir, userID.String()+".png")
}

// Save replaces the user's avatar. The reader is capped so an oversized
// upload fails instead of filling the disk.
func (s *Store) Save(userID uuid.UUID, r io.Reader) error {
	data, err := io.ReadAll(io.LimitReader(r, MaxSizeBytes+1))
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return domain.ErrInvalidInput
	}
	if len(data) > MaxSizeBytes {
		return domain.ErrInvalidInput
	}
	return os.WriteFile(s.path(userID), data, 0o644)
}

func (s *Store) Load(userID uuid.UUID) ([]byte, error) {
	data, err := os.ReadFile(s.path(userID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *Store) Delete(userID uuid.UUID) error {
	err := os.Remove(s.path(userID))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}
