package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/lost-and-found/internal/logger"
	"github.com/MKhiriev/lost-and-found/models"
)

// imageFileStorage is the filesystem implementation of [ImageStore]. Item
// images live outside the relational database; the database row only carries
// the opaque file name returned by SaveImage.
type imageFileStorage struct {
	logger *logger.Logger
	dir    string
}

// NewImageFileStorage constructs an [ImageStore] rooted at dir. An empty dir
// disables image storage; every SaveImage call then fails with
// [ErrImageStorageDisabled].
func NewImageFileStorage(dir string, logger *logger.Logger) (ImageStore, error) {
	logger.Debug().Str("dir", dir).Msg("creating image file storage")

	if dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("error creating image directory: %w", err)
		}
	}

	return &imageFileStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

// SaveImage writes the uploaded bytes under a random file name and returns
// that name as the image reference. The client-supplied name contributes only
// its extension, so uploads can never address paths of their choosing.
func (s *imageFileStorage) SaveImage(ctx context.Context, upload models.ImageUpload) (string, error) {
	log := logger.FromContext(ctx)

	if s.dir == "" {
		return "", ErrImageStorageDisabled
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(upload.Ext)))
	ref := uuid.NewString() + ext

	file, err := os.Create(filepath.Join(s.dir, ref))
	if err != nil {
		log.Err(err).Str("func", "*imageFileStorage.SaveImage").Msg("error creating image file")
		return "", fmt.Errorf("error creating image file: %w", err)
	}

	if _, err := io.Copy(file, upload.Data); err != nil {
		file.Close()
		os.Remove(filepath.Join(s.dir, ref))
		log.Err(err).Str("func", "*imageFileStorage.SaveImage").Msg("error writing image file")
		return "", fmt.Errorf("error writing image file: %w", err)
	}

	if err := file.Close(); err != nil {
		log.Err(err).Str("func", "*imageFileStorage.SaveImage").Msg("error closing image file")
		return "", fmt.Errorf("error closing image file: %w", err)
	}

	return ref, nil
}

// RemoveImage deletes a previously stored image. A missing file is not an
// error: the record it belonged to is gone either way.
func (s *imageFileStorage) RemoveImage(ctx context.Context, ref string) error {
	log := logger.FromContext(ctx)

	if s.dir == "" || ref == "" {
		return nil
	}

	// refs are generated server-side, but never follow one outside the dir
	name := filepath.Base(ref)

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		log.Err(err).Str("func", "*imageFileStorage.RemoveImage").Msg("error removing image file")
		return fmt.Errorf("error removing image file: %w", err)
	}

	return nil
}
