package usecases

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type memoryStore struct {
	saved map[string][]byte
}

func (s *memoryStore) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	if s.saved == nil {
		s.saved = map[string][]byte{}
	}
	s.saved[path] = data
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, path string) error {
	delete(s.saved, path)
	return nil
}

func (s *memoryStore) URL(path string) string {
	return "/uploads/" + path
}

func TestUploadImageUseCase_Execute(t *testing.T) {
	store := &memoryStore{}
	uc := NewUploadImageUseCase(store, 5<<20, logger.Nop())

	t.Run("stores sniffed image", func(t *testing.T) {
		file, err := uc.Execute(context.Background(), UploadImageCommand{
			OwnerID:      7,
			Field:        "largeImage",
			OriginalName: "shot.bin",
			Content:      bytes.NewReader(pngHeader),
		})
		require.NoError(t, err)

		assert.Equal(t, "image/png", file.Mimetype)
		assert.Equal(t, "shot.bin", file.OriginalName)
		assert.Equal(t, int64(len(pngHeader)), file.Size)
		assert.True(t, strings.HasPrefix(file.Filename, "largeImage-"))
		assert.True(t, strings.HasSuffix(file.Filename, ".png"))
		assert.Equal(t, "/uploads/7/"+file.Filename, file.URL)
		assert.Contains(t, store.saved, "7/"+file.Filename)
	})

	t.Run("rejects non-image content", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UploadImageCommand{
			OwnerID:      7,
			OriginalName: "fake.png",
			Content:      strings.NewReader("#!/bin/sh\necho hi\n"),
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		small := NewUploadImageUseCase(store, 8, logger.Nop())
		_, err := small.Execute(context.Background(), UploadImageCommand{
			OwnerID: 7,
			Content: bytes.NewReader(pngHeader),
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects empty file", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UploadImageCommand{OwnerID: 7, Content: bytes.NewReader(nil)})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestUploadImageUseCase_ExecuteMany(t *testing.T) {
	uc := NewUploadImageUseCase(&memoryStore{}, 5<<20, logger.Nop())

	cmds := make([]UploadImageCommand, MaxFilesPerRequest+1)
	for i := range cmds {
		cmds[i] = UploadImageCommand{OwnerID: 1, Field: "images", Content: bytes.NewReader(pngHeader)}
	}

	_, err := uc.ExecuteMany(context.Background(), cmds)
	assert.True(t, errors.IsValidationError(err))

	files, err := uc.ExecuteMany(context.Background(), cmds[:3])
	require.NoError(t, err)
	assert.Len(t, files, 3)

	_, err = uc.ExecuteMany(context.Background(), nil)
	assert.True(t, errors.IsValidationError(err))
}
