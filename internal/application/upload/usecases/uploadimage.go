package usecases

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/folio-hq/folio/internal/application/upload/dto"
	"github.com/folio-hq/folio/internal/infrastructure/storage"
	"github.com/folio-hq/folio/internal/shared/biztime"
	"github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

// MaxFilesPerRequest caps multi-file uploads.
const MaxFilesPerRequest = 10

// allowedImageTypes maps sniffed MIME types to the stored extension.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// UploadImageCommand carries one multipart file. Field is the form field
// name and prefixes the stored file name.
type UploadImageCommand struct {
	OwnerID      uint
	Field        string
	OriginalName string
	Content      io.Reader
}

// UploadImageUseCase stores image uploads after sniffing their content.
// The client supplied content type is ignored.
type UploadImageUseCase struct {
	store    storage.Storage
	maxBytes int64
	logger   logger.Interface
}

func NewUploadImageUseCase(store storage.Storage, maxBytes int64, log logger.Interface) *UploadImageUseCase {
	return &UploadImageUseCase{
		store:    store,
		maxBytes: maxBytes,
		logger:   log,
	}
}

func (uc *UploadImageUseCase) Execute(ctx context.Context, cmd UploadImageCommand) (*dto.FileDTO, error) {
	content, err := io.ReadAll(io.LimitReader(cmd.Content, uc.maxBytes+1))
	if err != nil {
		uc.logger.Errorw("failed to read upload", "owner_id", cmd.OwnerID, "error", err)
		return nil, errors.NewInternalError("Failed to process file")
	}
	if int64(len(content)) > uc.maxBytes {
		return nil, errors.NewValidationError(fmt.Sprintf("File too large. Maximum size is %dMB", uc.maxBytes>>20))
	}
	if len(content) == 0 {
		return nil, errors.NewValidationError("No file uploaded")
	}

	mimeType := mimetype.Detect(content).String()
	ext, ok := allowedImageTypes[mimeType]
	if !ok {
		uc.logger.Warnw("rejected upload with non-image content",
			"owner_id", cmd.OwnerID,
			"detected_mime", mimeType,
			"filename", cmd.OriginalName,
		)
		return nil, errors.NewValidationError("Only image files are allowed!")
	}

	field := cmd.Field
	if field == "" {
		field = "image"
	}
	filename := fmt.Sprintf("%s-%d-%s%s", field, biztime.NowUTC().UnixMilli(), strings.ReplaceAll(uuid.NewString(), "-", "")[:12], ext)
	path := fmt.Sprintf("%d/%s", cmd.OwnerID, filename)

	if err := uc.store.Save(ctx, path, bytes.NewReader(content), mimeType); err != nil {
		uc.logger.Errorw("failed to store upload", "owner_id", cmd.OwnerID, "path", path, "error", err)
		return nil, errors.NewInternalError("Upload failed")
	}

	uc.logger.Infow("image uploaded", "owner_id", cmd.OwnerID, "path", path, "size", len(content))
	return &dto.FileDTO{
		Filename:     filename,
		OriginalName: cmd.OriginalName,
		Size:         int64(len(content)),
		Mimetype:     mimeType,
		URL:          uc.store.URL(path),
	}, nil
}

// ExecuteMany stores every file or stops at the first rejected one. Files
// stored before a rejection are kept.
func (uc *UploadImageUseCase) ExecuteMany(ctx context.Context, cmds []UploadImageCommand) ([]*dto.FileDTO, error) {
	if len(cmds) == 0 {
		return nil, errors.NewValidationError("No files uploaded")
	}
	if len(cmds) > MaxFilesPerRequest {
		return nil, errors.NewValidationError(fmt.Sprintf("Too many files. Maximum is %d", MaxFilesPerRequest))
	}

	files := make([]*dto.FileDTO, 0, len(cmds))
	for _, cmd := range cmds {
		file, err := uc.Execute(ctx, cmd)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}
