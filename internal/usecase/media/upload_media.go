package media

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/logger"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/model"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/port"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/validation"
)

type mediaUploaderSrv struct {
	repo       port.MediaMappingRepository
	strg       port.Storage
	dispatcher port.TaskDispatcher
	genUUID    port.UUIDGen
}

// NewMediaUploader wires the upload pipeline: local file → blob storage →
// mapping row → opportunistic cache warm.
func NewMediaUploader(repo port.MediaMappingRepository, strg port.Storage, dispatcher port.TaskDispatcher, genUUID port.UUIDGen) port.MediaUploader {
	return &mediaUploaderSrv{repo: repo, strg: strg, dispatcher: dispatcher, genUUID: genUUID}
}

func (s *mediaUploaderSrv) UploadMedia(ctx context.Context, in port.UploadMediaInput) (string, error) {
	if err := validation.ValidateStruct(in); err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	}

	info, err := os.Stat(in.LocalPath)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: file %q does not exist", ErrValidation, in.LocalPath)
	}

	ext := strings.ToLower(filepath.Ext(in.LocalPath))
	contentType := ContentTypeForExtension(ext)

	// remember the blob the row currently points at, it becomes unreachable
	// once the upsert lands
	prev, prevErr := s.repo.Get(ctx, in.Department, in.Slot)
	if prevErr != nil {
		if !errors.Is(prevErr, port.ErrNotFound) {
			logger.Warnf(ctx, "prior mapping lookup failed for %q/%q: %v", in.Department, in.Slot, prevErr)
		}
		prev = nil
	}

	file, err := os.Open(in.LocalPath)
	if err != nil {
		return "", fmt.Errorf("opening %q: %w", in.LocalPath, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("failed to close upload file %q: %v", in.LocalPath, err)
		}
	}()

	// timestamped key so the new blob never clobbers the old one while the
	// row still points at it
	objectKey := fmt.Sprintf("%s/%s_%d%s", in.Department, in.Slot, time.Now().UnixNano(), ext)

	if err := s.strg.SaveFile(ctx, objectKey, file, info.Size(), map[string]string{"Content-Type": contentType}); err != nil {
		return "", fmt.Errorf("uploading %q: %w", objectKey, err)
	}

	publicURL := s.strg.PublicURL(objectKey)

	mapping := &model.MediaMapping{
		ID:         s.genUUID(),
		Department: in.Department,
		Slot:       in.Slot,
		ObjectKey:  objectKey,
		URL:        publicURL,
	}
	if err := s.repo.Upsert(ctx, mapping); err != nil {
		return "", fmt.Errorf("upserting mapping for %q/%q: %w", in.Department, in.Slot, err)
	}

	if prev != nil && prev.ObjectKey != objectKey {
		if err := s.strg.RemoveFile(ctx, prev.ObjectKey); err != nil {
			logger.Warnf(ctx, "could not remove superseded blob %q: %v", prev.ObjectKey, err)
		}
	}

	// opportunistic: next offline read should already see the new image
	if err := s.dispatcher.EnqueueWarmMediaCache(ctx, in.Department, in.Slot); err != nil {
		logger.Warnf(ctx, "could not enqueue cache warm for %q/%q: %v", in.Department, in.Slot, err)
	}

	return publicURL, nil
}
