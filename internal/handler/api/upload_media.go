package api

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/apictx"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/port"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/usecase/media"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/validation"
)

// maxUploadBytes caps the multipart form we are willing to buffer.
const maxUploadBytes = 32 << 20

type UploadMediaResponse struct {
	URL string `json:"url"`
}

func UploadMediaHandler(svc port.MediaUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		department, ok := apictx.DepartmentFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "department is required", nil)
			return
		}
		slot, ok := apictx.SlotFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "slot is required", nil)
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid multipart form", err)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "file is required", err)
			return
		}
		defer func() {
			if err := file.Close(); err != nil {
				log.Printf("failed to close multipart file: %v", err)
			}
		}()

		// spool to disk keeping the original extension, the pipeline derives
		// the content type from it
		localPath, err := spoolUpload(file, header.Filename)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "could not buffer upload", err)
			return
		}
		defer func() {
			if err := os.Remove(localPath); err != nil {
				log.Printf("failed to remove upload buffer %q: %v", localPath, err)
			}
		}()

		in := port.UploadMediaInput{
			Department: department,
			Slot:       slot,
			LocalPath:  localPath,
		}
		url, err := svc.UploadMedia(r.Context(), in)
		if err != nil {
			if errors.Is(err, media.ErrValidation) {
				var fieldErrs validator.ValidationErrors
				if errors.As(err, &fieldErrs) {
					errsJSON, jsonErr := validation.ErrorsToJson(fieldErrs)
					if jsonErr != nil {
						WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", jsonErr)
						return
					}
					RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
					log.Printf("❌  Validation failed: %s", errsJSON)
					return
				}
				WriteError(w, http.StatusBadRequest, "invalid upload", err)
				return
			}
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not upload media for %q/%q", department, slot), err)
			return
		}

		RespondJSON(w, http.StatusCreated, UploadMediaResponse{URL: url})
		log.Printf("✅  Successfully uploaded media for %q/%q", department, slot)
	}
}

func spoolUpload(file io.Reader, filename string) (string, error) {
	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(filename))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
