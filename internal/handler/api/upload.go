package api

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/fhuszti/uploads-ms-go/internal/api_context"
	"github.com/fhuszti/uploads-ms-go/internal/usecase/upload"
)

type uploadResponseEntry struct {
	Success bool `json:"success"`
	upload.Result
}

// UploadHandler ingests a multipart batch under the "files" field,
// buffers each file to the temp dir and hands the batch to the saga
// driver. Either every file completes and the response lists them in
// submission order, or the whole request fails with a single error.
func UploadHandler(svc upload.BatchProcessor, tempDir string, showDetails bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "missing authenticated user", nil)
			return
		}

		mr, err := r.MultipartReader()
		if err != nil {
			WriteError(w, http.StatusBadRequest, "request body must be multipart/form-data", err)
			return
		}

		tasks, err := readTasks(mr, tempDir)
		if err != nil {
			cleanupTasks(tasks)
			WriteError(w, http.StatusBadRequest, "malformed multipart payload", err)
			return
		}
		if len(tasks) == 0 {
			WriteError(w, http.StatusBadRequest, "no files submitted", nil)
			return
		}

		results, err := svc.Process(r.Context(), userID, tasks)
		if err != nil {
			var uErr *upload.Error
			if errors.As(err, &uErr) && uErr.Kind == upload.KindValidation {
				WriteErrorDetails(w, http.StatusBadRequest, "invalid file type", err, showDetails)
			} else {
				WriteErrorDetails(w, http.StatusInternalServerError, "could not process upload", err, showDetails)
			}
			return
		}

		entries := make([]uploadResponseEntry, 0, len(results))
		for _, res := range results {
			entries = append(entries, uploadResponseEntry{Success: true, Result: res})
		}
		RespondJSON(w, http.StatusOK, entries)
		log.Printf("✅  Successfully uploaded %d file(s)", len(entries))
	}
}

// readTasks streams every "files" part to its own temp file. Parts
// under any other field name are drained and ignored.
func readTasks(mr *multipart.Reader, tempDir string) ([]*upload.Task, error) {
	var tasks []*upload.Task
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return tasks, nil
		}
		if err != nil {
			return tasks, err
		}

		if part.FormName() != "files" || part.FileName() == "" {
			_ = part.Close()
			continue
		}

		task, err := bufferPart(part, tempDir)
		_ = part.Close()
		if err != nil {
			return tasks, err
		}
		tasks = append(tasks, task)
	}
}

func bufferPart(part *multipart.Part, tempDir string) (*upload.Task, error) {
	f, err := os.CreateTemp(tempDir, "upload-*")
	if err != nil {
		return nil, err
	}

	size, err := io.Copy(f, part)
	if cErr := f.Close(); err == nil {
		err = cErr
	}
	if err != nil {
		_ = os.Remove(f.Name())
		return nil, err
	}

	return &upload.Task{
		SourcePath:       f.Name(),
		OriginalFilename: part.FileName(),
		DeclaredMimeType: part.Header.Get("Content-Type"),
		SizeBytes:        size,
	}, nil
}

// cleanupTasks removes the temp files of tasks that never reached the
// saga driver.
func cleanupTasks(tasks []*upload.Task) {
	for _, t := range tasks {
		if t.SourcePath != "" {
			if err := os.Remove(t.SourcePath); err != nil && !os.IsNotExist(err) {
				log.Printf("failed to remove temp file %q: %v", t.SourcePath, err)
			}
		}
	}
}
