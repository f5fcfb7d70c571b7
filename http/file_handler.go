package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"calc-api/service"
)

// multipartOverhead is allowed on top of the largest file limit.
const multipartOverhead = 1 << 20

type FileHandler struct {
	service  *service.FileService
	maxBytes int64
	logger   *zap.Logger
}

func NewFileHandler(service *service.FileService, limits service.FileLimits, logger *zap.Logger) *FileHandler {
	return &FileHandler{
		service:  service,
		maxBytes: max(limits.MaxPDFBytes, limits.MaxImageBytes) + multipartOverhead,
		logger:   logger,
	}
}

// fileErrorStatus maps file service errors onto HTTP statuses.
func fileErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrJobNotFound), errors.Is(err, service.ErrUnsupportedOperation):
		return http.StatusNotFound
	case errors.Is(err, service.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, service.ErrUnsupportedFileType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, service.ErrJobNotReady):
		return http.StatusConflict
	case errors.Is(err, service.ErrEmptyFile), errors.Is(err, service.ErrInvalidOption):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *FileHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := fileErrorStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("file request failed", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "internal server error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

// Submit handles POST /pdf/{operation} with a multipart "file" field. Any
// other form values become operation options.
func (h *FileHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "file exceeds the size limit", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	file.Close()

	options := make(map[string]string, len(r.MultipartForm.Value))
	for k, v := range r.MultipartForm.Value {
		if len(v) > 0 {
			options[k] = v[0]
		}
	}

	job, err := h.service.Submit(r.Context(), r.PathValue("operation"), service.Upload{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}, options)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Location", "/pdf/jobs/"+job.ID)
	writeJSON(h.logger, w, http.StatusAccepted, job)
}

func (h *FileHandler) Status(w http.ResponseWriter, r *http.Request) {
	job, err := h.service.Status(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(h.logger, w, http.StatusOK, job)
}

func (h *FileHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	job, err := h.service.Cancel(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(h.logger, w, http.StatusOK, job)
}

func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	name, content, err := h.service.Download(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	if _, err := w.Write(content); err != nil {
		h.logger.Warn("write download", zap.Error(err))
	}
}
