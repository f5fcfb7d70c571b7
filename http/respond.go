package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// clipboarder is implemented by every calculator result.
type clipboarder interface {
	ClipboardText() string
}

// wantsText reports whether the client asked for the plain-text summary.
func wantsText(r *http.Request) bool {
	if r.URL.Query().Get("format") == "text" {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/plain") && !strings.Contains(accept, "application/json")
}

// decodeJSON enforces POST and a JSON content type, then decodes the body
// into dst. It writes the error response itself and reports false on failure.
func decodeJSON(logger *zap.Logger, w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}

	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Debug("decode request body", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200.
func writeJSON(logger *zap.Logger, w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error("encode response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("write response", zap.Error(err))
	}
}

func writeText(logger *zap.Logger, w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(text + "\n")); err != nil {
		logger.Warn("write response", zap.Error(err))
	}
}

// calculate is the shared request cycle of every calculator endpoint:
// decode the input tuple, evaluate, render JSON or the clipboard summary.
func calculate[In any, Out clipboarder](
	logger *zap.Logger,
	w http.ResponseWriter,
	r *http.Request,
	fn func(In) (Out, error),
) {
	var input In
	if !decodeJSON(logger, w, r, &input) {
		return
	}

	result, err := fn(input)
	if err != nil {
		logger.Info("calculation rejected", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if wantsText(r) {
		writeText(logger, w, result.ClipboardText())
		return
	}
	writeJSON(logger, w, http.StatusOK, result)
}
