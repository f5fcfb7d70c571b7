package http

import (
	"net/http"

	"go.uber.org/zap"

	"calc-api/service"
)

type CatalogHandler struct {
	logger *zap.Logger
}

func NewCatalogHandler(logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{logger: logger}
}

func (h *CatalogHandler) Tools(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, http.StatusOK, service.Catalog())
}

func (h *CatalogHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
}
