package http

import (
	"net/http"

	"go.uber.org/zap"

	"calc-api/service"
)

type LoanHandler struct {
	service *service.LoanService
	logger  *zap.Logger
}

func NewLoanHandler(service *service.LoanService, logger *zap.Logger) *LoanHandler {
	return &LoanHandler{service: service, logger: logger}
}

func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, w, r, h.service.CalculateLoan)
}

func (h *LoanHandler) CalculateMortgage(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, w, r, h.service.CalculateMortgage)
}

func (h *LoanHandler) CalculateLease(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, w, r, h.service.CalculateLease)
}
