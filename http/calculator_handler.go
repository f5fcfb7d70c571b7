package http

import (
	"net/http"

	"go.uber.org/zap"

	"calc-api/service"
)

// CalculatorHandler serves the health, math and shopping/finance tools.
type CalculatorHandler struct {
	health  *service.HealthService
	math    *service.MathService
	finance *service.FinanceService
	logger  *zap.Logger
}

func NewCalculatorHandler(
	health *service.HealthService,
	math *service.MathService,
	finance *service.FinanceService,
	logger *zap.Logger,
) *CalculatorHandler {
	return &CalculatorHandler{health: health, math: math, finance: finance, logger: logger}
}

func (h *CalculatorHandler) BodyFat(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, w, r, h.health.CalculateBodyFat)
}

func (h *CalculatorHandler) BMR(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, w, r, h.health.CalculateBMR)
}

func (h *CalculatorHandler) BMI(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, w, r, h.health.CalculateBMI)
}

func (h *CalculatorHandler) Fraction(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, w, r, h.math.CalculateFraction)
}

func (h *CalculatorHandler) Combinatorics(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, w, r, h.math.CalculateCombinatorics)
}

func (h *CalculatorHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, w, r, h.math.CalculateStatistics)
}

func (h *CalculatorHandler) Discount(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, w, r, h.finance.CalculateDiscount)
}

func (h *CalculatorHandler) CAGR(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, w, r, h.finance.CalculateCAGR)
}

func (h *CalculatorHandler) DTI(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, w, r, h.finance.CalculateDTI)
}

func (h *CalculatorHandler) Margin(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, w, r, h.finance.CalculateMargin)
}
