package http

import (
	"net/http"

	"go.uber.org/zap"
)

// Handlers groups every endpoint the router mounts.
type Handlers struct {
	Loans       *LoanHandler
	Calculators *CalculatorHandler
	Files       *FileHandler
	Catalog     *CatalogHandler
}

// NewRouter mounts all tools behind the rate limiter and request logging.
// Health checks skip the limiter.
func NewRouter(h Handlers, limiter *RateLimiter, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	limited := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, RateLimitMiddleware(limiter, fn))
	}

	limited("/loan/calculate", h.Loans.CalculateLoan)
	limited("/mortgage/canada", h.Loans.CalculateMortgage)
	limited("/lease/calculate", h.Loans.CalculateLease)

	limited("/health/body-fat", h.Calculators.BodyFat)
	limited("/health/bmr", h.Calculators.BMR)
	limited("/health/bmi", h.Calculators.BMI)
	limited("/math/fraction", h.Calculators.Fraction)
	limited("/math/combinatorics", h.Calculators.Combinatorics)
	limited("/math/statistics", h.Calculators.Statistics)
	limited("/shopping/discount", h.Calculators.Discount)
	limited("/finance/cagr", h.Calculators.CAGR)
	limited("/finance/dti", h.Calculators.DTI)
	limited("/finance/margin", h.Calculators.Margin)

	limited("POST /pdf/{operation}", h.Files.Submit)
	limited("GET /pdf/jobs/{id}", h.Files.Status)
	limited("DELETE /pdf/jobs/{id}", h.Files.Cancel)
	limited("GET /pdf/jobs/{id}/download", h.Files.Download)

	limited("GET /tools", h.Catalog.Tools)
	mux.HandleFunc("GET /healthz", h.Catalog.Health)

	return LoggingMiddleware(logger, mux)
}
