package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"calc-api/domain"
	"calc-api/service"
)

func newLoanHandler() *LoanHandler {
	logger := zap.NewNop()
	return NewLoanHandler(service.NewLoanService(logger), logger)
}

func TestCalculateLoanHandler_OK(t *testing.T) {

	handler := newLoanHandler()

	body := []byte(`{
		"principal": 10000,
		"annual_rate": 12,
		"term_months": 24
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/loan/calculate",
		bytes.NewBuffer(body),
	)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result domain.LoanResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Payment != 470.73 {
		t.Errorf("expected payment 470.73, got %.2f", result.Payment)
	}
}

func TestCalculateLoanHandler_MethodNotAllowed(t *testing.T) {

	handler := newLoanHandler()

	req := httptest.NewRequest(http.MethodGet, "/loan/calculate", nil)
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestCalculateLoanHandler_BadRequest(t *testing.T) {

	handler := newLoanHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/loan/calculate",
		bytes.NewBuffer([]byte(`{invalid-json}`)),
	)

	w := httptest.NewRecorder()
	handler.CalculateLoan(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCalculateLoanHandler_UnsupportedMediaType(t *testing.T) {

	handler := newLoanHandler()

	req := httptest.NewRequest(http.MethodPost, "/loan/calculate", strings.NewReader("principal=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}

func TestCalculateLoanHandler_LimitExceeded(t *testing.T) {

	handler := newLoanHandler()

	req := httptest.NewRequest(http.MethodPost, "/loan/calculate",
		strings.NewReader(`{"principal": 1000, "annual_rate": 5, "term_months": 9000}`))
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCalculateLoanHandler_ClipboardText(t *testing.T) {

	handler := newLoanHandler()

	req := httptest.NewRequest(http.MethodPost, "/loan/calculate?format=text",
		strings.NewReader(`{"principal": 1200, "annual_rate": 0, "term_months": 12}`))
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("expected text/plain, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), "Payment: $100.00 monthly (12 payments)") {
		t.Errorf("unexpected summary: %q", w.Body.String())
	}
}

func TestCalculateMortgageHandler_DegenerateStillRenders(t *testing.T) {

	handler := newLoanHandler()

	req := httptest.NewRequest(http.MethodPost, "/mortgage/canada",
		strings.NewReader(`{"price": 0, "annual_rate": 5, "amortization_years": 25}`))
	w := httptest.NewRecorder()

	handler.CalculateMortgage(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var result domain.MortgageResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := result.Validation["price"]; !ok {
		t.Errorf("expected price advisory, got %v", result.Validation)
	}
}
