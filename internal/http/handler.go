package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bankist/internal/core"
	"bankist/internal/session"
)

//go:generate go tool go.uber.org/mock/mockgen -source=handler.go -destination=service_mock.go -package=http

type SessionEngine interface {
	Login(ctx context.Context, username string, pin int) (session.Snapshot, error)
	Snapshot(ctx context.Context) (session.Snapshot, error)
	Logout(ctx context.Context) error
	Close(ctx context.Context, username string, pin int) error
	ToggleSort(ctx context.Context) (session.Snapshot, error)
	Transfer(ctx context.Context, to string, amount decimal.Decimal) (session.Snapshot, error)
	RequestLoan(ctx context.Context, amount decimal.Decimal) (uuid.UUID, error)
}

type Handler struct {
	engine SessionEngine
	events *EventLog
	logger core.Logger
}

func NewHandler(engine SessionEngine, events *EventLog, logger core.Logger) Handler {
	return Handler{
		engine: engine,
		events: events,
		logger: logger,
	}
}

// rejections maps each business rejection to its status and stable code.
var rejections = []struct {
	err    error
	status int
	code   string
}{
	{core.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{core.ErrNotLoggedIn, http.StatusUnauthorized, "not_logged_in"},
	{core.ErrRecipientNotFound, http.StatusNotFound, "recipient_not_found"},
	{core.ErrAccountNotFound, http.StatusNotFound, "account_not_found"},
	{core.ErrInsufficientFunds, http.StatusUnprocessableEntity, "insufficient_funds"},
	{core.ErrLoanNotEligible, http.StatusUnprocessableEntity, "loan_not_eligible"},
	{core.ErrSelfTransfer, http.StatusUnprocessableEntity, "self_transfer"},
	{core.ErrInvalidAmount, http.StatusUnprocessableEntity, "invalid_amount"},
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// writeFailure answers a failed engine call. Anything that is not a known
// rejection is logged and reported as a 500.
func (h Handler) writeFailure(ctx context.Context, w http.ResponseWriter, err error, action string) {
	for _, r := range rejections {
		if errors.Is(err, r.err) {
			writeError(w, r.status, r.code, err.Error())
			return
		}
	}

	if core.IsRejection(err) {
		writeError(w, http.StatusUnprocessableEntity, "rejected", err.Error())
		return
	}

	h.logger.ErrorContext(ctx, "Failed to "+action, "error", err)
	writeError(w, http.StatusInternalServerError, "internal", "Failed to "+action)
}

// decode reads and validates a JSON body. It answers the request itself and
// returns false when the body is unusable.
func decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return false
	}

	if err := validateRequest(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Validation failed: "+err.Error())
		return false
	}

	return true
}
