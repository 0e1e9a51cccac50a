package http

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"bankist/internal/core"
	"bankist/internal/session"
)

var validate = validator.New()

type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	PIN      string `json:"pin" validate:"required,numeric"`
}

type TransferRequest struct {
	To     string `json:"to" validate:"required"`
	Amount string `json:"amount" validate:"required"`
}

type LoanRequest struct {
	Amount string `json:"amount" validate:"required"`
}

func (req CredentialsRequest) ToDomain() (string, int, error) {
	pin, err := core.ParsePIN(req.PIN)
	if err != nil {
		return "", 0, err
	}

	return strings.TrimSpace(req.Username), pin, nil
}

func (req TransferRequest) ToDomain() (string, decimal.Decimal, error) {
	amount, err := core.ParseAmount(req.Amount)
	if err != nil {
		return "", decimal.Decimal{}, err
	}

	return strings.TrimSpace(req.To), amount, nil
}

func (req LoanRequest) ToDomain() (decimal.Decimal, error) {
	return core.ParseAmount(req.Amount)
}

func validateRequest(req any) error {
	return validate.Struct(req)
}

type MovementResponse struct {
	ID   string    `json:"id"`
	Sum  string    `json:"sum"`
	Date time.Time `json:"date"`
	Kind string    `json:"kind"`
}

type SessionResponse struct {
	Owner            string             `json:"owner"`
	Username         string             `json:"username"`
	Locale           string             `json:"locale"`
	InterestRate     string             `json:"interest_rate"`
	Balance          string             `json:"balance"`
	TotalDeposits    string             `json:"total_deposits"`
	TotalWithdrawals string             `json:"total_withdrawals"`
	Interest         string             `json:"interest"`
	Movements        []MovementResponse `json:"movements"`
	Sorted           bool               `json:"sorted"`
	SecondsRemaining int                `json:"seconds_remaining"`
}

func NewSessionResponse(snapshot session.Snapshot) SessionResponse {
	movements := make([]MovementResponse, 0, len(snapshot.Movements))
	for _, m := range snapshot.Movements {
		movements = append(movements, MovementResponse{
			ID:   m.ID,
			Sum:  m.Sum.String(),
			Date: m.Date,
			Kind: string(m.Kind),
		})
	}

	return SessionResponse{
		Owner:            snapshot.Account.Owner,
		Username:         snapshot.Account.Username,
		Locale:           snapshot.Account.Locale,
		InterestRate:     snapshot.Account.InterestRate.String(),
		Balance:          snapshot.Summary.Balance.String(),
		TotalDeposits:    snapshot.Summary.TotalDeposits.String(),
		TotalWithdrawals: snapshot.Summary.TotalWithdrawals.String(),
		Interest:         snapshot.Summary.Interest.String(),
		Movements:        movements,
		Sorted:           snapshot.Sorted,
		SecondsRemaining: snapshot.SecondsRemaining,
	}
}

type LoanResponse struct {
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
