package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bankist/internal/core"
	"bankist/internal/session"
)

func testSnapshot() session.Snapshot {
	account := core.Account{
		Owner:        "Kristiana Bakalova",
		Username:     "kb",
		PIN:          2222,
		InterestRate: decimal.RequireFromString("1.5"),
		Locale:       "en-US",
		Movements: core.Ledger{
			core.NewMovement(decimal.NewFromInt(5000), core.KindSeed, time.Date(2019, 11, 1, 13, 15, 33, 0, time.UTC)),
			core.NewMovement(decimal.NewFromInt(-150), core.KindTransferOut, time.Date(2019, 12, 25, 6, 4, 23, 0, time.UTC)),
		},
	}

	return session.Snapshot{
		Account:          account,
		Summary:          account.Summary(),
		Movements:        account.Movements,
		SecondsRemaining: 300,
	}
}

func serve(t *testing.T, engine SessionEngine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	router := NewRouter(NewHandler(engine, NewEventLog(16), discardLogger()))

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestHandler_PostSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		requestBody    any
		setupMock      func(mock *MockSessionEngine)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:        "valid_credentials_returns_200",
			requestBody: CredentialsRequest{Username: "kb", PIN: "2222"},
			setupMock: func(mock *MockSessionEngine) {
				mock.EXPECT().Login(gomock.Any(), "kb", 2222).Return(testSnapshot(), nil).Times(1)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "invalid_credentials_returns_401",
			requestBody: CredentialsRequest{Username: "kb", PIN: "1111"},
			setupMock: func(mock *MockSessionEngine) {
				mock.EXPECT().Login(gomock.Any(), "kb", 1111).Return(session.Snapshot{}, core.ErrInvalidCredentials).Times(1)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "invalid_credentials",
		},
		{
			name:           "non_numeric_pin_returns_400",
			requestBody:    CredentialsRequest{Username: "kb", PIN: "22a2"},
			setupMock:      func(mock *MockSessionEngine) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "invalid_request",
		},
		{
			name:           "missing_username_returns_400",
			requestBody:    CredentialsRequest{PIN: "2222"},
			setupMock:      func(mock *MockSessionEngine) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "invalid_request",
		},
		{
			name:           "malformed_body_returns_400",
			requestBody:    "not an object",
			setupMock:      func(mock *MockSessionEngine) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "invalid_request",
		},
		{
			name:        "store_failure_returns_500",
			requestBody: CredentialsRequest{Username: "kb", PIN: "2222"},
			setupMock: func(mock *MockSessionEngine) {
				mock.EXPECT().Login(gomock.Any(), "kb", 2222).Return(session.Snapshot{}, errors.New("database is locked")).Times(1)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockEngine := NewMockSessionEngine(ctrl)
			tt.setupMock(mockEngine)

			w := serve(t, mockEngine, http.MethodPost, "/session", tt.requestBody)
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedCode != "" {
				require.Equal(t, tt.expectedCode, decodeError(t, w).Code)
				return
			}

			var resp SessionResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			require.Equal(t, "kb", resp.Username)
			require.Equal(t, "4850", resp.Balance)
			require.Equal(t, "5000", resp.TotalDeposits)
			require.Equal(t, "150", resp.TotalWithdrawals)
			require.Equal(t, "75", resp.Interest)
			require.Len(t, resp.Movements, 2)
			require.Equal(t, "-150", resp.Movements[1].Sum)
			require.Equal(t, "transfer_out", resp.Movements[1].Kind)
		})
	}
}

func TestHandler_PostTransfers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		requestBody    TransferRequest
		setupMock      func(mock *MockSessionEngine)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:        "successful_transfer_returns_201",
			requestBody: TransferRequest{To: "sg", Amount: "14.5"},
			setupMock: func(mock *MockSessionEngine) {
				mock.EXPECT().
					Transfer(gomock.Any(), "sg", decimal.RequireFromString("14.5")).
					Return(testSnapshot(), nil).
					Times(1)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "insufficient_funds_returns_422",
			requestBody: TransferRequest{To: "sg", Amount: "100000"},
			setupMock: func(mock *MockSessionEngine) {
				mock.EXPECT().Transfer(gomock.Any(), "sg", gomock.Any()).Return(session.Snapshot{}, core.ErrInsufficientFunds).Times(1)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "insufficient_funds",
		},
		{
			name:        "unknown_recipient_returns_404",
			requestBody: TransferRequest{To: "zz", Amount: "10"},
			setupMock: func(mock *MockSessionEngine) {
				mock.EXPECT().Transfer(gomock.Any(), "zz", gomock.Any()).Return(session.Snapshot{}, core.ErrRecipientNotFound).Times(1)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "recipient_not_found",
		},
		{
			name:        "self_transfer_returns_422",
			requestBody: TransferRequest{To: "kb", Amount: "10"},
			setupMock: func(mock *MockSessionEngine) {
				mock.EXPECT().Transfer(gomock.Any(), "kb", gomock.Any()).Return(session.Snapshot{}, core.ErrSelfTransfer).Times(1)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "self_transfer",
		},
		{
			name:        "logged_out_returns_401",
			requestBody: TransferRequest{To: "sg", Amount: "10"},
			setupMock: func(mock *MockSessionEngine) {
				mock.EXPECT().Transfer(gomock.Any(), "sg", gomock.Any()).Return(session.Snapshot{}, core.ErrNotLoggedIn).Times(1)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "not_logged_in",
		},
		{
			name:           "negative_amount_returns_422",
			requestBody:    TransferRequest{To: "sg", Amount: "-10"},
			setupMock:      func(mock *MockSessionEngine) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "invalid_amount",
		},
		{
			name:           "invalid_amount_format_returns_422",
			requestBody:    TransferRequest{To: "sg", Amount: "not-a-number"},
			setupMock:      func(mock *MockSessionEngine) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "invalid_amount",
		},
		{
			name:           "missing_recipient_returns_400",
			requestBody:    TransferRequest{Amount: "10"},
			setupMock:      func(mock *MockSessionEngine) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "invalid_request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockEngine := NewMockSessionEngine(ctrl)
			tt.setupMock(mockEngine)

			w := serve(t, mockEngine, http.MethodPost, "/transfers", tt.requestBody)
			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				require.Equal(t, tt.expectedCode, decodeError(t, w).Code)
			}
		})
	}
}

func TestHandler_PostLoans(t *testing.T) {
	t.Parallel()

	requestID := uuid.MustParse("6f1c2a7e-3b9d-4d35-9a6e-0c1e2f3a4b5c")

	tests := []struct {
		name           string
		requestBody    LoanRequest
		setupMock      func(mock *MockSessionEngine)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:        "approved_loan_returns_202",
			requestBody: LoanRequest{Amount: "13000"},
			setupMock: func(mock *MockSessionEngine) {
				mock.EXPECT().RequestLoan(gomock.Any(), decimal.NewFromInt(13000)).Return(requestID, nil).Times(1)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:        "rejected_loan_returns_422",
			requestBody: LoanRequest{Amount: "13001"},
			setupMock: func(mock *MockSessionEngine) {
				mock.EXPECT().RequestLoan(gomock.Any(), gomock.Any()).Return(uuid.Nil, core.ErrLoanNotEligible).Times(1)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "loan_not_eligible",
		},
		{
			name:           "zero_amount_returns_422",
			requestBody:    LoanRequest{Amount: "0"},
			setupMock:      func(mock *MockSessionEngine) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "invalid_amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockEngine := NewMockSessionEngine(ctrl)
			tt.setupMock(mockEngine)

			w := serve(t, mockEngine, http.MethodPost, "/loans", tt.requestBody)
			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				require.Equal(t, tt.expectedCode, decodeError(t, w).Code)
				return
			}

			var resp LoanResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			require.Equal(t, requestID.String(), resp.RequestID)
		})
	}
}

func TestHandler_SessionLifecycle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		method         string
		path           string
		requestBody    any
		setupMock      func(mock *MockSessionEngine)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "get_session_returns_200",
			method: http.MethodGet,
			path:   "/session",
			setupMock: func(mock *MockSessionEngine) {
				mock.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot(), nil).Times(1)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "get_session_logged_out_returns_401",
			method: http.MethodGet,
			path:   "/session",
			setupMock: func(mock *MockSessionEngine) {
				mock.EXPECT().Snapshot(gomock.Any()).Return(session.Snapshot{}, core.ErrNotLoggedIn).Times(1)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "not_logged_in",
		},
		{
			name:   "logout_returns_204",
			method: http.MethodDelete,
			path:   "/session",
			setupMock: func(mock *MockSessionEngine) {
				mock.EXPECT().Logout(gomock.Any()).Return(nil).Times(1)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:        "close_matching_returns_204",
			method:      http.MethodPost,
			path:        "/session/close",
			requestBody: CredentialsRequest{Username: "kb", PIN: "2222"},
			setupMock: func(mock *MockSessionEngine) {
				mock.EXPECT().Close(gomock.Any(), "kb", 2222).Return(nil).Times(1)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:        "close_mismatch_returns_401",
			method:      http.MethodPost,
			path:        "/session/close",
			requestBody: CredentialsRequest{Username: "kb", PIN: "1234"},
			setupMock: func(mock *MockSessionEngine) {
				mock.EXPECT().Close(gomock.Any(), "kb", 1234).Return(core.ErrInvalidCredentials).Times(1)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "invalid_credentials",
		},
		{
			name:   "sort_returns_200",
			method: http.MethodPost,
			path:   "/session/sort",
			setupMock: func(mock *MockSessionEngine) {
				snapshot := testSnapshot()
				snapshot.Sorted = true
				mock.EXPECT().ToggleSort(gomock.Any()).Return(snapshot, nil).Times(1)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown_method_returns_405",
			method:         http.MethodPut,
			path:           "/session",
			setupMock:      func(mock *MockSessionEngine) {},
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockEngine := NewMockSessionEngine(ctrl)
			tt.setupMock(mockEngine)

			w := serve(t, mockEngine, tt.method, tt.path, tt.requestBody)
			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				require.Equal(t, tt.expectedCode, decodeError(t, w).Code)
			}
		})
	}
}
