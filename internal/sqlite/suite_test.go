package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"bankist/internal/core"
	"bankist/internal/sqlite"
)

type TestSuite struct {
	DB     *sql.DB
	Client *sqlite.Client
	Store  sqlite.AccountStore
}

func NewTestSuite(t *testing.T) *TestSuite {
	t.Helper()

	config := sqlite.Config{
		DatabasePath: filepath.Join(t.TempDir(), "test_bankist.db"),
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		BusyTimeout:  30 * time.Second,
		EnableWAL:    true,
	}

	client, err := sqlite.NewClient(config)
	require.NoError(t, err, "failed to create test client")
	t.Cleanup(func() { client.Close() })

	return &TestSuite{
		DB:     client.DB(),
		Client: client,
		Store:  sqlite.NewAccountStore(client.DB()),
	}
}

func movement(sum string) core.Movement {
	return core.NewMovement(decimal.RequireFromString(sum), core.KindSeed, time.Now())
}

func (s *TestSuite) SeedAccounts(t *testing.T) {
	t.Helper()

	for _, account := range []core.Account{
		{
			Owner:        "Stoyan Gospodinov",
			PIN:          1111,
			InterestRate: decimal.RequireFromString("1.2"),
			Locale:       "bg-BG",
			Movements:    core.Ledger{movement("1300"), movement("-400")},
		},
		{
			Owner:        "Kristiana Bakalova",
			PIN:          2222,
			InterestRate: decimal.RequireFromString("1.5"),
			Locale:       "en-US",
			Movements:    core.Ledger{movement("5000")},
		},
	} {
		_, err := s.Store.Register(t.Context(), account)
		require.NoError(t, err, "failed to seed account")
	}
}

func (s *TestSuite) CountMovements(t *testing.T) int {
	t.Helper()

	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM movements").Scan(&count)
	require.NoError(t, err, "failed to count movements")

	return count
}
