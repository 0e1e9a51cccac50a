package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func runAccounts(t *testing.T, args ...string) string {
	t.Helper()

	t.Setenv("LOG_LEVEL", "8")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"accounts"}, args...))

	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestAccountsCmd_BuiltInSeed(t *testing.T) {
	out := runAccounts(t)

	require.Contains(t, out, "Stoyan Gospodinov")
	require.Contains(t, out, "25952.59")
	require.Contains(t, out, "323.46")
	require.Contains(t, out, "Kristiana Bakalova")
	require.Contains(t, out, "11720.00")
}

func TestAccountsCmd_SeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
accounts:
  - owner: Jonas Schmedtmann
    pin: 4444
    interest_rate: "1"
    locale: en-GB
    movements:
      - sum: "1300"
        date: "2020-07-12T10:51:36.790Z"
      - sum: "-300.5"
        date: "2020-07-13T10:51:36.790Z"
`), 0o600))

	out := runAccounts(t, "--seed", path)

	require.Contains(t, out, "js")
	require.Contains(t, out, "999.50")
	require.NotContains(t, out, "Stoyan Gospodinov")
}

func TestAccountsCmd_SQLiteStore(t *testing.T) {
	t.Setenv("STORE", "sqlite")
	t.Setenv("DATABASE_IN_MEMORY", "false")
	t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "bankist.db"))

	first := runAccounts(t)
	second := runAccounts(t)

	require.Contains(t, first, "Kristiana Bakalova")
	require.Equal(t, first, second, "a seeded database is not seeded twice")
}
