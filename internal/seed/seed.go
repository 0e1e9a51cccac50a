package seed

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"bankist/internal/core"
	"bankist/internal/id"
)

type File struct {
	Accounts []AccountRecord `yaml:"accounts"`
}

type AccountRecord struct {
	Owner        string           `yaml:"owner"`
	PIN          int              `yaml:"pin"`
	InterestRate string           `yaml:"interest_rate"`
	Locale       string           `yaml:"locale"`
	Movements    []MovementRecord `yaml:"movements"`
}

type MovementRecord struct {
	Sum  string `yaml:"sum"`
	Date string `yaml:"date"`
}

// Default is the demo data set the application starts with.
func Default() File {
	return File{
		Accounts: []AccountRecord{
			{
				Owner:        "Stoyan Gospodinov",
				PIN:          1111,
				InterestRate: "1.2",
				Locale:       "bg-BG",
				Movements: []MovementRecord{
					{Sum: "200", Date: "2019-11-18T21:31:17.178Z"},
					{Sum: "455.23", Date: "2019-12-23T07:42:02.383Z"},
					{Sum: "-306.5", Date: "2020-01-28T09:15:04.904Z"},
					{Sum: "25000", Date: "2020-04-01T10:17:24.185Z"},
					{Sum: "-642.21", Date: "2020-05-08T14:11:59.604Z"},
					{Sum: "-133.9", Date: "2020-05-27T17:01:17.194Z"},
					{Sum: "79.97", Date: "2020-07-11T23:36:17.929Z"},
					{Sum: "1300", Date: "2020-07-12T10:51:36.790Z"},
				},
			},
			{
				Owner:        "Kristiana Bakalova",
				PIN:          2222,
				InterestRate: "1.5",
				Locale:       "en-US",
				Movements: []MovementRecord{
					{Sum: "5000", Date: "2019-11-01T13:15:33.035Z"},
					{Sum: "3400", Date: "2019-11-30T09:48:16.867Z"},
					{Sum: "-150", Date: "2019-12-25T06:04:23.907Z"},
					{Sum: "-790", Date: "2020-01-25T14:18:46.235Z"},
					{Sum: "-3210", Date: "2020-02-05T16:33:06.386Z"},
					{Sum: "-1000", Date: "2020-04-10T14:43:26.374Z"},
					{Sum: "8500", Date: "2020-06-25T18:49:59.371Z"},
					{Sum: "-30", Date: "2020-07-26T12:01:20.894Z"},
				},
			},
		},
	}
}

func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read seed file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return File{}, fmt.Errorf("parse seed file: %w", err)
	}

	return file, nil
}

// Load returns the seed file at path, or the default data set when path is
// empty.
func Load(path string) (File, error) {
	if path == "" {
		return Default(), nil
	}

	return LoadFile(path)
}

func (f File) ToDomain() ([]core.Account, error) {
	accounts := make([]core.Account, 0, len(f.Accounts))
	for _, record := range f.Accounts {
		account, err := record.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("invalid seed account %q: %w", record.Owner, err)
		}

		accounts = append(accounts, account)
	}

	return accounts, nil
}

func (r AccountRecord) ToDomain() (core.Account, error) {
	rate := decimal.Zero
	if r.InterestRate != "" {
		parsed, err := decimal.NewFromString(r.InterestRate)
		if err != nil {
			return core.Account{}, fmt.Errorf("invalid interest rate %q: %w", r.InterestRate, err)
		}
		rate = parsed
	}

	movements := make(core.Ledger, 0, len(r.Movements))
	for i, m := range r.Movements {
		sum, err := decimal.NewFromString(m.Sum)
		if err != nil {
			return core.Account{}, fmt.Errorf("movement %d: invalid sum %q: %w", i, m.Sum, err)
		}
		if !core.InRange(sum) {
			return core.Account{}, fmt.Errorf("movement %d: invalid sum %q: out of range", i, m.Sum)
		}

		date, err := time.Parse(time.RFC3339Nano, m.Date)
		if err != nil {
			return core.Account{}, fmt.Errorf("movement %d: invalid date %q: %w", i, m.Date, err)
		}
		if date.Before(time.Unix(0, 0)) {
			return core.Account{}, fmt.Errorf("movement %d: invalid date %q: before 1970", i, m.Date)
		}

		movements.Append(core.Movement{
			ID:   id.Movement(date),
			Sum:  sum,
			Date: date.UTC(),
			Kind: core.KindSeed,
		})
	}

	return core.Account{
		Owner:        r.Owner,
		PIN:          r.PIN,
		InterestRate: rate,
		Locale:       r.Locale,
		Movements:    movements,
	}, nil
}

// Apply registers every account of f in repo and returns them with their
// derived usernames.
func Apply(ctx context.Context, repo core.AccountRepository, f File) ([]core.Account, error) {
	accounts, err := f.ToDomain()
	if err != nil {
		return nil, err
	}

	registered := make([]core.Account, 0, len(accounts))
	for _, account := range accounts {
		created, err := repo.Register(ctx, account)
		if err != nil {
			return nil, fmt.Errorf("register %q: %w", account.Owner, err)
		}

		registered = append(registered, created)
	}

	return registered, nil
}
