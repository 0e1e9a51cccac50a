package session

import "time"

type Config struct {
	IdleTimeout time.Duration `envconfig:"IDLE_TIMEOUT" default:"300s"`
	LoanDelay   time.Duration `envconfig:"LOAN_DELAY" default:"3s"`
}
