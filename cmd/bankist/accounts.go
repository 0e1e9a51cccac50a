package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newAccountsCmd(seedFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List accounts with their balance and summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			a, err := newApp(ctx, *seedFile)
			if err != nil {
				return err
			}
			defer a.close()

			accounts, err := a.repository.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "USERNAME\tOWNER\tMOVEMENTS\tBALANCE\tIN\tOUT\tINTEREST")
			for _, account := range accounts {
				summary := account.Summary()
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
					account.Username,
					account.Owner,
					len(account.Movements),
					summary.Balance.StringFixed(2),
					summary.TotalDeposits.StringFixed(2),
					summary.TotalWithdrawals.StringFixed(2),
					summary.Interest.StringFixed(2),
				)
			}

			return w.Flush()
		},
	}
}
