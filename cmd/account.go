package main

import (
	"context"
	"os"
	"seoaudit/internal/config"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/logger"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// accountCommand constructs the 'account' subcommand that creates an account
// or replaces the plan and credit balance of an existing one.
func accountCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Creates or updates an account",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			rawID, _ := cmd.Flags().GetString("id")
			plan, _ := cmd.Flags().GetString("plan")
			metered, _ := cmd.Flags().GetBool("metered")
			credits, _ := cmd.Flags().GetInt64("credits")

			id := uuid.New()
			if rawID != "" {
				var err error
				if id, err = uuid.Parse(rawID); err != nil {
					logger.Fatal(ctx, "invalid account id", zap.Error(err))
				}
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			accounts, err := strg.StoreAccounts(ctx, domain.Account{
				ID:      domain.AccountID(id),
				Plan:    plan,
				Metered: metered,
				Credits: credits,
			})
			if err != nil {
				logger.Fatal(ctx, "could not store account", zap.Error(err))
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Plan", "Metered", "Credits", "Created"})
			for _, a := range accounts {
				t.AppendRow(table.Row{a.ID.String(), a.Plan, a.Metered, a.Credits, a.CreatedAt.Format("2006-01-02 15:04")})
			}
			t.Render()
		},
	}

	cmd.Flags().String("id", "", "Account ID, a new one is generated when empty")
	cmd.Flags().String("plan", "free", "Plan name")
	cmd.Flags().Bool("metered", true, "Whether crawls are paid with credits")
	cmd.Flags().Int64("credits", 0, "Credit balance")

	return cmd
}
