package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"seoaudit/internal/analysis"
	"seoaudit/internal/config"
	"seoaudit/internal/crawl"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/logger"
	"seoaudit/pkg/storage/memory"
	"syscall"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// auditCommand constructs the 'audit' subcommand that crawls and analyzes a
// site in process, without a database, and prints the report.
func auditCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [domain]",
		Short: "Crawls a site locally and prints its SEO audit",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			maxPages, _ := cmd.Flags().GetInt("max-pages")

			store := memory.New()
			accounts, err := store.StoreAccounts(ctx, domain.Account{ID: domain.AccountID(uuid.New()), Plan: "local"})
			if err != nil {
				logger.Fatal(ctx, "could not create local account", zap.Error(err))
			}
			account := accounts[0]

			fetcher, closeFetcher := getFetcher(ctx, cfg)
			defer closeFetcher()
			engine := crawl.New(store, fetcher, analysis.New(store), nil, crawl.NewOptions(cfg))

			c, err := engine.CreateCrawl(ctx, crawl.StartRequest{
				AccountID: account.ID,
				ProjectID: domain.ProjectID(uuid.New()),
				Domain:    args[0],
				MaxPages:  maxPages,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create crawl", zap.Error(err))
			}

			if _, err = engine.Execute(ctx, c.ID, func(_ context.Context, c domain.CrawlJob) {
				logger.Info(ctx, "crawling...",
					zap.Int("progress", c.Progress),
					zap.Int("pages_crawled", c.PagesCrawled),
					zap.Int("pages_discovered", c.PagesDiscovered))
			}); err != nil {
				logger.Fatal(ctx, "audit failed", zap.Error(err))
			}

			report, err := engine.Audit(ctx, account.ID, c.ID)
			if err != nil {
				logger.Fatal(ctx, "could not load audit", zap.Error(err))
			}
			renderAudit(report)
		},
	}

	cmd.Flags().Int("max-pages", 50, "Maximum number of pages to crawl")

	return cmd
}

func renderAudit(report *domain.AuditReport) {
	s := report.Score

	scores := table.NewWriter()
	scores.SetOutputMirror(os.Stdout)
	scores.SetStyle(table.StyleRounded)
	scores.SetTitle(fmt.Sprintf("Overall score %d/100, %d pages, %d issues",
		s.OverallScore, s.PagesAnalyzed, s.TotalIssues))
	scores.AppendHeader(table.Row{"Technical", "On-page", "Content", "Performance", "Mobile"})
	scores.AppendRow(table.Row{s.TechnicalScore, s.OnPageScore, s.ContentScore, s.PerformanceScore, s.MobileScore})
	scores.Render()

	recs := table.NewWriter()
	recs.SetOutputMirror(os.Stdout)
	recs.SetStyle(table.StyleLight)
	recs.AppendHeader(table.Row{"Priority", "Category", "Recommendation", "Pages", "Effort"})
	for _, r := range report.Recommendations {
		recs.AppendRow(table.Row{r.Priority, r.Category, r.Title, r.AffectedPagesCount, r.Effort})
	}
	recs.SetColumnConfigs([]table.ColumnConfig{{Number: 3, WidthMax: 60}})
	recs.Render()
}
