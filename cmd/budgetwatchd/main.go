package main

import (
	"context"
	"log/slog"
	"time"

	"budgetwatch/internal/cli"
	"budgetwatch/internal/core"
	"budgetwatch/internal/ledger"
	"budgetwatch/internal/notify"
	"budgetwatch/internal/services"
)

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger("info")
	cfg := cli.LoadAndValidateConfig(logger)
	logger = cli.SetupLogger(cfg.LogLevel)

	store := cli.InitStore(logger, cfg.SQLiteDBPath)

	expenses := ledger.NewExpenseLedger(store)
	budgets := ledger.NewBudgetLedger(store)

	// Explicit one-shot initialization: hydrate both ledgers before anything
	// reads them, so an unloaded ledger is never mistaken for an empty one.
	hydrateCtx, hydrateCancel := context.WithTimeout(context.Background(), 10*time.Second)
	expenses.Hydrate(hydrateCtx)
	budgets.Hydrate(hydrateCtx)
	hydrateCancel()

	var notifier services.AlertPublisher
	if cfg.AMQPURL != "" {
		client, err := notify.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to connect AMQP, alert publishing disabled", "error", err)
		} else {
			notifier = client
			defer client.Close()
		}
	}

	tracker := services.NewTracker(expenses, budgets, notifier, cfg.CacheRefetchLatency)

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		expenses.Close()
		budgets.Close()
		if err := store.Close(); err != nil {
			logger.Error("Failed to close snapshot store", "error", err)
		}
	})

	logger.Info("budgetwatch started",
		"db", cfg.SQLiteDBPath,
		"watch_interval", cfg.WatchInterval,
		"notify", notifier != nil)

	watch(ctx, tracker, cfg.WatchInterval)

	cli.WaitForShutdown(ctx, done)
}

// watch periodically derives budget statuses and logs any budget at warning
// tier or worse.
func watch(ctx context.Context, tracker *services.Tracker, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				for _, st := range tracker.BudgetStatuses(time.Time{}) {
					if st.Tier == core.TierSafe {
						continue
					}
					slog.WarnContext(ctx, "Budget attention needed",
						"category", st.Budget.Category,
						"period", st.Budget.Period,
						"spent", st.Spent,
						"limit", st.Budget.Amount,
						"percentage", st.Percentage,
						"tier", st.Tier)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}
