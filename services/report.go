package services

import (
	"context"
	"log/slog"
	"time"
)

// StartDailyReportScheduler runs a background loop that, once per day
// at reportHour, aggregates yesterday's conversation stats and hands
// them to the notifier. Best effort: a failed report is logged and
// retried at the next day's slot.
func StartDailyReportScheduler(ctx context.Context, notifier *Notifier, reportHour int) {
	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		defer ticker.Stop()

		var lastSent string

		for {
			select {
			case <-ctx.Done():
				slog.Info("Daily report scheduler stopped")
				return
			case <-ticker.C:
				now := time.Now()
				if now.Hour() != reportHour {
					continue
				}

				yesterday := now.Add(-24 * time.Hour)
				day := yesterday.Format("2006-01-02")
				if day == lastSent {
					continue
				}

				reportCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
				stats, err := GetDailyStats(reportCtx, yesterday)
				if err != nil {
					slog.Error("Failed to aggregate daily stats", "error", err, "date", day)
					cancel()
					continue
				}

				if err := notifier.NotifyDailySummary(reportCtx, stats); err != nil {
					slog.Error("Failed to send daily summary", "error", err, "date", day)
					cancel()
					continue
				}
				cancel()

				lastSent = day
				slog.Info("Daily summary sent", "date", day, "turns", stats.TotalTurns, "leads", stats.NewLeads)
			}
		}
	}()

	slog.Info("Daily report scheduler started", "reportHour", reportHour)
}
