package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trading-dashboard/internal/repository"
	"trading-dashboard/internal/service"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var (
	reportYear     int
	reportMonth    int
	reportSend     bool
	reportSnapshot bool
	reportJSON     bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the performance report for one month",
	Long: "Builds the monthly performance report. Without --year and --month it reports on the " +
		"last completed month. --send delivers that report through telegram instead of printing it.",
	RunE: runReport,
}

func init() {
	reportCmd.Flags().IntVar(&reportYear, "year", 0, "report year, defaults to the last completed month")
	reportCmd.Flags().IntVar(&reportMonth, "month", 0, "report month 1-12, defaults to the last completed month")
	reportCmd.Flags().BoolVar(&reportSend, "send", false, "send the last completed month's report to telegram")
	reportCmd.Flags().BoolVar(&reportSnapshot, "snapshot", false, "store a metrics snapshot for the report window")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "print the report as JSON")
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		return err
	}
	defer appDep.Close()

	repo := repository.NewRepository(appDep.cfg, appDep.gormDB(), appDep.log)
	services := service.NewService(appDep.cfg, appDep.log, repo, appDep.notifier)

	if reportSend {
		return services.ReportService.SendMonthlyReport(ctx)
	}

	year, month, err := reportPeriod(time.Now().UTC(), reportYear, reportMonth)
	if err != nil {
		return err
	}

	report, err := services.ReportService.BuildMonthlyReport(ctx, year, month)
	if err != nil {
		return err
	}

	if reportSnapshot {
		if _, err := services.ReportService.SaveSnapshot(ctx, report, service.SourceCLI); err != nil {
			if errors.Is(err, service.ErrSnapshotsDisabled) {
				return fmt.Errorf("--snapshot needs database.host: %w", err)
			}
			return err
		}
	}

	out := cmd.OutOrStdout()
	if reportJSON {
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	_, err = fmt.Fprintln(out, service.FormatMonthlyReport(report))
	return err
}

// reportPeriod resolves the flags to a month. Zero values fall back to the last
// completed month relative to now.
func reportPeriod(now time.Time, year, month int) (int, time.Month, error) {
	if month < 0 || month > 12 {
		return 0, 0, fmt.Errorf("--month must be between 1 and 12, got %d", month)
	}
	lastMonth := now.AddDate(0, 0, -now.Day())
	if year == 0 {
		year = lastMonth.Year()
	}
	if month == 0 {
		return year, lastMonth.Month(), nil
	}
	return year, time.Month(month), nil
}
