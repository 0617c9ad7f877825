package main

import (
	"context"
	"fmt"

	"github.com/moznion/go-optional"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-advisor/internal/profile"
	"github.com/rxtech-lab/argo-advisor/internal/types"
	"github.com/rxtech-lab/argo-advisor/pkg/marketdata"
)

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "Analyze historical swing cycles and derive threshold recommendations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "prices",
				Aliases:  []string{"p"},
				Usage:    "Path to the price history CSV",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "volatility",
				Aliases: []string{"x"},
				Usage:   "Path to the volatility index CSV (optional, enables volatility stats)",
			},
			&cli.FloatFlag{
				Name:    "threshold",
				Aliases: []string{"t"},
				Usage:   "Drawdown threshold as a fraction",
				Value:   profile.DefaultParams().DrawdownThreshold,
			},
			&cli.IntFlag{
				Name:  "rsi-period",
				Usage: "Oscillator lookback period",
				Value: int64(profile.DefaultParams().RSIPeriod),
			},
			&cli.IntFlag{
				Name:  "short-period",
				Usage: "Short moving average period",
				Value: int64(profile.DefaultParams().ShortMAPeriod),
			},
			&cli.IntFlag{
				Name:  "long-period",
				Usage: "Long moving average period",
				Value: int64(profile.DefaultParams().LongMAPeriod),
			},
		},
		Action: analyzeAction,
	}
}

func analyzeAction(ctx context.Context, cmd *cli.Command) error {
	log, err := newRunLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	prices, err := marketdata.LoadCSV(cmd.String("prices"))
	if err != nil {
		return err
	}

	var volatility []types.PriceRow
	if path := cmd.String("volatility"); path != "" {
		volatility, err = marketdata.LoadCSV(path)
		if err != nil {
			return err
		}
	}

	params := profile.Params{
		RSIPeriod:         int(cmd.Int("rsi-period")),
		ShortMAPeriod:     int(cmd.Int("short-period")),
		LongMAPeriod:      int(cmd.Int("long-period")),
		DrawdownThreshold: cmd.Float("threshold"),
	}

	log.Info("analyzing swing history",
		zap.Int("price_rows", len(prices)),
		zap.Float64("threshold", params.DrawdownThreshold))

	analysis, err := profile.Analyze(prices, volatility, params)
	if err != nil {
		return err
	}

	log.Info("analysis complete", zap.Int("cycles", len(analysis.Cycles)))

	printAnalysisReport(analysis)

	return nil
}

func printAnalysisReport(analysis profile.Analysis) {
	fmt.Println(TitleStyle.Render(fmt.Sprintf("Swing cycles (%d)", len(analysis.Cycles))))
	for _, cycle := range analysis.Cycles {
		recovery := "open"
		if date, err := cycle.RecoveryDate.Take(); err == nil {
			recovery = date.Format("2006-01-02")
		}
		fmt.Printf("  %s  peak %.2f -> trough %.2f (%s)  recovered %s\n",
			cycle.PeakDate.Format("2006-01-02"), cycle.PeakPrice, cycle.TroughPrice,
			FormatDrawdown(cycle.Drawdown), recovery)
	}
	fmt.Println()

	if stats, err := analysis.DrawdownStats.Take(); err == nil {
		fmt.Println(TitleStyle.Render("Drawdown distribution"))
		fmt.Printf("  mean %.1f%%  median %.1f%%  worst %.1f%%\n",
			stats.Mean*100, stats.Median*100, stats.Min*100)
		fmt.Println()
	}

	if len(analysis.BySeverity) > 0 {
		fmt.Println(TitleStyle.Render("By severity"))
		for _, severity := range []types.Severity{
			types.SeverityCorrection, types.SeverityDeepCorrection,
			types.SeverityBearMarket, types.SeverityCrash,
		} {
			stats, ok := analysis.BySeverity[severity]
			if !ok {
				continue
			}
			recovery := "n/a"
			if days, err := stats.AvgRecoveryDays.Take(); err == nil {
				recovery = fmt.Sprintf("%.0f days", days)
			}
			fmt.Printf("  %-18s x%d  avg %.1f%%  decline %.0f days  recovery %s\n",
				severity, stats.Count, stats.AvgDrawdown*100, stats.AvgDeclineDays, recovery)
		}
		fmt.Println()
	}

	printSideStats("Peak-side indicators", analysis.PeakStats)
	printSideStats("Trough-side indicators", analysis.TroughStats)

	if rec, err := analysis.Recommendation.Take(); err == nil {
		fmt.Println(TitleStyle.Render("Recommended thresholds"))
		printRecommended("oversold", rec.Oversold)
		printRecommended("overbought", rec.Overbought)
		printRecommended("vol normal", rec.Normal)
		printRecommended("vol fear", rec.Fear)
		printRecommended("vol high fear", rec.HighFear)
		printRecommended("vol extreme", rec.ExtremeFear)
	}
}

func printSideStats(title string, stats profile.Stats) {
	fmt.Println(TitleStyle.Render(title))
	printSummary("oscillator", stats.RSI)
	printSummary("volatility", stats.Volatility)
	printSummary("ma spread %", stats.MASpread)
	fmt.Println()
}

func printSummary(label string, stats optional.Option[profile.SummaryStats]) {
	s, err := stats.Take()
	if err != nil {
		fmt.Printf("  %-12s no samples\n", label)
		return
	}
	fmt.Printf("  %-12s n=%-3d median %.1f  p25 %.1f  p75 %.1f  range [%.1f, %.1f]\n",
		label, s.Count, s.Median, s.P25, s.P75, s.Min, s.Max)
}

func printRecommended(label string, value profile.RecommendedValue) {
	fmt.Printf("  %-14s %.1f  %s\n", label, value.Value, LabelStyle.Render(value.Basis))
}
