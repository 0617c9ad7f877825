package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-advisor/internal/advisor"
	"github.com/rxtech-lab/argo-advisor/internal/config"
	"github.com/rxtech-lab/argo-advisor/internal/logger"
	"github.com/rxtech-lab/argo-advisor/internal/types"
	"github.com/rxtech-lab/argo-advisor/pkg/marketdata"
)

func signalCommand() *cli.Command {
	return &cli.Command{
		Name:  "signal",
		Usage: "Generate a trading signal from price and volatility CSV files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "prices",
				Aliases:  []string{"p"},
				Usage:    "Path to the price history CSV",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "volatility",
				Aliases:  []string{"x"},
				Usage:    "Path to the volatility index CSV",
				Required: true,
			},
		},
		Action: signalAction,
	}
}

func signalAction(ctx context.Context, cmd *cli.Command) error {
	log, err := newRunLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	prices, err := marketdata.LoadCSV(cmd.String("prices"))
	if err != nil {
		return err
	}
	volatility, err := marketdata.LoadCSV(cmd.String("volatility"))
	if err != nil {
		return err
	}

	log.Info("generating signal",
		zap.Int("price_rows", len(prices)),
		zap.Int("volatility_rows", len(volatility)))

	result, err := advisor.NewEngine(cfg).GenerateSignal(prices, volatility)
	if err != nil {
		return err
	}

	log.Info("signal generated",
		zap.String("signal", string(result.Signal)),
		zap.Float64("total_score", result.TotalScore),
		zap.Float64("confidence", result.Confidence))

	printSignalReport(result)

	return nil
}

func printSignalReport(result types.SignalResult) {
	fmt.Println(TitleStyle.Render(fmt.Sprintf("Signal report for %s", result.Date.Format("2006-01-02"))))
	fmt.Println()

	fmt.Printf("%s %s (total %.2f, confidence %.0f%%)\n",
		LabelStyle.Render("signal:"), FormatSignal(result.Signal), result.TotalScore, result.Confidence)
	fmt.Printf("%s %.2f (%+.2f%%)\n", LabelStyle.Render("close:"), result.Price, result.PriceChange)
	fmt.Printf("%s %s from peak %.2f (%s)\n",
		LabelStyle.Render("drawdown:"), FormatDrawdown(result.Drawdown), result.ReferencePeak, result.Status)
	fmt.Println()

	fmt.Println(TitleStyle.Render("Indicators"))
	for _, score := range []types.IndicatorScore{result.RSIScore, result.MAScore, result.VolatilityScore} {
		fmt.Printf("  %-12s %+d  %s\n", score.Indicator, score.Score, score.Description)
	}
	fmt.Println()

	fmt.Println(TitleStyle.Render("Advice"))
	fmt.Printf("  %-12s %s  %s\n", result.NoPositionAdvice.Stance,
		FormatSignal(result.NoPositionAdvice.Action), result.NoPositionAdvice.Reason)
	fmt.Printf("  %-12s %s  %s\n", result.HoldingAdvice.Stance,
		FormatSignal(result.HoldingAdvice.Action), result.HoldingAdvice.Reason)
}

// newRunLogger builds the logger for one invocation with a run id field.
func newRunLogger(cmd *cli.Command) (*logger.Logger, error) {
	var log *logger.Logger
	var err error
	if cmd.Bool("verbose") {
		log, err = logger.NewDebugLogger()
	} else {
		log, err = logger.NewLogger()
	}
	if err != nil {
		return nil, err
	}

	log.Logger = log.Logger.With(zap.String("run_id", uuid.NewString()))

	return log, nil
}

func loadConfig(cmd *cli.Command) (config.Config, error) {
	path := cmd.String("config")
	if path == "" {
		return config.Default(), nil
	}

	return config.ParseFile(path)
}
