package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/pumpwatch/internal/contracts"
)

// rankCmd runs the post-close ranking once and prints the insights
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "세션 랭킹 1회 실행",
	Long: `최신 유니버스의 세션 바를 랭킹하고 Down 인사이트를 출력합니다.

--date로 과거 세션을 다시 랭킹할 수 있습니다 (기본: 오늘).
--dry-run이면 DB에 저장하지 않습니다.

Example:
  go run ./cmd/pumpwatch rank
  go run ./cmd/pumpwatch rank --date 2026-08-21 --dry-run`,
	RunE: runRank,
}

var (
	rankDate   string
	rankDryRun bool
)

func init() {
	rootCmd.AddCommand(rankCmd)
	rankCmd.Flags().StringVar(&rankDate, "date", "", "session date YYYY-MM-DD (default: today)")
	rankCmd.Flags().BoolVar(&rankDryRun, "dry-run", false, "rank without persisting")
}

func runRank(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	date := time.Now()
	if rankDate != "" {
		date, err = time.Parse("2006-01-02", rankDate)
		if err != nil {
			return fmt.Errorf("invalid --date, expected YYYY-MM-DD: %w", err)
		}
	}

	ctx := context.Background()

	universe, err := rt.universeRepo.GetLatestUniverse(ctx)
	if err != nil {
		return fmt.Errorf("get latest universe: %w", err)
	}
	if universe.Count() == 0 {
		return fmt.Errorf("universe is empty, run 'universe refresh' first")
	}

	snapshot, err := rt.sessionRepo.GetSessionBars(ctx, universe.Symbols, date)
	if err != nil {
		return fmt.Errorf("get session bars: %w", err)
	}

	insights := rt.model.Rank(snapshot.Bars)
	batch := &contracts.InsightBatch{Date: snapshot.Date, Insights: insights}

	if !rankDryRun {
		if err := rt.insightRepo.SaveInsights(ctx, batch); err != nil {
			return fmt.Errorf("save insights: %w", err)
		}
	}

	fmt.Printf("Session %s: %d insights (interval %s)\n",
		snapshot.Date.Format("2006-01-02"), batch.Count(), rt.model.PredictionInterval())
	for i, in := range batch.Insights {
		fmt.Printf("  %2d. %-6s %s magnitude=%+.4f%%\n",
			i+1, in.Symbol, in.Direction, in.Magnitude*100)
	}
	return nil
}
