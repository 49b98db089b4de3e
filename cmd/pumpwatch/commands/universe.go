package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// universeCmd represents the universe command
var universeCmd = &cobra.Command{
	Use:   "universe",
	Short: "유니버스 관리",
	Long: `추적 유니버스를 수동으로 갱신하거나 조회합니다.

Subcommands:
  refresh - 코스 스냅샷으로 유니버스 갱신
  show    - 최신 유니버스 조회

Example:
  go run ./cmd/pumpwatch universe refresh
  go run ./cmd/pumpwatch universe show`,
}

var (
	universeRefreshCmd = &cobra.Command{
		Use:   "refresh",
		Short: "유니버스 갱신",
		RunE:  refreshUniverse,
	}

	universeShowCmd = &cobra.Command{
		Use:   "show",
		Short: "최신 유니버스 조회",
		RunE:  showUniverse,
	}
)

func init() {
	rootCmd.AddCommand(universeCmd)
	universeCmd.AddCommand(universeRefreshCmd)
	universeCmd.AddCommand(universeShowCmd)
}

func refreshUniverse(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	ctx := context.Background()
	today := time.Now()

	snapshot, err := rt.coarseRepo.GetCoarseSnapshot(ctx, today)
	if err != nil {
		return fmt.Errorf("get coarse snapshot: %w", err)
	}

	symbols := rt.selector.Select(int(today.Month()), snapshot.Stocks)
	universe := rt.selector.Snapshot(today)

	if err := rt.universeRepo.SaveUniverse(ctx, universe); err != nil {
		return fmt.Errorf("save universe: %w", err)
	}

	fmt.Printf("Universe refreshed: month=%d tracked=%d excluded=%d candidates=%d\n",
		universe.Month, len(symbols), len(universe.Excluded), snapshot.Count())
	return nil
}

func showUniverse(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	universe, err := rt.universeRepo.GetLatestUniverse(context.Background())
	if err != nil {
		return fmt.Errorf("get latest universe: %w", err)
	}

	fmt.Printf("Universe: date=%s month=%d tracked=%d excluded=%d\n",
		universe.Date.Format("2006-01-02"), universe.Month, universe.Count(), len(universe.Excluded))

	limit := 20
	if len(universe.Symbols) < limit {
		limit = len(universe.Symbols)
	}
	for i := 0; i < limit; i++ {
		fmt.Printf("  %3d. %s\n", i+1, universe.Symbols[i])
	}
	if universe.Count() > limit {
		fmt.Printf("  ... and %d more\n", universe.Count()-limit)
	}
	return nil
}
