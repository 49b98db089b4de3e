package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/pumpwatch/internal/scheduler"
	"github.com/wonny/pumpwatch/pkg/config"
)

// statusCmd queries the running service for job statistics
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "실행 중인 서비스의 작업 상태 조회",
	Long: `실행 중인 서비스의 /api/status/jobs를 조회해 작업 상태를 출력합니다.

Example:
  go run ./cmd/pumpwatch status
  go run ./cmd/pumpwatch status --addr localhost:8091`,
	RunE: showStatus,
}

var statusAddr string

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().StringVar(&statusAddr, "addr", "", "service address (default localhost:PORT)")
}

func showStatus(cmd *cobra.Command, args []string) error {
	addr := statusAddr
	if addr == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		addr = "localhost:" + cfg.Port
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://%s/api/status/jobs", addr))
	if err != nil {
		return fmt.Errorf("service not reachable at %s: %w", addr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status request failed: %s", resp.Status)
	}

	var stats map[string]scheduler.JobStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return fmt.Errorf("decode status: %w", err)
	}

	if len(stats) == 0 {
		fmt.Println("No jobs registered")
		return nil
	}

	for name, stat := range stats {
		fmt.Printf("%s\n", name)
		fmt.Printf("  schedule:     %s\n", stat.Schedule)
		fmt.Printf("  runs:         %d (ok %d / fail %d)\n", stat.TotalRuns, stat.SuccessCount, stat.FailureCount)
		fmt.Printf("  success rate: %.0f%%\n", stat.SuccessRate*100)
		if stat.LastRun != nil {
			fmt.Printf("  last run:     %s\n", stat.LastRun.Format(time.RFC3339))
		}
	}
	return nil
}
