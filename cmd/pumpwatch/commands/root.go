package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	strategyFile string
	verbose      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pumpwatch",
	Short: "Pumpwatch - 미국 페니스톡 펌프앤덤프 반전 시그널 서비스",
	Long: `Pumpwatch Unified CLI

미국 페니스톡 시장에서 당일 급등 종목을 추적하고
다음 세션 하락 예측 인사이트를 생성하는 서비스.

파이프라인: 코스 스냅샷 → 월간 유니버스 선정 → 장중 수익률 랭킹 → Down 인사이트

Usage:
  go run ./cmd/pumpwatch [command]

Examples:
  go run ./cmd/pumpwatch api
  go run ./cmd/pumpwatch scheduler start
  go run ./cmd/pumpwatch universe refresh
  go run ./cmd/pumpwatch rank`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&strategyFile, "strategy", "", "strategy YAML file (default from STRATEGY_FILE env)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
