package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/pumpwatch/internal/scheduler"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "스케줄러 관리",
	Long: `스케줄러를 시작하거나 작업을 관리합니다.

등록되는 작업:
- universe_refresh: 거래일 아침 (월 변경 시 유니버스 재선정)
- insights_generation: 장 마감 후 (장중 수익률 랭킹 → Down 인사이트)

Subcommands:
  start   - 스케줄러 시작
  list    - 등록된 작업 목록
  run     - 특정 작업 즉시 실행

Example:
  go run ./cmd/pumpwatch scheduler start
  go run ./cmd/pumpwatch scheduler run insights_generation`,
}

var (
	schedulerStartCmd = &cobra.Command{
		Use:   "start",
		Short: "스케줄러 시작",
		Long: `스케줄러를 시작하고 파이프라인 작업을 스케줄합니다.

크론 표현식은 전략 설정의 timezone 기준으로 평가됩니다.
스케줄러는 Ctrl+C로 종료할 수 있습니다.`,
		RunE: runScheduler,
	}

	schedulerListCmd = &cobra.Command{
		Use:   "list",
		Short: "등록된 작업 목록",
		RunE:  listJobs,
	}

	schedulerRunCmd = &cobra.Command{
		Use:   "run [job_name]",
		Short: "특정 작업 즉시 실행",
		Args:  cobra.ExactArgs(1),
		RunE:  runJobOnce,
	}
)

func init() {
	rootCmd.AddCommand(schedulerCmd)
	schedulerCmd.AddCommand(schedulerStartCmd)
	schedulerCmd.AddCommand(schedulerListCmd)
	schedulerCmd.AddCommand(schedulerRunCmd)
}

func runScheduler(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Pumpwatch Scheduler ===")

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	sched, err := rt.newScheduler(nil)
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	sched.Start()

	fmt.Println("\nScheduler started. Registered jobs:")
	for _, jobName := range sched.JobNames() {
		fmt.Printf("  - %s\n", jobName)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	sched.Stop()
	return nil
}

func listJobs(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	sched, err := rt.newScheduler(nil)
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	fmt.Println("Registered jobs:")
	for name, stat := range sched.Stats() {
		fmt.Printf("  %-24s schedule=%q\n", name, stat.Schedule)
	}
	return nil
}

func runJobOnce(cmd *cobra.Command, args []string) error {
	jobName := args[0]

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	sched, err := rt.newScheduler(nil)
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	fmt.Printf("Running job %s...\n", jobName)
	if err := sched.RunJob(jobName); err != nil {
		return err
	}

	// RunJob is async; poll until the run lands in the history
	return waitForJob(sched, jobName)
}

// waitForJob blocks until the job's first result is recorded
func waitForJob(sched *scheduler.Scheduler, jobName string) error {
	deadline := time.Now().Add(15 * time.Minute)
	for time.Now().Before(deadline) {
		stats := sched.Stats()
		if stat, ok := stats[jobName]; ok && stat.TotalRuns > 0 {
			if stat.FailureCount > 0 {
				return fmt.Errorf("job %s failed", jobName)
			}
			fmt.Printf("Job %s completed\n", jobName)
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("job %s did not finish in time", jobName)
}
