package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/pumpwatch/internal/api"
	"github.com/wonny/pumpwatch/internal/api/handlers"
)

// startCmd runs the full service: scheduler + API + insight stream
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "전체 서비스 시작 (스케줄러 + API)",
	Long: `스케줄러와 API 서버를 함께 시작합니다.

인사이트 작업이 완료되면 /ws/insights 구독자에게
배치가 바로 브로드캐스트됩니다.

Example:
  go run ./cmd/pumpwatch start`,
	RunE: runService,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runService(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Pumpwatch Service ===")

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	stream := handlers.NewStreamHandler(rt.log)

	sched, err := rt.newScheduler(stream)
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	router := api.NewRouter(
		handlers.NewInsightHandler(rt.insightRepo, rt.cache, rt.log),
		handlers.NewUniverseHandler(rt.universeRepo, rt.cache, rt.log),
		handlers.NewStatusHandler(sched, rt.log),
		stream,
		rt.log,
	)
	server := api.New(rt.cfg, rt.log, router)

	sched.Start()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	fmt.Println("\nService started. Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		sched.Stop()
		return err
	case <-quit:
	}

	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
