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

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다 (스케줄러 없이 조회 전용).

Endpoints:
  GET /health                - Health check
  GET /api/insights/latest   - 최신 인사이트 배치
  GET /api/insights/{date}   - 특정 세션 인사이트 (YYYY-MM-DD)
  GET /api/universe/latest   - 최신 유니버스 스냅샷
  GET /api/status/jobs       - 스케줄러 작업 상태
  GET /ws/insights           - 인사이트 스트림 (websocket)

Example:
  go run ./cmd/pumpwatch api
  go run ./cmd/pumpwatch api --port 8080`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (default from PORT env)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Pumpwatch API Server ===")

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	if apiPort != "" {
		rt.cfg.Port = apiPort
	}

	stream := handlers.NewStreamHandler(rt.log)
	router := api.NewRouter(
		handlers.NewInsightHandler(rt.insightRepo, rt.cache, rt.log),
		handlers.NewUniverseHandler(rt.universeRepo, rt.cache, rt.log),
		handlers.NewStatusHandler(nil, rt.log),
		stream,
		rt.log,
	)

	server := api.New(rt.cfg, rt.log, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
