package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	gameorch "github.com/KirkDiggler/intrigue-api/internal/orchestrators/game"
	"github.com/KirkDiggler/intrigue-api/internal/pkg/clock"
	"github.com/KirkDiggler/intrigue-api/internal/pkg/idgen"
	"github.com/KirkDiggler/intrigue-api/internal/redis"
	gamerepo "github.com/KirkDiggler/intrigue-api/internal/repositories/game"
	userrepo "github.com/KirkDiggler/intrigue-api/internal/repositories/user"
)

type serverConfig struct {
	GRPCPort  int    `env:"GRPC_PORT" envDefault:"50051"`
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
}

var (
	grpcPort  int
	redisAddr string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the Intrigue API gRPC server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides GRPC_PORT)")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "redis address (overrides REDIS_ADDR)")
}

func loadConfig(cmd *cobra.Command) (*serverConfig, error) {
	cfg := &serverConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("redis-addr") {
		cfg.RedisAddr = redisAddr
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	redisClient, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	gameRepo, err := gamerepo.NewRedis(&gamerepo.Config{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create game repository: %w", err)
	}
	userRepo, err := userrepo.NewRedis(&userrepo.Config{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create user repository: %w", err)
	}

	gameService, err := gameorch.NewOrchestrator(&gameorch.Config{
		GameRepo:        gameRepo,
		UserRepo:        userRepo,
		IDGenerator:     idgen.NewUUID("game"),
		CardIDGenerator: idgen.NewUUID("card"),
		Clock:           clock.New(),
		DiceRoller:      dice.DefaultRoller,
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}
	// TODO: register the gRPC handler here once the game proto surface lands
	_ = gameService

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func logFunc(_ context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Info(msg, append([]any{"level", level}, fields...)...)
}
