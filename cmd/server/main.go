package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/rl1809/warehouse-ledger/internal/adapter/handler"
	"github.com/rl1809/warehouse-ledger/internal/adapter/handler/pb"
	"github.com/rl1809/warehouse-ledger/internal/adapter/resilience"
	"github.com/rl1809/warehouse-ledger/internal/adapter/storage"
	"github.com/rl1809/warehouse-ledger/internal/config"
	"github.com/rl1809/warehouse-ledger/internal/core/service"
	"github.com/rl1809/warehouse-ledger/internal/platform/logger"
	"github.com/rl1809/warehouse-ledger/internal/platform/observability"
	"github.com/rl1809/warehouse-ledger/internal/port"
)

const (
	shutdownTimeout    = 5 * time.Second
	breakerOpenTimeout = 30 * time.Second
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.App.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer lg.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := observability.SetupTracingSDK(ctx, cfg)
	if err != nil {
		lg.Fatal("failed to set up tracing", zap.Error(err))
	}

	repo, closeRepo := openStore(ctx, cfg, lg)
	activity, idem, closeCache := openAuditSink(ctx, cfg, lg)

	ledger := service.NewLedgerService(
		repo,
		resilience.NewBreakingActivityLog(activity, lg, breakerOpenTimeout),
		idem,
		lg,
		service.WithTxAttempts(cfg.Ledger.TxAttempts),
	)

	if cfg.Seed.Enabled {
		if _, err := ledger.SeedIfEmpty(ctx); err != nil {
			lg.Fatal("failed to seed demo data", zap.Error(err))
		}
	}

	// gRPC server
	grpcServer := grpc.NewServer()
	pb.RegisterLedgerServiceServer(grpcServer, handler.NewGRPCHandler(ledger, lg, cfg.Dashboard.Threshold))

	lis, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		lg.Fatal("failed to listen", zap.String("addr", cfg.GRPC.Addr), zap.Error(err))
	}

	go func() {
		lg.Info("gRPC server listening", zap.String("addr", cfg.GRPC.Addr))
		if err := grpcServer.Serve(lis); err != nil {
			lg.Error("gRPC server error", zap.Error(err))
		}
	}()

	// HTTP server
	router := handler.NewRouter(
		handler.NewHTTPHandler(ledger, lg, cfg.Dashboard.Threshold),
		handler.RouterConfig{CORSOrigin: cfg.HTTP.CORSOrigin, MetricsEnabled: cfg.Metrics.Enabled},
	)
	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		lg.Info("HTTP server listening", zap.String("addr", cfg.HTTP.Addr))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			lg.Error("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	lg.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		lg.Warn("HTTP shutdown", zap.Error(err))
	}
	lg.Info("HTTP server stopped")

	grpcServer.GracefulStop()
	lg.Info("gRPC server stopped")

	closeCache()
	closeRepo()
	if err := shutdownTracing(shutdownCtx); err != nil {
		lg.Warn("tracing shutdown", zap.Error(err))
	}
	lg.Info("connections closed")
}

// openStore returns the ledger repository selected by store.driver.
func openStore(ctx context.Context, cfg config.Config, lg *zap.Logger) (port.LedgerRepository, func()) {
	if cfg.Store.Driver == "memory" {
		lg.Info("using in-memory store")
		return storage.NewMemoryAdapter(), func() {}
	}
	if cfg.Store.Driver != "mysql" {
		lg.Fatal("unknown store driver", zap.String("driver", cfg.Store.Driver))
	}

	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		lg.Fatal("failed to connect mysql", zap.Error(err))
	}
	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		lg.Fatal("failed to ping mysql", zap.Error(err))
	}
	lg.Info("connected to mysql")

	if cfg.MySQL.Migrate {
		if err := storage.Migrate(db); err != nil {
			lg.Fatal("failed to migrate mysql", zap.Error(err))
		}
	}
	return storage.NewMySQLAdapter(db), func() { db.Close() }
}

// openAuditSink uses Redis when an address is configured and falls back to
// process memory otherwise.
func openAuditSink(ctx context.Context, cfg config.Config, lg *zap.Logger) (port.ActivityLog, port.IdempotencyStore, func()) {
	if cfg.Redis.Addr == "" {
		lg.Info("using in-memory activity log")
		return storage.NewMemoryActivityLog(cfg.Audit.Capacity), storage.NewMemoryIdempotency(), func() {}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		lg.Fatal("failed to connect redis", zap.Error(err))
	}
	lg.Info("connected to redis", zap.String("addr", cfg.Redis.Addr))

	adapter := storage.NewRedisAdapter(rdb, cfg.Audit.Capacity)
	return adapter, adapter, func() { rdb.Close() }
}
