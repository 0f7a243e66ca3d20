package grpcx

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName — имя сервиса в grpc.health.v1; пустое имя означает сервер целиком.
const ServiceName = "rooms.v1.RoomListing"

type Pinger interface {
	Ping(ctx context.Context) error
}

// Health держит статус grpc.health.v1 в соответствии с доступностью базы.
type Health struct {
	srv      *health.Server
	db       Pinger
	interval time.Duration
}

func NewHealth(db Pinger, interval time.Duration) *Health {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Health{
		srv:      health.NewServer(),
		db:       db,
		interval: interval,
	}
}

func NewServer(defaultTimeout time.Duration) *grpc.Server {
	return grpc.NewServer(
		grpc.ChainUnaryInterceptor(UnaryServerInterceptor(defaultTimeout)),
		grpc.ChainStreamInterceptor(StreamServerInterceptor()),
	)
}

func (h *Health) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.srv)
}

// Check пингует базу один раз и выставляет статус.
func (h *Health) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	st := healthpb.HealthCheckResponse_SERVING
	if err := h.db.Ping(ctx); err != nil {
		slog.Warn("grpc health: db ping failed", slog.Any("err", err))
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.srv.SetServingStatus("", st)
	h.srv.SetServingStatus(ServiceName, st)
	return st
}

// Run проверяет базу каждые interval до отмены ctx.
func (h *Health) Run(ctx context.Context) {
	h.Check(ctx)

	t := time.NewTicker(h.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			h.Check(ctx)
		}
	}
}

// Shutdown переводит все статусы в NOT_SERVING перед остановкой.
func (h *Health) Shutdown() {
	h.srv.Shutdown()
}
