package handler

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/cplinktech/storefront/internal/core/service"
)

// CheckoutServiceName is the health-check service name of the session proxy.
const CheckoutServiceName = "storefront.Checkout"

// GRPCHandler exposes the standard gRPC health service. The checkout entry
// reports SERVING only when a payment provider is configured.
type GRPCHandler struct {
	health   *health.Server
	sessions *service.SessionService
}

func NewGRPCHandler(sessions *service.SessionService) *GRPCHandler {
	h := &GRPCHandler{health: health.NewServer(), sessions: sessions}
	h.Refresh()
	return h
}

func (h *GRPCHandler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// Refresh re-reads the payment configuration into the health status.
func (h *GRPCHandler) Refresh() {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if h.sessions.Configured() {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(CheckoutServiceName, status)
}

// Shutdown flips every service to NOT_SERVING ahead of a graceful stop.
func (h *GRPCHandler) Shutdown() {
	h.health.Shutdown()
}
