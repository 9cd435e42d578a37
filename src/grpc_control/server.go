package grpc_control

import (
	"fmt"
	"net"

	"market-viewer/src/logger"

	"google.golang.org/grpc"
)

// -----------------------------------------------------------------------------

// Server owns the gRPC listener for the control service.
type Server struct {
	Addr   string
	Logger *logger.Logger
	grpc   *grpc.Server
}

func NewServer(host string, port int, service ControlServer, log *logger.Logger, opts ...grpc.ServerOption) *Server {
	gs := grpc.NewServer(append(opts, grpc.ChainUnaryInterceptor(logCalls(log)))...)
	RegisterControlServer(gs, service)
	return &Server{
		Addr:   net.JoinHostPort(host, fmt.Sprint(port)),
		Logger: log,
		grpc:   gs,
	}
}

// -----------------------------------------------------------------------------

// Start listens on Addr and serves until Stop.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen for gRPC on %s: %w", s.Addr, err)
	}
	return s.Serve(lis)
}

// Serve serves on an existing listener.
func (s *Server) Serve(lis net.Listener) error {
	s.Logger.Info("Starting gRPC Control Server on %s", lis.Addr())
	if err := s.grpc.Serve(lis); err != nil && err != grpc.ErrServerStopped {
		return fmt.Errorf("failed to serve gRPC: %w", err)
	}
	return nil
}

// Stop drains in-flight calls and closes the listener.
func (s *Server) Stop() {
	s.grpc.GracefulStop()
}
