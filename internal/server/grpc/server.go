// Package grpc serves exactauth.v1.AuthService and the standard health
// service over gRPC.
package grpc

import (
	"context"
	"fmt"
	"net"

	"github.com/dmitrijs2005/exactauth/internal/logging"
	pb "github.com/dmitrijs2005/exactauth/internal/proto"
	"github.com/dmitrijs2005/exactauth/internal/server/auth"
	"github.com/dmitrijs2005/exactauth/internal/server/metrics"
	"github.com/dmitrijs2005/exactauth/internal/server/models"
	"github.com/dmitrijs2005/exactauth/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// AccountCreator is the part of services.AccountService the transport uses.
type AccountCreator interface {
	CreateAccount(ctx context.Context, identifier, secret string, extra services.Flags) (*models.Account, error)
}

// Authenticator is the part of services.AuthService the transport uses.
type Authenticator interface {
	Login(ctx context.Context, identifier, secret string) (*models.Account, *services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	AccountFromSubject(ctx context.Context, sub auth.Subject) (*models.Account, error)
	ParseAccessToken(token string) (auth.Subject, error)
}

// Options holds the optional TLS key pair. Both empty means plaintext.
type Options struct {
	TLSCertFile string
	TLSKeyFile  string
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address  string
	accounts AccountCreator
	auth     Authenticator
	metrics  *metrics.Metrics
	logger   logging.Logger
	opts     Options
}

var _ pb.AuthServiceServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, as AccountCreator, au Authenticator, mt *metrics.Metrics, opts Options) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		accounts: as,
		auth:     au,
		metrics:  mt,
		opts:     opts,
	}
}

func (s *GRPCServer) newServer() (*grpc.Server, error) {
	serverOpts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
	}
	if s.opts.TLSCertFile != "" || s.opts.TLSKeyFile != "" {
		creds, err := credentials.NewServerTLSFromFile(s.opts.TLSCertFile, s.opts.TLSKeyFile)
		if err != nil {
			return nil, fmt.Errorf("load tls key pair: %w", err)
		}
		serverOpts = append(serverOpts, grpc.Creds(creds))
	}

	srv := grpc.NewServer(serverOpts...)
	pb.RegisterAuthServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.AuthService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv, nil
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv, err := s.newServer()
	if err != nil {
		_ = lis.Close()
		return err
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}
