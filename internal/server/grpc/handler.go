package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/exactauth/internal/common"
	pb "github.com/dmitrijs2005/exactauth/internal/proto"
	"github.com/dmitrijs2005/exactauth/internal/rpc"
	"github.com/dmitrijs2005/exactauth/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors onto gRPC statuses. Authentication failures
// share one message whatever the cause; store errors are hidden.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "identifier already exists")
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, "token expired")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, "refresh token expired")
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, "invalid credentials")
	case errors.Is(err, common.ErrorRateLimited):
		return status.Error(codes.ResourceExhausted, "too many requests")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// fail converts err for the caller and logs what is hidden behind
// "internal error".
func (s *GRPCServer) fail(ctx context.Context, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		s.logger.Error(ctx, "request failed", "error", err)
	}
	return st
}

// CreateAccount provisions a regular account. Privileged accounts are only
// created with accountctl.
func (s *GRPCServer) CreateAccount(ctx context.Context, req *pb.CreateAccountRequest) (*pb.CreateAccountResponse, error) {
	account, err := s.accounts.CreateAccount(ctx, req.Identifier, req.Secret, services.Flags{})
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.CreateAccountResponse{Account: rpc.AccountView(account)}, nil
}

func (s *GRPCServer) Authenticate(ctx context.Context, req *pb.AuthenticateRequest) (*pb.AuthenticateResponse, error) {
	account, tokens, err := s.auth.Login(ctx, req.Identifier, req.Secret)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.AuthenticateResponse{
		Account:      rpc.AccountView(account),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	tokens, err := s.auth.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) WhoAmI(ctx context.Context, _ *pb.WhoAmIRequest) (*pb.WhoAmIResponse, error) {
	sub, ok := SubjectFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}
	account, err := s.auth.AccountFromSubject(ctx, sub)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.WhoAmIResponse{Account: rpc.AccountView(account)}, nil
}
