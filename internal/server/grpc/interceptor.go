package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/exactauth/internal/common"
	pb "github.com/dmitrijs2005/exactauth/internal/proto"
	"github.com/dmitrijs2005/exactauth/internal/server/auth"
	"github.com/oklog/ulid/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const subjectKey ctxKey = "subject"

// RequestIDHeader is sent back in the response header metadata.
const RequestIDHeader = "x-request-id"

// tokenMethods require an access token.
var tokenMethods = map[string]bool{
	pb.AuthService_WhoAmI_FullMethodName: true,
}

// SubjectFromContext returns the token subject set by the access token
// interceptor.
func SubjectFromContext(ctx context.Context) (auth.Subject, bool) {
	sub, ok := ctx.Value(subjectKey).(auth.Subject)
	return sub, ok
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	requestID := ulid.Make().String()
	_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))

	resp, err := handler(ctx, req)

	code := status.Code(err)
	s.metrics.ObserveRequest("grpc", info.FullMethod, code.String())
	s.logger.Info(ctx, "grpc request",
		"request_id", requestID,
		"method", info.FullMethod,
		"code", code.String(),
		"duration", time.Since(start),
	)
	return resp, err
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !tokenMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	sub, err := s.auth.ParseAccessToken(accessToken)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return handler(context.WithValue(ctx, subjectKey, sub), req)
}
