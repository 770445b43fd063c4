package client

import (
	"context"

	pb "github.com/dmitrijs2005/exactauth/internal/proto"
)

type Client interface {
	Close() error
	Register(ctx context.Context, identifier, secret string) (*pb.AccountView, error)
	Login(ctx context.Context, identifier, secret string) (*pb.AccountView, error)
	WhoAmI(ctx context.Context) (*pb.AccountView, error)
	Logout()
	LoggedIn() bool
}
