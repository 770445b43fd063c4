// Package rpc converts between the server models and the exactauth.v1
// protobuf messages shared by the gRPC and HTTP transports.
package rpc

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/dmitrijs2005/exactauth/internal/proto"
	"github.com/dmitrijs2005/exactauth/internal/server/models"
)

// JSON options for the HTTP surface. Field names stay snake_case so the
// bodies match the .proto field names.
var (
	MarshalJSON = protojson.MarshalOptions{
		UseProtoNames:   true,
		EmitUnpopulated: true,
	}
	UnmarshalJSON = protojson.UnmarshalOptions{}
)

// AccountView projects an account onto its public message. The password
// hash never leaves the server.
func AccountView(a *models.Account) *pb.AccountView {
	if a == nil {
		return nil
	}
	return &pb.AccountView{
		Id:          a.ID,
		Identifier:  a.Identifier,
		IsStaff:     a.IsStaff,
		IsSuperuser: a.IsSuperuser,
		IsActive:    a.IsActive,
		CreatedAt:   timestamppb.New(a.CreatedAt),
	}
}
