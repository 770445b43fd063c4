// Package client talks to the exactauth gRPC service.
//
// GRPCClient keeps the token pair of the current session in memory, attaches
// the access token to every call and, when the server answers
// "token expired", refreshes the pair once and retries the call.
//
// Status codes are mapped to the sentinel errors in errors.go; match them
// with errors.Is.
package client
