package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/dmitrijs2005/exactauth/internal/common"
	pb "github.com/dmitrijs2005/exactauth/internal/proto"
	"github.com/dmitrijs2005/exactauth/internal/rpc"
	"github.com/dmitrijs2005/exactauth/internal/server/services"
	"google.golang.org/protobuf/proto"
)

const maxBodyBytes = 64 << 10

var errInvalidEncoding = errors.New("body is not valid UTF-8")

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage renders a protobuf message with snake_case field names.
func writeMessage(w http.ResponseWriter, status int, m proto.Message) {
	b, err := rpc.MarshalJSON.Marshal(m)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

// statusFor maps service errors onto HTTP statuses and client-safe
// messages. Both authentication failure causes produce the same body.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict, "identifier already exists"
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized, "token expired"
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return http.StatusUnauthorized, "refresh token expired"
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, common.ErrorRateLimited):
		return http.StatusTooManyRequests, "too many requests"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := statusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "error", err)
	}
	writeJSON(w, code, errorResponse{Error: msg})
}

// decode reads the body into m. Bodies that are not valid UTF-8 are
// rejected before parsing so no byte is ever replaced with U+FFFD.
func decode(w http.ResponseWriter, r *http.Request, m proto.Message) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err == nil && !utf8.Valid(body) {
		err = errInvalidEncoding
	}
	if err == nil {
		err = rpc.UnmarshalJSON.Unmarshal(body, m)
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func (s *Server) createAccount(w http.ResponseWriter, r *http.Request) {
	var req pb.CreateAccountRequest
	if !decode(w, r, &req) {
		return
	}
	account, err := s.accounts.CreateAccount(r.Context(), req.Identifier, req.Secret, services.Flags{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, &pb.CreateAccountResponse{Account: rpc.AccountView(account)})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req pb.AuthenticateRequest
	if !decode(w, r, &req) {
		return
	}
	account, tokens, err := s.auth.Login(r.Context(), req.Identifier, req.Secret)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, &pb.AuthenticateResponse{
		Account:      rpc.AccountView(account),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	var req pb.RefreshTokenRequest
	if !decode(w, r, &req) {
		return
	}
	tokens, err := s.auth.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken})
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	sub, _ := subjectFromContext(r.Context())
	account, err := s.auth.AccountFromSubject(r.Context(), sub)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, &pb.WhoAmIResponse{Account: rpc.AccountView(account)})
}
