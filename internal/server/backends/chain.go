package backends

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/exactauth/internal/common"
	"github.com/dmitrijs2005/exactauth/internal/server/models"
)

// Chain tries verifiers in order. The first success wins, an AuthFailure
// moves on to the next verifier and any other error stops the chain.
type Chain struct {
	names     []string
	verifiers []CredentialVerifier
}

var _ CredentialVerifier = (*Chain)(nil)

func (c *Chain) Authenticate(ctx context.Context, identifier, secret string) (*models.Account, error) {
	for _, v := range c.verifiers {
		account, err := v.Authenticate(ctx, identifier, secret)
		if err == nil {
			return account, nil
		}
		if !errors.Is(err, common.ErrorUnauthorized) {
			return nil, err
		}
	}
	return nil, common.ErrorUnauthorized
}

// Names lists the configured backends in evaluation order.
func (c *Chain) Names() []string {
	return append([]string(nil), c.names...)
}
