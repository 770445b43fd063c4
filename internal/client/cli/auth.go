package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dmitrijs2005/exactauth/internal/client/client"
	"github.com/dmitrijs2005/exactauth/internal/common"
	pb "github.com/dmitrijs2005/exactauth/internal/proto"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) readCredentials() (string, []byte, error) {
	identifier, err := getSimpleText(a.reader, "Enter identifier", a.out)
	if err != nil {
		return "", nil, err
	}

	secret, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return identifier, secret, nil
}

// Register prompts for an identifier and a secret and creates a regular
// account. It does not log in.
func (a *App) Register(ctx context.Context) error {
	identifier, secret, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(secret)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	acc, err := a.client.Register(ctx, identifier, string(secret))
	if err != nil {
		if errors.Is(err, client.ErrAlreadyExists) {
			fmt.Fprintf(a.out, "Identifier %q is already taken\n", identifier)
		} else {
			log.Printf("Registration failed: %s", err.Error())
		}
		return err
	}

	fmt.Fprintf(a.out, "Account %q created\n", acc.GetIdentifier())
	return nil
}

// Login authenticates with the server. On failure the previous session, if
// any, is left untouched.
func (a *App) Login(ctx context.Context) error {
	identifier, secret, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(secret)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	acc, err := a.client.Login(ctx, identifier, string(secret))
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Login failed: invalid credentials")
		} else {
			log.Printf("Login failed: %s", err.Error())
		}
		return err
	}

	a.identifier = acc.GetIdentifier()
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	acc, err := a.client.WhoAmI(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Session expired, please log in again")
			a.client.Logout()
			a.identifier = ""
		} else {
			log.Printf("whoami failed: %s", err.Error())
		}
		return err
	}

	printAccount(a, acc)
	return nil
}

func printAccount(a *App, acc *pb.AccountView) {
	fmt.Fprintf(a.out, "identifier: %q\n", acc.GetIdentifier())
	fmt.Fprintf(a.out, "id:         %s\n", acc.GetId())
	fmt.Fprintf(a.out, "staff:      %t\n", acc.GetIsStaff())
	fmt.Fprintf(a.out, "superuser:  %t\n", acc.GetIsSuperuser())
	fmt.Fprintf(a.out, "active:     %t\n", acc.GetIsActive())
}

// Logout drops the in-memory session.
func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.identifier = ""
	return nil
}
