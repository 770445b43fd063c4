// Package models defines the records persisted by the server.
package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Account is a credential-bearing identity. Identifier is unique under
// byte-exact comparison and is stored exactly as it was provisioned.
type Account struct {
	ID           string
	Identifier   string
	PasswordHash string
	IsStaff      bool
	IsSuperuser  bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StorableIdentifier reports whether s can be stored and compared byte for
// byte by every supported store: valid UTF-8 without NUL.
func StorableIdentifier(s string) bool {
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}
