package password

import (
	"fmt"
	"unicode/utf8"
)

// Argon2idParams controls Argon2id hashing cost. MemoryKiB is in KiB as
// required by argon2.IDKey.
type Argon2idParams struct {
	MemoryKiB   uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// Policy bounds the secrets accepted by Hash. Lengths count runes.
type Policy struct {
	MinLength int
	MaxLength int
}

// Config is the Argon2id hasher. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	Params Argon2idParams
	Policy Policy
}

// Hasher is what the account service and the credential verifier need.
type Hasher interface {
	Hash(secret string) (string, error)
	Verify(encoded, secret string) (bool, error)
	Decoy() string
}

var _ Hasher = Config{}

func DefaultConfig() Config {
	return Config{
		Params: Argon2idParams{
			MemoryKiB:   64 * 1024,
			Iterations:  3,
			Parallelism: 2,
			SaltLength:  16,
			KeyLength:   32,
		},
		Policy: Policy{
			MinLength: 0,
			MaxLength: 4096,
		},
	}
}

// Check rejects parameter sets argon2 cannot run or that would make every
// login pathological.
func (c Config) Check() error {
	p := c.Params
	switch {
	case p.MemoryKiB < 8 || p.MemoryKiB > 1024*1024:
		return fmt.Errorf("%w: memory %d KiB out of range [8..1048576]", ErrInvalidConfig, p.MemoryKiB)
	case p.Iterations < 1 || p.Iterations > 20:
		return fmt.Errorf("%w: iterations %d out of range [1..20]", ErrInvalidConfig, p.Iterations)
	case p.Parallelism < 1:
		return fmt.Errorf("%w: parallelism must be positive", ErrInvalidConfig)
	case p.SaltLength < 8 || p.SaltLength > 64:
		return fmt.Errorf("%w: salt length %d out of range [8..64]", ErrInvalidConfig, p.SaltLength)
	case p.KeyLength < 16 || p.KeyLength > 64:
		return fmt.Errorf("%w: key length %d out of range [16..64]", ErrInvalidConfig, p.KeyLength)
	case c.Policy.MinLength < 0 || c.Policy.MaxLength < 1 || c.Policy.MinLength > c.Policy.MaxLength:
		return fmt.Errorf("%w: policy min_len(%d) max_len(%d)", ErrInvalidConfig, c.Policy.MinLength, c.Policy.MaxLength)
	}
	return nil
}

// Validate applies the policy. The secret is not modified.
func (c Config) Validate(secret string) error {
	n := utf8.RuneCountInString(secret)
	if n > c.Policy.MaxLength {
		return ErrPasswordTooLong
	}
	if n < c.Policy.MinLength {
		return ErrPasswordTooShort
	}
	return nil
}
