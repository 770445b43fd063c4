package config

import "github.com/dmitrijs2005/exactauth/internal/security/password"

// PasswordConfig derives the hasher settings. Zero fields keep the
// password package defaults.
func (c *Config) PasswordConfig() password.Config {
	p := password.DefaultConfig()
	if c.Argon2MemoryKiB != 0 {
		p.Params.MemoryKiB = c.Argon2MemoryKiB
	}
	if c.Argon2Iterations != 0 {
		p.Params.Iterations = c.Argon2Iterations
	}
	if c.Argon2Parallelism != 0 {
		p.Params.Parallelism = c.Argon2Parallelism
	}
	if c.PasswordMaxLength != 0 {
		p.Policy.MaxLength = c.PasswordMaxLength
	}
	return p
}
