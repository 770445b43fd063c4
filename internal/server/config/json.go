package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/exactauth/internal/flagx"
	"github.com/dmitrijs2005/exactauth/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations accept
// "15m" style strings or integer nanoseconds. Absent keys keep the current
// values.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP             string         `json:"endpoint_addr_http"`
	DatabaseDriver               string         `json:"database_driver"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	AuthBackends                 []string       `json:"auth_backends"`
	LoginRatePerSecond           *float64       `json:"login_rate_per_second"`
	LoginBurst                   int            `json:"login_burst"`
	Argon2MemoryKiB              uint32         `json:"argon2_memory_kib"`
	Argon2Iterations             uint32         `json:"argon2_iterations"`
	Argon2Parallelism            uint8          `json:"argon2_parallelism"`
	PasswordMaxLength            int            `json:"password_max_length"`
	TLSCertFile                  string         `json:"tls_cert_file"`
	TLSKeyFile                   string         `json:"tls_key_file"`
	CORSAllowedOrigins           []string       `json:"cors_allowed_origins"`
	LogLevel                     string         `json:"log_level"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
	BackupPassphrase             string         `json:"backup_passphrase"`
}

// parseJson overlays the file named by -c/-config, if any. A missing or
// malformed file panics.
func parseJson(config *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}
	if err := LoadFile(config, path); err != nil {
		panic(err)
	}
}

// LoadFile overlays the JSON configuration file at path onto config.
func LoadFile(config *Config, path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	c.apply(config)
	return nil
}

func (c *JsonConfig) apply(config *Config) {
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.TLSCertFile, c.TLSCertFile)
	setString(&config.TLSKeyFile, c.TLSKeyFile)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.BackupPassphrase, c.BackupPassphrase)

	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration.Duration != 0 {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	if c.AuthBackends != nil {
		config.AuthBackends = c.AuthBackends
	}
	if c.CORSAllowedOrigins != nil {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
	if c.LoginRatePerSecond != nil {
		config.LoginRatePerSecond = *c.LoginRatePerSecond
	}
	if c.LoginBurst != 0 {
		config.LoginBurst = c.LoginBurst
	}
	if c.Argon2MemoryKiB != 0 {
		config.Argon2MemoryKiB = c.Argon2MemoryKiB
	}
	if c.Argon2Iterations != 0 {
		config.Argon2Iterations = c.Argon2Iterations
	}
	if c.Argon2Parallelism != 0 {
		config.Argon2Parallelism = c.Argon2Parallelism
	}
	if c.PasswordMaxLength != 0 {
		config.PasswordMaxLength = c.PasswordMaxLength
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
