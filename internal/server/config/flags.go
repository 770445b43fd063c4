package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/exactauth/internal/flagx"
)

// parseFlags overlays the short command-line flags:
//
//	-a  gRPC bind address           -w  HTTP bind address
//	-n  database driver (pgx|sqlite) -d  database DSN
//	-s  JWT secret key              -t  access token TTL, minutes
//	-r  refresh token TTL, minutes  -B  auth backends, comma separated
//	-l  login rate per second       -v  log level
//	-u -p -b -g -e  S3 user, password, bucket, region, endpoint
//
// Only these flags are picked out of os.Args so -c and foreign flags do not
// collide. A malformed value panics.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-w", "-n", "-d", "-s", "-t", "-r", "-B", "-l", "-v", "-u", "-p", "-b", "-g", "-e",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.EndpointAddrHTTP, "w", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.DatabaseDriver, "n", config.DatabaseDriver, "database driver (pgx or sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTTL := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	refreshTTL := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh token validity (in minutes)")

	backends := flagx.StringList(config.AuthBackends)
	fs.Var(&backends, "B", "authentication backends, comma separated")
	fs.Float64Var(&config.LoginRatePerSecond, "l", config.LoginRatePerSecond, "login attempts per second (0 = unlimited)")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AuthBackends = backends
	config.AccessTokenValidityDuration = time.Duration(*accessTTL) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTTL) * time.Minute
}
