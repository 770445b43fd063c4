// Package config loads runtime configuration for the exactauth CLI client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the exactauth gRPC endpoint
//	-i int      per-request timeout (seconds)
//	-ca string  PEM file with the CA that signed the server certificate
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "5s",
//	  "tls_ca_file": "/etc/exactauth/ca.pem"
//	}
package config
