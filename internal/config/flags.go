// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair usable as a [flag.Value].
// An empty host means "all interfaces".
type NetAddress struct {
	Host string
	Port int
}

// parseFlags reads server flags from args into a fresh [StructuredConfig].
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress   NetAddress
		databaseDSN     string
		maxOpenConns    int
		autoMigrate     bool
		jsonConfigPath  string
		tokenSignKey    string
		tokenIssuer     string
		tokenDuration   time.Duration
		requestTimeout  time.Duration
		maxUploadSize   int64
		objectsURL      string
		objectsKey      string
		imageBucket     string
		videoBucket     string
		objectsTimeout  time.Duration
		logLevel        string
		masterEmail     string
		masterPassword  string
		shutdownTimeout time.Duration
	)

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.IntVar(&maxOpenConns, "db-max-conns", 0, "Maximum open database connections")
	fs.BoolVar(&autoMigrate, "migrate", false, "Apply database migrations on startup")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxUploadSize, "max-upload-size", 0, "Maximum multipart body size in bytes")
	fs.StringVar(&objectsURL, "objects-url", "", "Object storage base URL")
	fs.StringVar(&objectsKey, "objects-key", "", "Object storage service key")
	fs.StringVar(&imageBucket, "image-bucket", "", "Bucket for product images")
	fs.StringVar(&videoBucket, "video-bucket", "", "Bucket for product videos")
	fs.DurationVar(&objectsTimeout, "objects-timeout", 0, "Object storage request timeout")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&masterEmail, "master-email", "", "Master admin email")
	fs.StringVar(&masterPassword, "master-password", "", "Master admin password")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
			LogLevel:       logLevel,
			MasterEmail:    masterEmail,
			MasterPassword: masterPassword,
		},
		Storage: Storage{
			DB: DB{
				DSN:          databaseDSN,
				MaxOpenConns: maxOpenConns,
				AutoMigrate:  autoMigrate,
			},
			Objects: Objects{
				BaseURL:        objectsURL,
				ServiceKey:     objectsKey,
				ImageBucket:    imageBucket,
				VideoBucket:    videoBucket,
				RequestTimeout: objectsTimeout,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			MaxUploadSize:   maxUploadSize,
			ShutdownTimeout: shutdownTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the address in host:port form, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses a host:port value. The host must be empty, "localhost" or an IP.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
