// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors the JSON config file layout.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		TokenDuration  Duration `json:"token_duration"`
		Version        string   `json:"version"`
		LogLevel       string   `json:"log_level"`
		MasterEmail    string   `json:"master_email"`
		MasterPassword string   `json:"master_password"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
			AutoMigrate  bool   `json:"auto_migrate"`
		} `json:"db,omitempty"`

		Objects struct {
			BaseURL        string   `json:"base_url"`
			ServiceKey     string   `json:"service_key"`
			ImageBucket    string   `json:"image_bucket"`
			VideoBucket    string   `json:"video_bucket"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"objects,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		MaxUploadSize   int64    `json:"max_upload_size"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:   jsonCfg.App.TokenSignKey,
			TokenIssuer:    jsonCfg.App.TokenIssuer,
			TokenDuration:  time.Duration(jsonCfg.App.TokenDuration),
			Version:        jsonCfg.App.Version,
			LogLevel:       jsonCfg.App.LogLevel,
			MasterEmail:    jsonCfg.App.MasterEmail,
			MasterPassword: jsonCfg.App.MasterPassword,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
				AutoMigrate:  jsonCfg.Storage.DB.AutoMigrate,
			},
			Objects: Objects{
				BaseURL:        jsonCfg.Storage.Objects.BaseURL,
				ServiceKey:     jsonCfg.Storage.Objects.ServiceKey,
				ImageBucket:    jsonCfg.Storage.Objects.ImageBucket,
				VideoBucket:    jsonCfg.Storage.Objects.VideoBucket,
				RequestTimeout: time.Duration(jsonCfg.Storage.Objects.RequestTimeout),
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			MaxUploadSize:   jsonCfg.Server.MaxUploadSize,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
	}

	return cfg, nil
}

// Duration is a [time.Duration] that accepts both "1m30s" strings and
// nanosecond numbers in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
