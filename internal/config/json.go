package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file. Durations are written as strings ("1h", "30s").
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		TokenDuration  Duration `json:"token_duration"`
		TokenClockSkew Duration `json:"token_clock_skew"`
		LogLevel       string   `json:"log_level"`
		Version        string   `json:"version"`
	} `json:"app,omitempty"`

	Hasher struct {
		Algorithm         string `json:"algorithm"`
		Argon2Memory      uint32 `json:"argon2_memory"`
		Argon2Iterations  uint32 `json:"argon2_iterations"`
		Argon2Parallelism uint8  `json:"argon2_parallelism"`
		BcryptCost        int    `json:"bcrypt_cost"`
		MinPasswordLength int    `json:"min_password_length"`
		MaxPasswordLength int    `json:"max_password_length"`
	} `json:"hasher,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		RevocationPurgeInterval Duration `json:"revocation_purge_interval"`
	} `json:"workers,omitempty"`
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
			TokenClockSkew: time.Duration(jsonCfg.App.TokenClockSkew),
			LogLevel:       jsonCfg.App.LogLevel,
			Version:        jsonCfg.App.Version,
		},
		Hasher: Hasher{
			Algorithm:         jsonCfg.Hasher.Algorithm,
			Argon2Memory:      jsonCfg.Hasher.Argon2Memory,
			Argon2Iterations:  jsonCfg.Hasher.Argon2Iterations,
			Argon2Parallelism: jsonCfg.Hasher.Argon2Parallelism,
			BcryptCost:        jsonCfg.Hasher.BcryptCost,
			MinPasswordLength: jsonCfg.Hasher.MinPasswordLength,
			MaxPasswordLength: jsonCfg.Hasher.MaxPasswordLength,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Workers: Workers{
			RevocationPurgeInterval: time.Duration(jsonCfg.Workers.RevocationPurgeInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
