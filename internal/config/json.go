package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the on-disk JSON layout.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey         string            `json:"token_sign_key"`
		TokenKeyID           string            `json:"token_key_id"`
		TokenVerifyKeys      map[string]string `json:"token_verify_keys"`
		TokenIssuer          string            `json:"token_issuer"`
		TokenDuration        Duration          `json:"token_duration"`
		ConcealUnknownEmails bool              `json:"conceal_unknown_emails"`
		Development          bool              `json:"development"`
		Version              string            `json:"version"`
		Argon2               struct {
			Memory      uint32 `json:"memory"`
			Iterations  uint32 `json:"iterations"`
			Parallelism uint8  `json:"parallelism"`
		} `json:"argon2"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress       string   `json:"http_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		AllowedOrigins    []string `json:"allowed_origins"`
		ResetRouteAliases []string `json:"reset_route_aliases"`
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
			TokenSignKey:         jsonCfg.App.TokenSignKey,
			TokenKeyID:           jsonCfg.App.TokenKeyID,
			TokenVerifyKeys:      jsonCfg.App.TokenVerifyKeys,
			TokenIssuer:          jsonCfg.App.TokenIssuer,
			TokenDuration:        time.Duration(jsonCfg.App.TokenDuration),
			ConcealUnknownEmails: jsonCfg.App.ConcealUnknownEmails,
			Development:          jsonCfg.App.Development,
			Version:              jsonCfg.App.Version,
			Argon2: Argon2{
				Memory:      jsonCfg.App.Argon2.Memory,
				Iterations:  jsonCfg.App.Argon2.Iterations,
				Parallelism: jsonCfg.App.Argon2.Parallelism,
			},
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins:    jsonCfg.Server.AllowedOrigins,
			ResetRouteAliases: jsonCfg.Server.ResetRouteAliases,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
