package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	ServerAddress  string   `json:"server_address"`
	RequestTimeout Duration `json:"request_timeout"`
	DatabaseDSN    string   `json:"database_dsn"`
	LogFile        string   `json:"log_file"`
	NoticeTTL      Duration `json:"notice_ttl"`
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

	return &StructuredConfig{
		App: App{
			LogFile:   jsonCfg.LogFile,
			NoticeTTL: time.Duration(jsonCfg.NoticeTTL),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.DatabaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.ServerAddress,
			RequestTimeout: time.Duration(jsonCfg.RequestTimeout),
		},
	}, nil
}

// Duration wraps time.Duration and unmarshals from strings like "10s" or
// from a number of nanoseconds.
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
