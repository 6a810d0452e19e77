package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	// parse schema
	var schema struct {
		Defs map[string]struct {
			Required   []string `json:"required"`
			Properties map[string]struct {
				Enum []string `json:"enum"`
			} `json:"properties"`
		} `json:"$defs"`
	}
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	// enum constraints of the top level sections
	sections := map[string]string{"sync": "SyncConfig", "feed": "FeedConfig"}
	for section, def := range sections {
		props := schema.Defs[def].Properties
		for name, prop := range props {
			if len(prop.Enum) == 0 {
				continue
			}
			val, _ := configMap[section][name].(string)
			if !slices.Contains(prop.Enum, val) {
				return fmt.Errorf("%s.%s: %q not in %v", section, name, val, prop.Enum)
			}
		}
		for _, req := range schema.Defs[def].Required {
			if v, ok := configMap[section][req]; !ok || v == "" {
				return fmt.Errorf("%s.%s is required", section, req)
			}
		}
	}

	// basic validation - check required fields match
	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	// check server config
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}

	// check images config if enabled
	if !cfg.Images.Disabled {
		if cfg.Images.Dir == "" {
			return fmt.Errorf("images.dir is required when images are enabled")
		}
		if cfg.Images.Timeout == 0 {
			return fmt.Errorf("images.timeout is required when images are enabled")
		}
	}

	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
