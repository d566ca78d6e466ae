package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema []byte

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// Checks types, minimum and minLength of every section field.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema jsonschema.Schema
	if err := json.Unmarshal(embeddedSchema, &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	root := resolve(&schema, &schema)
	if root == nil || root.Properties == nil {
		return fmt.Errorf("schema has no root properties")
	}

	var problems []string
	for pair := root.Properties.Oldest(); pair != nil; pair = pair.Next() {
		section := resolve(&schema, pair.Value)
		values, ok := configMap[pair.Key].(map[string]any)
		if !ok || section == nil || section.Properties == nil {
			problems = append(problems, fmt.Sprintf("%s: missing section", pair.Key))
			continue
		}
		for field := section.Properties.Oldest(); field != nil; field = field.Next() {
			if msg := checkValue(field.Value, values[field.Key]); msg != "" {
				problems = append(problems, fmt.Sprintf("%s.%s: %s", pair.Key, field.Key, msg))
			}
		}
	}
	if len(problems) > 0 {
		sort.Strings(problems)
		return fmt.Errorf("validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

// resolve follows a local $ref, like "#/$defs/ServerConfig"
func resolve(root, s *jsonschema.Schema) *jsonschema.Schema {
	if s == nil || s.Ref == "" {
		return s
	}
	name := strings.TrimPrefix(s.Ref, "#/$defs/")
	if def, ok := root.Definitions[name]; ok {
		return def
	}
	return nil
}

func checkValue(s *jsonschema.Schema, v any) string {
	switch s.Type {
	case "string":
		str, ok := v.(string)
		if !ok {
			return "must be a string"
		}
		if s.MinLength != nil && uint64(len(str)) < *s.MinLength {
			return fmt.Sprintf("must be at least %d characters", *s.MinLength)
		}
	case "integer", "number":
		n, ok := v.(float64)
		if !ok {
			return "must be a number"
		}
		if s.Minimum != "" {
			if minimum, err := s.Minimum.Float64(); err == nil && n < minimum {
				return fmt.Sprintf("must be at least %s", s.Minimum)
			}
		}
	}
	return ""
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
