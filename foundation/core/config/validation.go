// File: validation.go
// Title: Configuration Validation
// Description: Declarative rules checked against a loaded configuration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Min/Max bounds, InvalidConfig errors

package config

import (
	"fmt"
	"sort"
	"strings"

	mdwerrors "github.com/msto63/imstr/foundation/core/errors"
)

// ValueType is the expected type of a configuration value
type ValueType string

const (
	TypeString ValueType = "string"
	TypeInt    ValueType = "int"
	TypeBool   ValueType = "bool"
)

// ValidationRule defines validation constraints for a configuration key
type ValidationRule struct {
	Required bool
	Type     ValueType
	Min      *int // inclusive lower bound for TypeInt
	Max      *int // inclusive upper bound for TypeInt
	OneOf    []string
}

// ValidationError describes a single failed rule
type ValidationError struct {
	Key     string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Message)
}

// ValidationResult collects the outcome of Validate
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// Err returns the first failure as a structured config error, or nil
func (r ValidationResult) Err() error {
	if r.Valid || len(r.Errors) == 0 {
		return nil
	}
	first := r.Errors[0]
	err := mdwerrors.InvalidConfig(first.Key, first.Value, first.Message)
	if len(r.Errors) > 1 {
		err = err.WithDetail("additional_errors", len(r.Errors)-1)
	}
	return err
}

// IntPtr is a helper for building Min and Max bounds
func IntPtr(v int) *int {
	return &v
}

// Validate checks every rule against the configuration. Keys are checked in
// sorted order so results are stable.
func (c *Config) Validate(rules map[string]ValidationRule) ValidationResult {
	result := ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if msg, value, ok := c.check(key, rules[key]); !ok {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationError{Key: key, Value: value, Message: msg})
		}
	}

	return result
}

func (c *Config) check(key string, rule ValidationRule) (string, interface{}, bool) {
	c.mu.RLock()
	_, fromEnv := c.getEnvValue(key)
	raw := c.getValue(key)
	c.mu.RUnlock()

	if raw == nil && !fromEnv {
		if rule.Required {
			return "required key is missing", nil, false
		}
		return "", nil, true
	}

	switch rule.Type {
	case TypeInt:
		var (
			v  int
			ok bool
		)
		if fromEnv {
			raw = c.GetString(key)
			v, ok = toInt(strings.TrimSpace(raw.(string)))
		} else {
			v, ok = toInt(raw)
		}
		if !ok {
			return "expected an integer", raw, false
		}
		if rule.Min != nil && v < *rule.Min {
			return fmt.Sprintf("must be >= %d", *rule.Min), v, false
		}
		if rule.Max != nil && v > *rule.Max {
			return fmt.Sprintf("must be <= %d", *rule.Max), v, false
		}
	case TypeBool:
		if fromEnv {
			raw = c.GetString(key)
		}
		switch v := raw.(type) {
		case bool:
		case string:
			if lv := strings.ToLower(v); lv != "true" && lv != "false" && lv != "1" && lv != "0" {
				return "expected a boolean", raw, false
			}
		default:
			return "expected a boolean", raw, false
		}
	case TypeString:
		s := c.GetString(key)
		if rule.Required && strings.TrimSpace(s) == "" {
			return "must not be empty", s, false
		}
		raw = s
	}

	if len(rule.OneOf) > 0 {
		s := strings.ToLower(c.GetString(key))
		for _, allowed := range rule.OneOf {
			if s == strings.ToLower(allowed) {
				return "", raw, true
			}
		}
		return fmt.Sprintf("must be one of %s", strings.Join(rule.OneOf, ", ")), raw, false
	}

	return "", raw, true
}
