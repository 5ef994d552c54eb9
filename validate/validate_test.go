package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp("", "test_config_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpfile.Close()
	return tmpfile.Name()
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func hasError(result ValidationResult, substr string) bool {
	for _, err := range result.Errors {
		if contains(err, substr) {
			return true
		}
	}
	return false
}

const validConfig = `{
	"name": "Test Config",
	"description": "Test configuration",
	"two_probability": 0.9,
	"max_moves": 500,
	"oracle": {
		"model": "claude-sonnet-4-20250514",
		"max_tokens": 4000,
		"temperature": 0.2
	},
	"messages": {
		"welcome": "Welcome to 2048!",
		"move": "Move #%d, score: %d",
		"illegal": "That direction does not change the board.",
		"terminal": "Game over! Final score: %d",
		"move_cap": "Move cap reached."
	}
}`

func TestValidateConfig_ValidConfig(t *testing.T) {
	path := writeTempConfig(t, validConfig)

	result := validateConfig(path)
	if !result.Valid {
		t.Errorf("Expected valid config, but got errors: %v", result.Errors)
	}

	if result.File != filepath.Base(path) {
		t.Errorf("Expected file name %s, got %s", filepath.Base(path), result.File)
	}

	// Informational output should summarize the key settings
	if !hasError(result, "✓ Name: Test Config") {
		t.Error("Expected name summary in informational output")
	}
	if !hasError(result, "✓ Move cap: 500") {
		t.Error("Expected move cap summary in informational output")
	}
}

func TestValidateConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{"name": "test", invalid json}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config due to bad JSON")
	}

	if !hasError(result, "Invalid JSON") {
		t.Error("Expected 'Invalid JSON' error")
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig("/non/existent/file.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}

	if !hasError(result, "Failed to read file") {
		t.Error("Expected 'Failed to read file' error")
	}
}

func TestValidateConfig_MissingName(t *testing.T) {
	path := writeTempConfig(t, strings.Replace(validConfig, `"Test Config"`, `""`, 1))

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config due to missing name")
	}

	if !hasError(result, "name is required") {
		t.Errorf("Expected 'name is required' error, got: %v", result.Errors)
	}
}

func TestValidateConfig_SpawnProbabilityRange(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"Zero", "0"},
		{"Negative", "-0.5"},
		{"Above one", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, strings.Replace(validConfig, `"two_probability": 0.9`, `"two_probability": `+tt.value, 1))

			result := validateConfig(path)
			if result.Valid {
				t.Errorf("Expected invalid config for two_probability=%s", tt.value)
			}

			if !hasError(result, "two_probability") {
				t.Errorf("Expected two_probability error, got: %v", result.Errors)
			}
		})
	}
}

func TestValidateConfig_MoveCapRange(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"Zero", "0"},
		{"Negative", "-1"},
		{"Above max", "200000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, strings.Replace(validConfig, `"max_moves": 500`, `"max_moves": `+tt.value, 1))

			result := validateConfig(path)
			if result.Valid {
				t.Errorf("Expected invalid config for max_moves=%s", tt.value)
			}

			if !hasError(result, "max_moves") {
				t.Errorf("Expected max_moves error, got: %v", result.Errors)
			}
		})
	}
}

func TestValidateConfig_OracleSettings(t *testing.T) {
	t.Run("Missing model", func(t *testing.T) {
		path := writeTempConfig(t, strings.Replace(validConfig, `"claude-sonnet-4-20250514"`, `""`, 1))

		result := validateConfig(path)
		if result.Valid {
			t.Error("Expected invalid config for missing oracle model")
		}
		if !hasError(result, "oracle.model is required") {
			t.Errorf("Expected oracle.model error, got: %v", result.Errors)
		}
	})

	t.Run("Zero max tokens", func(t *testing.T) {
		path := writeTempConfig(t, strings.Replace(validConfig, `"max_tokens": 4000`, `"max_tokens": 0`, 1))

		result := validateConfig(path)
		if result.Valid {
			t.Error("Expected invalid config for zero max_tokens")
		}
		if !hasError(result, "oracle.max_tokens") {
			t.Errorf("Expected oracle.max_tokens error, got: %v", result.Errors)
		}
	})

	t.Run("Temperature out of range", func(t *testing.T) {
		path := writeTempConfig(t, strings.Replace(validConfig, `"temperature": 0.2`, `"temperature": 1.5`, 1))

		result := validateConfig(path)
		if result.Valid {
			t.Error("Expected invalid config for temperature above 1")
		}
		if !hasError(result, "oracle.temperature") {
			t.Errorf("Expected oracle.temperature error, got: %v", result.Errors)
		}
	})
}

func TestValidateConfig_MessageTemplates(t *testing.T) {
	t.Run("Missing welcome", func(t *testing.T) {
		path := writeTempConfig(t, strings.Replace(validConfig, `"Welcome to 2048!"`, `""`, 1))

		result := validateConfig(path)
		if result.Valid {
			t.Error("Expected invalid config for missing welcome message")
		}
		if !hasError(result, "messages.welcome") {
			t.Errorf("Expected messages.welcome error, got: %v", result.Errors)
		}
	})

	t.Run("Terminal without score verb", func(t *testing.T) {
		path := writeTempConfig(t, strings.Replace(validConfig, `"Game over! Final score: %d"`, `"Game over!"`, 1))

		result := validateConfig(path)
		if result.Valid {
			t.Errorf("Expected invalid config for terminal message without %%d")
		}
		if !hasError(result, "messages.terminal") {
			t.Errorf("Expected messages.terminal error, got: %v", result.Errors)
		}
	})

	t.Run("Move without move number verb", func(t *testing.T) {
		path := writeTempConfig(t, strings.Replace(validConfig, `"Move #%d, score: %d"`, `"You moved."`, 1))

		result := validateConfig(path)
		if result.Valid {
			t.Errorf("Expected invalid config for move message without %%d")
		}
		if !hasError(result, "messages.move") {
			t.Errorf("Expected messages.move error, got: %v", result.Errors)
		}
	})

	t.Run("Empty move template is allowed", func(t *testing.T) {
		path := writeTempConfig(t, strings.Replace(validConfig, `"Move #%d, score: %d"`, `""`, 1))

		result := validateConfig(path)
		if !result.Valid {
			t.Errorf("Expected empty move template to be allowed, got: %v", result.Errors)
		}
	})
}

func TestValidateConfig_RealConfigs(t *testing.T) {
	files, err := filepath.Glob("../configs/*.json")
	if err != nil {
		t.Fatalf("Failed to glob configs: %v", err)
	}
	if len(files) == 0 {
		t.Skip("No config files found")
	}

	for _, file := range files {
		result := validateConfig(file)
		if !result.Valid {
			t.Errorf("Shipped config %s failed validation: %v", result.File, result.Errors)
		}
	}
}
