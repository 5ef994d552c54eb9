// Package config provides configuration management for the 2048 game server.
//
// The config package handles:
//   - Loading game configurations from JSON files
//   - Configuration validation and verification
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Game configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - Spawn parameters (probability of a 2 versus a 4)
//   - The move cap for oracle-driven runs
//   - An optional RNG seed for reproducible games
//   - Oracle settings (model, max tokens, temperature)
//   - Game messages for various events
//
// Available Configurations:
//
// The package ships two presets:
//   - classic: Standard rules with the default move cap
//   - quickfire: A short run with a tight move cap for demos and smoke tests
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	gameConfig, err := manager.LoadConfig("classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Validation:
//
// All configurations are validated for:
//   - Spawn probability within (0, 1]
//   - Move cap within the supported range
//   - Required message templates and their format verbs
package config
