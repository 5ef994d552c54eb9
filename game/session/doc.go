// Package session provides session management for the 2048 game server.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session lifecycle management
//   - Optional file-based persistence across restarts
//   - Session cleanup and expiration
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// FilePersistence stores each session as a JSON file so boards, scores, and
// move histories survive server restarts.
//
// Session Identifiers:
//
// Sessions use 4-character hex IDs for easy reference. The manager ensures
// IDs are unique and provides collision-resistant generation using
// cryptographic randomness. Lookups are case-insensitive.
//
// Concurrency:
//
// The session manager is thread-safe and supports concurrent operations.
// Multiple goroutines can safely create, retrieve, and modify different
// sessions simultaneously. Internal locking ensures data consistency.
//
// Usage:
//
//	manager := session.NewManager()
//
//	// Create a new session
//	sess, err := manager.Create("", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Retrieve existing session
//	sess, err = manager.Get(sessionID)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// List all active sessions
//	sessions := manager.List()
//
// Persistence:
//
// With NewManagerWithPersistence the manager writes sessions through to
// storage on creation and on explicit Save calls, and transparently loads
// persisted sessions on Get misses. Persistence failures are logged as
// warnings and never fail the in-memory operation.
package session
