// Package harness provides utilities for integration testing the lurker CLI.
// It builds the binary once, isolates each test in its own LURKER_HOME and
// runs commands with a timeout.
//
// Environment variables managed:
//   - LURKER_HOME: Isolated per test (temp directory)
//   - LURKER_DEBUG: Disabled to reduce noise
//   - XDG_STATE_HOME: Points debug logs into the temp directory
package harness
