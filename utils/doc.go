// Package utils provides internal utility functions for the transit assistant.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Time formatting and conversion utilities
//   - Logging initialization
package utils
