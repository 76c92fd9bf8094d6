// Package diagnostic provides structured errors, warnings and notes produced
// when a persisted shape description is verified against the shapes compiled
// into a program.
//
// Key capabilities:
//   - Missing or unknown shape reports
//   - Arity and field layout drift
//   - Combined error for command-line exit status
package diagnostic
