// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no external I/O of their own beyond the
// pre-flight file checks; all other I/O goes through driven ports.
package services
