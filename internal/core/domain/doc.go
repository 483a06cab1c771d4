// Package domain defines the core business entities for Templar.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Document: A single normalisation unit with its lifecycle status
//   - Template: A reusable target structure with {{placeholder}} tokens
//   - ValidationSummary: Pre-flight file check result
//   - ValidationResult: LLM-graded output validation report
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, github.com/google/uuid
//   - Cannot Import: Any other internal/ package, any other external dependency
package domain
