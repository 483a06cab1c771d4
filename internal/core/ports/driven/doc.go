// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentReader: Extracts text from input files
//   - DocumentWriter: Renders text into output files
//   - DocumentStore: Document persistence
//   - TemplateStore: Template persistence
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - CompletionService: Text generation. Without it, normalisation and
//     output grading are disabled.
//   - PromptStore: User-editable prompts. Without it, embedded defaults
//     are used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, reader, or writer package
package driven
