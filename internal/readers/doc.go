// Package readers provides DocumentReader implementations for the input
// formats the pipeline accepts, plus a composite that dispatches by file
// extension.
package readers
