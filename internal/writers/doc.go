// Package writers provides DocumentWriter implementations for the output
// formats the pipeline renders, plus a composite that dispatches by output
// kind.
package writers
