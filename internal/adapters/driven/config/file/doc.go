// Package file provides file-based configuration and prompt storage.
//
// Configuration lives in a TOML file under the templar config directory and
// is exposed both as a raw key/value store and as a typed Config with
// defaults applied. Prompts are user-editable text files created lazily from
// embedded defaults.
package file
