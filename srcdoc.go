// Package srcdoc provides a CLI tool that generates markdown
// documentation for a tree of source files. It discovers files under an
// input folder, asks a hosted LLM to document each one, and writes the
// results to a mirrored output directory, keeping a history of runs.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// gemini/, doublestar/).
package srcdoc
