// Package draft provides the stateful editing core of an LLM-backed
// design-document service: section-level markdown surgery, per-session
// version tracking for iterative edits, and a durable, query-keyed cache
// of externally retrieved references.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, mem/).
package draft
