// Package settings merges font overrides into JSON settings documents such as
// the Windows Terminal settings.json and the VS Code user settings.
//
// A merge reads the existing document (comments and trailing commas are
// accepted), applies every override with upsert semantics, backs up the
// previous bytes next to the file and writes the result atomically. Keys that
// no override targets are preserved. Merging the same overrides twice yields
// the same document.
//
// In dry-run mode nothing is written; a unified diff of the change is rendered
// instead.
package settings
