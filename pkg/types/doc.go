// Package types defines the core types and interfaces shared across themeup.
// This includes the filesystem interface used by the settings merger and
// profile generator, and the status values every setup step reports.
package types
