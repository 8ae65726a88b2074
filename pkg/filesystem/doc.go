// Package filesystem provides filesystem implementations for themeup.
//
// This package contains implementations of the types.FS interface (the OS
// filesystem and an afero-backed one used by tests) and the two write
// primitives every settings and profile update goes through: timestamped
// backups and atomic write-then-rename.
package filesystem
