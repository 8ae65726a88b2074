// Package testutil provides fakes and file helpers shared by themeup tests.
//
// Key components:
//   - Runner: records external commands instead of running them
//   - Prompter: answers confirmations from a fixed script
//   - WriteFile/ReadFile/AssertMissing: one-line file setup and checks
//     against a types.FS, usually filesystem.NewMemoryFS()
package testutil
