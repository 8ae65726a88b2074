// Package install ensures the external tools a themed terminal needs are
// present: the prompt renderer, the fuzzy finder, the PowerShell module that
// binds it and a Nerd Font.
//
// Installation is always delegated to a package manager or to the prompt
// renderer's own font installer. Every step reports an Outcome instead of
// failing the run, and resolved executable paths are recorded in a Locations
// value that later steps read. The process PATH is never modified.
package install
