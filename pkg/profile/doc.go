// Package profile renders the PowerShell profile that initializes the prompt
// renderer, the fuzzy finder key bindings and the optional PSReadLine blocks.
//
// Generation is a pure overwrite: the profile is rendered from an embedded
// template and replaces whatever was there. The previous content survives
// only in the timestamped backup written next to it.
package profile
