// Package paths provides the per-user file locations themeup touches.
// It knows where the shell profile, terminal settings, editor settings,
// prompt themes, fonts and per-user tool installs live on each platform.
// Configuration values always win over these defaults.
package paths
