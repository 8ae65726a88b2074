package themes

import (
	"regexp"

	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/logging"
)

// EnvThemeOverride is the environment variable that overrides the CLI theme
const EnvThemeOverride = "POSH_THEME"

// Source records where the resolved theme came from
type Source string

const (
	SourceDefault  Source = "default"
	SourceFlag     Source = "flag"
	SourceEnvPath  Source = "env-path"
	SourceEnvName  Source = "env-name"
	SourceFallback Source = "fallback"
)

var (
	// <dir>/<name>.<ext>.json with either separator, e.g. ...\atomic.omp.json
	themeFilePattern = regexp.MustCompile(`^(?:.*[\\/])?([^\\/]+)\.[^.\\/]+\.json$`)

	// a bare name: no separators, no drive colon, no spaces
	bareNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._+-]*$`)
)

// Resolution is the outcome of resolving a theme
type Resolution struct {
	Theme    Name
	Source   Source
	Warnings []error
}

// Resolve picks the theme from the environment override, then the CLI value,
// then the default. It never fails: anything unusable falls back to
// DefaultTheme with a recorded warning.
func Resolve(cliTheme, envOverride string) Resolution {
	logger := logging.GetLogger("themes")
	res := Resolution{}

	candidate, source := cliTheme, SourceFlag
	if candidate == "" {
		candidate, source = DefaultTheme, SourceDefault
	}

	var malformed string
	if envOverride != "" {
		if name, ok := nameFromOverride(envOverride); ok {
			candidate = name
			if themeFilePattern.MatchString(envOverride) {
				source = SourceEnvPath
			} else {
				source = SourceEnvName
			}
		} else {
			malformed = envOverride
			logger.Warn().Str("value", envOverride).Msg("Ignoring malformed theme override")
		}
	}

	switch {
	case !Valid(candidate) && malformed != "":
		// nothing usable was given, report it once
		warn := errors.Newf(errors.ErrThemeUnknown,
			"theme %q is not a known theme and %s value %q is neither a theme name nor a theme file path, using %q",
			candidate, EnvThemeOverride, malformed, DefaultTheme).
			WithDetail("theme", candidate).
			WithDetail("value", malformed)
		logger.Warn().
			Str("theme", candidate).
			Str("default", DefaultTheme).
			Msg("Unknown theme, falling back to default")
		res.Warnings = append(res.Warnings, warn)
		candidate, source = DefaultTheme, SourceFallback
	case !Valid(candidate):
		warn := errors.Newf(errors.ErrThemeUnknown,
			"theme %q is not a known theme, using %q", candidate, DefaultTheme).
			WithDetail("theme", candidate)
		logger.Warn().
			Str("theme", candidate).
			Str("default", DefaultTheme).
			Msg("Unknown theme, falling back to default")
		res.Warnings = append(res.Warnings, warn)
		candidate, source = DefaultTheme, SourceFallback
	case malformed != "":
		warn := errors.Newf(errors.ErrThemeOverrideInvalid,
			"%s value %q is neither a theme name nor a theme file path", EnvThemeOverride, malformed).
			WithDetail("value", malformed)
		res.Warnings = append(res.Warnings, warn)
	}

	res.Theme = candidate
	res.Source = source
	logger.Debug().Str("theme", res.Theme).Str("source", string(res.Source)).Msg("Theme resolved")
	return res
}

// nameFromOverride extracts a theme name from a path ending in
// <name>.<ext>.json or accepts a bare name.
func nameFromOverride(value string) (string, bool) {
	if m := themeFilePattern.FindStringSubmatch(value); m != nil {
		return m[1], true
	}
	if bareNamePattern.MatchString(value) {
		return value, true
	}
	return "", false
}
