/*
Package fontconf holds the settings for resolving fonts on a host.

Settings are read either from a schuko configuration, using keys

	platform-version   integer platform version (default 26)
	app-root           application root folder holding fonts/ (default ".")
	system-fonts       "true" to serve generic families from installed fonts
	app-key            application identifier for user configuration lookup

or from environment variables FONTRESOLVE_PLATFORM_VERSION,
FONTRESOLVE_APP_ROOT, FONTRESOLVE_SYSTEM_FONTS and FONTRESOLVE_APP_KEY.
*/
package fontconf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/npillmayer/fontresolve"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/testconfig"
)

// DefaultVersion is the platform version assumed if none is configured.
const DefaultVersion = fontresolve.VersionVariations

// Settings configure the resolution of fonts.
type Settings struct {
	PlatformVersion int    `env:"FONTRESOLVE_PLATFORM_VERSION" envDefault:"26"`
	AppRoot         string `env:"FONTRESOLVE_APP_ROOT" envDefault:"."`
	SystemFonts     bool   `env:"FONTRESOLVE_SYSTEM_FONTS" envDefault:"false"`
	AppKey          string `env:"FONTRESOLVE_APP_KEY" envDefault:"fontresolve"`
}

// Defaults returns the settings used for keys not configured.
func Defaults() Settings {
	return Settings{
		PlatformVersion: DefaultVersion,
		AppRoot:         ".",
		AppKey:          "fontresolve",
	}
}

// FromEnv loads settings from environment variables.
func FromEnv() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Defaults(), fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// FromConfig loads settings from a configuration. Keys not set keep their
// default values.
func FromConfig(conf schuko.Configuration) (Settings, error) {
	s := Defaults()
	if conf == nil {
		return s, nil
	}
	if v := strings.TrimSpace(conf.GetString("platform-version")); v != "" {
		version, err := strconv.Atoi(v)
		if err != nil {
			return s, fmt.Errorf("config key platform-version: %w", err)
		}
		s.PlatformVersion = version
	}
	if root := conf.GetString("app-root"); root != "" {
		s.AppRoot = root
	}
	if v := strings.TrimSpace(conf.GetString("system-fonts")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("config key system-fonts: %w", err)
		}
		s.SystemFonts = b
	}
	if key := conf.GetString("app-key"); key != "" {
		s.AppKey = key
	}
	return s, nil
}

// Conf returns the settings as a configuration.
func (s Settings) Conf() schuko.Configuration {
	return testconfig.Conf{
		"platform-version": strconv.Itoa(s.PlatformVersion),
		"app-root":         s.AppRoot,
		"system-fonts":     strconv.FormatBool(s.SystemFonts),
		"app-key":          s.AppKey,
	}
}
