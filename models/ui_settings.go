package models

import "slices"

// Theme is the colour scheme of the panel.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Themes lists the themes in the order they are cycled through.
var Themes = []Theme{ThemeAuto, ThemeLight, ThemeDark}

// DefaultUIPort is the port the API listens on when none was saved.
const DefaultUIPort = 8000

// IsValid reports whether t is one of [Themes].
func (t Theme) IsValid() bool {
	return slices.Contains(Themes, t)
}

// Next returns the theme following t, wrapping around.
func (t Theme) Next() Theme {
	return Themes[(slices.Index(Themes, t)+1)%len(Themes)]
}

// Prev returns the theme preceding t, wrapping around.
func (t Theme) Prev() Theme {
	i := slices.Index(Themes, t)
	if i < 0 {
		return ThemeAuto
	}
	return Themes[(i-1+len(Themes))%len(Themes)]
}

// UISettings is the singleton panel preferences object.
type UISettings struct {
	Theme Theme `json:"theme"`
	Port  int   `json:"port"`
}

// DefaultUISettings returns {auto, 8000}.
func DefaultUISettings() UISettings {
	return UISettings{Theme: ThemeAuto, Port: DefaultUIPort}
}

// UISettingsUpdate is the body of POST /api/ui_settings. Nil fields are
// left unchanged.
type UISettingsUpdate struct {
	Theme *Theme `json:"theme,omitempty"`
	Port  *int   `json:"port,omitempty"`
}

// Apply returns s with the non-nil fields of u applied.
func (s UISettings) Apply(u UISettingsUpdate) UISettings {
	if u.Theme != nil {
		s.Theme = *u.Theme
	}
	if u.Port != nil {
		s.Port = *u.Port
	}
	return s
}
