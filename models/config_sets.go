package models

import (
	"cmp"
	"slices"
)

// ConfigSets maps a config set name to its entry. It is the body of
// GET /api/configs.
type ConfigSets map[string]ConfigEntry

// Names returns the names ordered by absolute serial number, then name.
func (s ConfigSets) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(s[a].AbsoluteSerialNumber, s[b].AbsoluteSerialNumber); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return names
}

// NextAbsoluteSerial returns the largest absolute serial number plus one.
func (s ConfigSets) NextAbsoluteSerial() int {
	highest := 0
	for _, e := range s {
		highest = max(highest, e.AbsoluteSerialNumber)
	}
	return highest + 1
}
