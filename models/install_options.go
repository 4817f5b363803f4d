package models

import (
	"maps"
	"slices"
)

// Install option keys known to the launcher.
const (
	InstallAdapter = "install_adapter"
	InstallNapcat  = "install_napcat"
	InstallMongoDB = "install_mongodb"
	InstallWebUI   = "install_webui"
)

// InstallOptionKeys lists the default install options in display order.
var InstallOptionKeys = []string{InstallAdapter, InstallNapcat, InstallMongoDB, InstallWebUI}

// InstallOptions maps an option name to whether the component is installed.
type InstallOptions map[string]bool

// DefaultInstallOptions returns every known option set to false.
func DefaultInstallOptions() InstallOptions {
	opts := make(InstallOptions, len(InstallOptionKeys))
	for _, k := range InstallOptionKeys {
		opts[k] = false
	}
	return opts
}

// Keys returns the known keys followed by any extra keys in sorted order.
func (o InstallOptions) Keys() []string {
	keys := slices.Clone(InstallOptionKeys)
	extra := make([]string, 0)
	for k := range maps.Keys(o) {
		if !slices.Contains(InstallOptionKeys, k) {
			extra = append(extra, k)
		}
	}
	slices.Sort(extra)
	return append(keys, extra...)
}

// WithDefaults returns a copy of o where every key from [InstallOptionKeys]
// that is missing is set to false.
func (o InstallOptions) WithDefaults() InstallOptions {
	out := DefaultInstallOptions()
	maps.Copy(out, o)
	return out
}
