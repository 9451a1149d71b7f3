// Package version reports the build version of the swatch binary.
package version

import (
	"runtime/debug"
	"sync"
)

const development = "development"

// Get returns the module version, or the short VCS revision for local builds.
var Get = sync.OnceValue(func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return development
	}
	return fromBuildInfo(info)
})

func fromBuildInfo(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return development + "+" + s.Value[:7]
		}
	}
	return development
}
