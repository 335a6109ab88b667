// Package version reports the notedeck build.
package version

import (
	"runtime"
	"runtime/debug"
)

// Version and Commit are set at build time with -ldflags -X.
var (
	Version = "development"
	Commit  = "unknown"
)

var readBuildInfo = debug.ReadBuildInfo

// Info describes the running binary.
type Info struct {
	Version   string
	Commit    string
	Dirty     bool
	GoVersion string
}

// Get returns the build description. Values missing from ldflags are taken
// from the module build info when `go install` embedded it.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, GoVersion: runtime.Version()}
	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "development" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "unknown" && len(s.Value) >= 7 {
				info.Commit = s.Value[:7]
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// String returns the version, with the commit appended when known.
func (i Info) String() string {
	if i.Commit == "unknown" || i.Commit == "" {
		return i.Version
	}
	s := i.Version + "+" + i.Commit
	if i.Dirty {
		s += "-dirty"
	}
	return s
}

// String is shorthand for Get().String().
func String() string {
	return Get().String()
}
