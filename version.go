package vr

import (
	"runtime/debug"
	"sync"
)

// unknownVersion is reported when build metadata is unavailable.
const unknownVersion = "unknown"

type buildInfoFunc func() (*debug.BuildInfo, bool)

// version is resolved at most once per process.
var version = sync.OnceValue(func() string {
	return resolveVersion(debug.ReadBuildInfo)
})

// Version reports the module version recorded in the binary's build
// metadata, or "unknown" when none is available. The lookup happens
// once; subsequent calls return the same value.
func Version() string {
	return version()
}

func resolveVersion(read buildInfoFunc) string {
	info, ok := read()
	if !ok || info == nil {
		return unknownVersion
	}
	switch v := info.Main.Version; v {
	case "", "(devel)":
		return unknownVersion
	default:
		return v
	}
}
