package common

import "strconv"

const (
	major = 0
	minor = 3
	patch = 0

	// Version is the runtime version encoded as major*1_000_000 + minor*1_000 + patch.
	Version = major*1_000_000 + minor*1_000 + patch
)

// VersionString returns dot-separated runtime version.
func VersionString() string {
	return strconv.Itoa(major) + "." + strconv.Itoa(minor) + "." + strconv.Itoa(patch)
}
