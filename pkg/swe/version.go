package swe

// BuildVersion is set at link time:
//
//	go build -ldflags "-X github.com/libswe/swe-go/pkg/swe.BuildVersion=v1.2.0"
var BuildVersion = "v0.0.0-in-progress"

// WrapperVersion returns the version of this Go module build, as opposed to
// Ephemeris.Version which reports libswe's.
func WrapperVersion() string {
	return BuildVersion
}
