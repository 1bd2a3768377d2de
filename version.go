package vectorclock

// Version information for the sparse vector clock library.
const (
	// Version is the current version of the library.
	Version = "0.4.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 4

	// VersionPatch is the patch version number.
	VersionPatch = 0
)
