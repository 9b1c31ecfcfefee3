package lz76

// Version information for the lz76 module.
const (
	// Version is the current version of the lz76 module.
	Version = "1.0.0"

	// MinCompatibleVersion is the minimum version that is compatible with this version.
	MinCompatibleVersion = "1.0.0"
)
