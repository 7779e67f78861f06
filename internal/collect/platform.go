package collect

import "runtime"

// Platform identifies the operating system family driving fact collection.
type Platform string

const (
	// PlatformLinux selects the Linux command table.
	PlatformLinux Platform = "linux"
	// PlatformDarwin selects the macOS command table.
	PlatformDarwin Platform = "darwin"
	// PlatformWindows selects the Windows strategies.
	PlatformWindows Platform = "windows"
	// PlatformUnknown skips platform-specific enrichment entirely.
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform maps the running OS to a recognized platform. An
// unrecognized OS is not an error: the scan still collects common fields.
func DetectPlatform() Platform {
	switch runtime.GOOS {
	case "linux":
		return PlatformLinux
	case "darwin":
		return PlatformDarwin
	case "windows":
		return PlatformWindows
	default:
		return PlatformUnknown
	}
}
