package memtree

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Command completed successfully
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid configuration
	ExitNotADirectory  = 11 // Path descends through a file
	ExitNotFound       = 12 // Path does not resolve to a node
	ExitInvalidContent = 13 // Byte count does not fit the supplied content
	ExitScriptFailed   = 14 // Operation script step failed
)

const (
	// DefaultSeparator is the path separator used when none is configured.
	DefaultSeparator = '\\'

	// RootName is the name of the root directory owned by every FileSystem.
	RootName = "."

	// ListIndentStep is the number of spaces each directory level adds to a listing.
	ListIndentStep = 2
)
