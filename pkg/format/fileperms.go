package format

import "io/fs"

// Common file permission constants used throughout the application.
const (
	// DirUserOnly is for temporary extraction directories (rwx------)
	DirUserOnly fs.FileMode = 0700

	// FilePublicRead is for files that should be world-readable (rw-r--r--)
	FilePublicRead fs.FileMode = 0644

	// FileUserReadWrite is for files that should only be readable by owner (rw-------)
	// Used for exported secrets and log files
	FileUserReadWrite fs.FileMode = 0600
)
