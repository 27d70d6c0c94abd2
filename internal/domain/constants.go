package domain

// File permissions for everything written under ~/.coach.
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for config and history files (rw-------)
	SecureFilePermissions = 0o600
	// ExportFilePermissions is the permission for user-requested exports (rw-r--r--)
	ExportFilePermissions = 0o644
)
