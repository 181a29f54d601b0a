package osutil

const (
	Windows = "windows"
	Darwin  = "darwin"
)

// DirPermission is used when creating the working and chart directories.
const DirPermission = 0o755

// FilePermission is used for files written outside the report writer.
const FilePermission = 0o644
