package port

// FileInfo describes one file found by a Walker.
type FileInfo struct {
	Path    string
	ModTime int64
	Size    int64
}

// Walker enumerates files under a root directory.
type Walker interface {
	Walk(root string) ([]FileInfo, error)
}
