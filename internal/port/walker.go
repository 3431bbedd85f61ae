package port

type FileWalker interface {
	Walk(root string) ([]FileInfo, error)
}

type FileInfo struct {
	Path     string
	RelPath  string
	Language string
	Size     int64
}
