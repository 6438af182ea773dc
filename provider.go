package ucr

import (
	"io"
)

// FileProvider provides files and folders to [Load].
type FileProvider interface {
	Load(FileProviderCallback) error
}

// FileProviderCallback is the callback for [FileProvider].
type FileProviderCallback func(info FileInfo) error

// FileInfo is the file information returned by [FileProvider].
type FileInfo struct {
	Name string
	File io.Reader
}
