package ucr

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"
)

var defaultFileExtensions = []string{".ucr.yaml", ".ucr.yml", ".ucr.json"}

type fsFileProvider struct {
	fs         fs.FS
	include    func(path string, entry os.DirEntry) bool
	extensions []string
}

// NewDirectoryFileProvider creates a [FileProvider] that reads the form files of a directory tree.
// Returned file names are relative to the rootDir.
func NewDirectoryFileProvider(rootDir string, options ...FSFileProviderOption) FileProvider {
	return NewFSFileProvider(os.DirFS(rootDir), options...)
}

// NewFSFileProvider creates a [FileProvider] that reads the form files of a [fs.FS].
// Files of each directory are read sorted by name, and subdirectories are read after the files of their
// parent. By default only files ending in ".ucr.yaml", ".ucr.yml" or ".ucr.json" are read, see
// [WithFileExtensions].
func NewFSFileProvider(fs fs.FS, options ...FSFileProviderOption) FileProvider {
	ret := &fsFileProvider{
		fs:         fs,
		extensions: defaultFileExtensions,
	}
	for _, opt := range options {
		opt.apply(ret)
	}
	return ret
}

// WithDirectoryIncludeFunc sets a callback to allow choosing files that will be read.
// Check entry [os.DirEntry.IsDir] to detect files or directories.
func WithDirectoryIncludeFunc(include func(path string, entry os.DirEntry) bool) FSFileProviderOption {
	return fnFSFileProviderOption(func(provider *fsFileProvider) {
		provider.include = include
	})
}

// WithFileExtensions replaces the file name suffixes of the files that will be read.
func WithFileExtensions(extensions ...string) FSFileProviderOption {
	return fnFSFileProviderOption(func(provider *fsFileProvider) {
		provider.extensions = extensions
	})
}

func (d *fsFileProvider) Load(f FileProviderCallback) error {
	return d.loadDir(".", f)
}

func (d *fsFileProvider) loadDir(dir string, f FileProviderCallback) error {
	entries, err := fs.ReadDir(d.fs, dir)
	if err != nil {
		return fmt.Errorf("error reading directory '%s': %w", dir, err)
	}
	slices.SortFunc(entries, func(a, b os.DirEntry) int {
		return cmp.Compare(a.Name(), b.Name())
	})

	var subdirs []string
	for _, entry := range entries {
		if d.include != nil && !d.include(dir, entry) {
			continue
		}
		entryPath := path.Join(dir, entry.Name())
		switch {
		case entry.IsDir():
			subdirs = append(subdirs, entryPath)
		case d.isFormFile(entry.Name()):
			if err := d.loadFile(entryPath, f); err != nil {
				return err
			}
		}
	}

	for _, subdir := range subdirs {
		if err := d.loadDir(subdir, f); err != nil {
			return err
		}
	}
	return nil
}

func (d *fsFileProvider) loadFile(filePath string, f FileProviderCallback) (err error) {
	file, err := d.fs.Open(filePath)
	if err != nil {
		return fmt.Errorf("error opening file '%s': %w", filePath, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("error closing file '%s': %w", filePath, closeErr))
		}
	}()

	if err := f(FileInfo{Name: filePath, File: file}); err != nil {
		return fmt.Errorf("error processing file '%s': %w", filePath, err)
	}
	return nil
}

func (d *fsFileProvider) isFormFile(name string) bool {
	return slices.ContainsFunc(d.extensions, func(ext string) bool {
		return strings.HasSuffix(name, ext)
	})
}

// NewStringFileProvider creates a [FileProvider] that simulates a file for each string field, in the array order.
func NewStringFileProvider(files []string) FileProvider {
	return &stringFileProvider{files: files}
}

type stringFileProvider struct {
	files []string
}

func (s stringFileProvider) Load(callback FileProviderCallback) error {
	digitSize := fmt.Sprintf("%d", len(s.files))
	fileFmt := fmt.Sprintf("%%0%dd-file.ucr.yaml", len(digitSize)+1)

	for idx, data := range s.files {
		err := callback(FileInfo{
			Name: fmt.Sprintf(fileFmt, idx),
			File: strings.NewReader(data),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
