package upload

import (
	"io"
	"path/filepath"

	"reviewer/helper"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
)

// FilesystemMemory implements the Filesystem interface for in-memory file
// storage using go-billy's memfs. Used in tests and for fully ephemeral
// deployments.
type FilesystemMemory struct {
	fs billy.Filesystem
}

// NewFilesystemMemory creates a new in-memory filesystem instance
func NewFilesystemMemory() Filesystem {
	return &FilesystemMemory{
		fs: memfs.New(),
	}
}

// Write streams data from reader to a file at the specified path
func (m *FilesystemMemory) Write(path string, reader io.Reader, size int64) error {
	file, err := m.fs.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, reader)
	return err
}

// Open opens a file at the specified path and returns a ReadCloser
func (m *FilesystemMemory) Open(path string) (io.ReadCloser, error) {
	return m.fs.Open(path)
}

// Delete removes the file at the specified path
func (m *FilesystemMemory) Delete(path string) error {
	return m.fs.Remove(path)
}

// ListFiles returns a list of all files in the filesystem
func (m *FilesystemMemory) ListFiles() ([]File, error) {
	var files []File

	var walk func(string) error
	walk = func(dirPath string) error {
		entries, err := m.fs.ReadDir(dirPath)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			entryPath := m.fs.Join(dirPath, entry.Name())
			if entry.IsDir() {
				if err := walk(entryPath); err != nil {
					return err
				}
			} else {
				relPath := entryPath
				if dirPath == "." || dirPath == "" {
					relPath = entry.Name()
				}

				files = append(files, File{
					Name:     filepath.ToSlash(relPath),
					Size:     entry.Size(),
					MimeType: helper.GetMimeType(entry.Name()),
				})
			}
		}
		return nil
	}

	if err := walk("."); err != nil {
		return nil, err
	}

	return files, nil
}
