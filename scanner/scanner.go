package scanner

import (
	"os"
	"path/filepath"
	"sort"
)

// FileInfo describes one IR source file found under a root directory.
type FileInfo struct {
	Path string
	Size int64
}

// Scanner walks a directory tree collecting files by extension. It is used
// by the optimizer driver to discover .sir inputs.
type Scanner struct {
	rootDir    string
	extensions []string
}

// New creates a scanner rooted at rootDir. With no extensions every file
// matches.
func New(rootDir string, extensions ...string) *Scanner {
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// Scan walks the tree and returns the matching files in path order, so an
// optimization run over a directory is deterministic.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var files []FileInfo

	err := filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if s.isTargetFile(path) {
			files = append(files, FileInfo{Path: path, Size: info.Size()})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func (s *Scanner) isTargetFile(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}

	ext := filepath.Ext(path)
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
