package fileset

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/databricks/databricks-sdk-go/logger"
)

type FileSet []File

func (fi FileSet) Root() string {
	if len(fi) == 0 {
		return "."
	}
	return fi[0].Dir()
}

func (fi FileSet) Filter(pathRegex string) (out FileSet) {
	needle := regexp.MustCompile(pathRegex)
	for _, v := range fi {
		if !needle.MatchString(v.Absolute) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func (fi FileSet) LastUpdated() time.Time {
	last := time.Time{}
	for _, file := range fi {
		info, err := file.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(last) {
			last = info.ModTime()
		}
	}
	return last
}

type File struct {
	fs.DirEntry
	Absolute string
	Relative string
}

func (fi File) Ext(suffix string) bool {
	return strings.HasSuffix(fi.Name(), suffix)
}

func (fi File) Dir() string {
	return path.Dir(fi.Absolute)
}

func (fi File) Open() (*os.File, error) {
	return os.Open(fi.Absolute)
}

func (fi File) Raw() ([]byte, error) {
	f, err := fi.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// New builds a FileSet from explicit paths, recursing into directories.
func New(paths ...string) (out FileSet, err error) {
	for _, v := range paths {
		absolute, err := filepath.Abs(v)
		if err != nil {
			return nil, fmt.Errorf("abs: %w", err)
		}
		info, err := os.Stat(absolute)
		if err != nil {
			return nil, fmt.Errorf("stat: %w", err)
		}
		if info.IsDir() {
			children, err := RecursiveChildren(absolute)
			if err != nil {
				return nil, err
			}
			out = append(out, children...)
			continue
		}
		out = append(out, File{fs.FileInfoToDirEntry(info), absolute, filepath.Base(absolute)})
	}
	return out, nil
}

// RecursiveChildren returns every file under dir, skipping hidden
// directories like .git along the way.
func RecursiveChildren(dir string) (found FileSet, err error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("abs: %w", err)
	}
	queue, err := ReadDir(root)
	if err != nil {
		return nil, err
	}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if !current.IsDir() {
			current.Relative = strings.TrimPrefix(current.Absolute, root+"/")
			found = append(found, current)
			continue
		}
		if strings.HasPrefix(current.Name(), ".") {
			logger.Debugf(context.Background(), "skipping %s", current.Absolute)
			continue
		}
		children, err := ReadDir(current.Absolute)
		if err != nil {
			return nil, err
		}
		queue = append(queue, children...)
	}
	return found, nil
}

func ReadDir(dir string) (queue []File, err error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()
	dirs, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	for _, v := range dirs {
		absolute, err := filepath.Abs(path.Join(dir, v.Name()))
		if err != nil {
			return nil, fmt.Errorf("abs: %w", err)
		}
		queue = append(queue, File{v, absolute, ""})
	}
	return
}
