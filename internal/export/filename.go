package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	layoutMu      sync.Mutex
	lastLayoutTs  string
	layoutCounter int
)

// NextLayoutID returns a unique ID of the form "YYYYMMDD-HHMMSS-NN" for
// the given timestamp. The counter resets to 01 each new second.
func NextLayoutID(ts time.Time) string {
	layoutMu.Lock()
	defer layoutMu.Unlock()
	tsStr := ts.Format("20060102-150405")
	if tsStr == lastLayoutTs {
		layoutCounter++
	} else {
		lastLayoutTs = tsStr
		layoutCounter = 1
	}
	return fmt.Sprintf("%s-%02d", tsStr, layoutCounter)
}

// BuildPath returns dir/layout_<id><ext>.
func BuildPath(dir, id, ext string) string {
	return filepath.Join(dir, fmt.Sprintf("layout_%s%s", id, ext))
}

// EnsureDir creates the directory component of path (equivalent to mkdir -p)
// with mode 0755. It is a no-op if the directory already exists.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
