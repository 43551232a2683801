package agents

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/gykk16/air-claudecode/pkg/logger"
)

const (
	// agentsDirName is the fixed-name subdirectory holding descriptor files.
	agentsDirName = "agents"
	// descriptorExt is the extension descriptor files must carry.
	descriptorExt = ".md"
)

// Descriptor is one raw agent descriptor file as found on disk.
type Descriptor struct {
	Path string
	Text string
}

// ResolveDir returns the descriptor directory under the given project root.
// An empty root falls back to the parent of the running binary's directory,
// so a hook installed at <repo>/bin/air-hooks discovers <repo>/agents without
// any configuration.
func ResolveDir(root string) (string, error) {
	if root == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", errors.Wrap(err, "failed to locate the running binary")
		}
		root = filepath.Dir(filepath.Dir(exe))
	}
	return filepath.Join(root, agentsDirName), nil
}

// Scanner lists and reads descriptor files from a single directory.
type Scanner struct {
	dir string
}

// NewScanner creates a scanner over the given descriptor directory.
func NewScanner(dir string) *Scanner {
	return &Scanner{dir: dir}
}

// Dir returns the directory the scanner reads from.
func (s *Scanner) Dir() string {
	return s.dir
}

// Scan lists descriptor files directly inside the directory (no recursion)
// and reads each one in listing order. A missing or unreadable directory is a
// normal outcome and yields an empty result; a file that cannot be read is an
// unexpected failure and aborts the scan.
func (s *Scanner) Scan(ctx context.Context) ([]Descriptor, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		logger.G(ctx).WithField("dir", s.dir).WithError(err).Debug("agents directory not readable, skipping")
		return nil, nil
	}

	var descriptors []Descriptor
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), descriptorExt) {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		text, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read descriptor '%s'", path)
		}

		descriptors = append(descriptors, Descriptor{Path: path, Text: string(text)})
	}

	logger.G(ctx).WithField("count", len(descriptors)).WithField("dir", s.dir).Debug("scanned agent descriptors")
	return descriptors, nil
}
