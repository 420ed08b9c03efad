package testutils

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

// CreateTree creates entries under root. A name ending in "/" is a
// directory, a value starting with "-> " is a symlink to the rest of the
// value, anything else is a file with that content. Parents are created as
// needed.
func CreateTree(t testing.TB, root string, entries map[string]string) {
	t.Helper()
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	// Directories before the links that may point at them
	sort.Strings(names)

	for _, name := range names {
		content := entries[name]
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		switch {
		case strings.HasSuffix(name, "/"):
			require.NoError(t, os.MkdirAll(path, 0o755))
		case strings.HasPrefix(content, "-> "):
			require.NoError(t, os.Symlink(strings.TrimPrefix(content, "-> "), path))
		default:
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		}
	}
}

// StripANSI removes terminal styling from rendered output
func StripANSI(s string) string {
	return ansi.Strip(s)
}
