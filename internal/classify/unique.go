package classify

import (
	"fmt"
	"path/filepath"
)

const maxUniqueAttempts = 1000

// UniqueName suggests a free name in dir for a new entry: base+ext first,
// then base2+ext, base3+ext and so on.
func (c *Classifier) UniqueName(dir, base, ext string) (string, error) {
	for n := 1; n <= maxUniqueAttempts; n++ {
		name := base + ext
		if n > 1 {
			name = fmt.Sprintf("%s%d%s", base, n, ext)
		}
		if _, err := c.fs.Lstat(filepath.Join(dir, name)); err != nil {
			return name, nil
		}
	}
	return "", fmt.Errorf("failed to find unique name for %s%s in %s after %d attempts", base, ext, dir, maxUniqueAttempts)
}

// UniqueName suggests a free name in dir on the real filesystem
func UniqueName(dir, base, ext string) (string, error) {
	return defaultClassifier.UniqueName(dir, base, ext)
}
