package utils

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// FileNameFromURL returns what follows the last slash of the escaped URL
// path. Percent escapes are kept, so the name is always a single path
// element. A path ending in a slash has no file name.
func FileNameFromURL(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	escaped := parsed.EscapedPath()
	name := escaped[strings.LastIndex(escaped, "/")+1:]
	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("no file name in URL path %q", escaped)
	}
	if strings.ContainsRune(name, '\\') || filepath.Base(name) != name {
		return "", fmt.Errorf("unsafe file name %q in URL path", name)
	}
	return name, nil
}
