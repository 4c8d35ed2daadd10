package llms

import (
	"path"
	"path/filepath"
	"strings"
)

// NormalizePath converts a source-relative file path into a public link path.
//
// Backslash separators are normalized, the index.md convention collapses to
// the containing directory, and the link extension is rewritten (or stripped
// entirely under clean URLs). The result is root-relative, optionally
// prefixed with a domain. Pure string transformation, no filesystem access.
func NormalizePath(filePath string, opts LinkOptions) string {
	p := strings.ReplaceAll(filePath, "\\", "/")

	if path.Base(p) == "index.md" {
		p = path.Dir(p)
		if p == "." {
			p = ""
		}
	}

	if opts.CleanURLs {
		p = strings.TrimSuffix(p, path.Ext(p))
	} else if ext := path.Ext(p); ext != "" {
		// Only the final extension is rewritten; earlier dots stay.
		p = strings.TrimSuffix(p, ext) + opts.extension()
	} else if p != "" && p != "/" {
		p += opts.extension()
	}

	if p == "" {
		p = "/"
	} else if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	if opts.Domain != "" {
		return strings.TrimRight(opts.Domain, "/") + p
	}
	return p
}

// relativeTo computes the slash-separated path of file relative to srcDir.
// Paths outside srcDir (or an empty srcDir) pass through unchanged.
func relativeTo(srcDir, file string) string {
	if srcDir == "" {
		return filepath.ToSlash(file)
	}
	rel, err := filepath.Rel(srcDir, file)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(file)
	}
	return filepath.ToSlash(rel)
}
