package docs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"git.home.luguber.info/inful/llmstxt/internal/frontmatter"
	"git.home.luguber.info/inful/llmstxt/internal/llms"
	"git.home.luguber.info/inful/llmstxt/internal/logfields"
	"git.home.luguber.info/inful/llmstxt/internal/observability"
)

// ErrSrcDirWalkFailed indicates the source directory could not be traversed.
var ErrSrcDirWalkFailed = fmt.Errorf("failed to walk source directory")

// Discovery finds Markdown documentation pages under a source directory and
// prepares them for generation.
type Discovery struct {
	srcDir         string
	ignorePatterns []string
}

// NewDiscovery creates a discovery instance for srcDir. Ignore patterns use
// doublestar glob syntax and match against slash-separated paths relative to
// srcDir.
func NewDiscovery(srcDir string, ignorePatterns []string) *Discovery {
	return &Discovery{srcDir: srcDir, ignorePatterns: ignorePatterns}
}

// DiscoverFiles walks the source directory and returns one PreparedFile per
// Markdown page, in lexical walk order. Hidden directories and ignored paths
// are skipped. A file which cannot be read is skipped with a warning; a file
// whose front-matter is malformed is kept with its raw content so the
// assembler's per-page fallback still covers it.
func (d *Discovery) DiscoverFiles(ctx context.Context) ([]llms.PreparedFile, error) {
	files := make([]llms.PreparedFile, 0)

	err := filepath.WalkDir(d.srcDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(d.srcDir, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if entry.IsDir() {
			if rel != "." && (strings.HasPrefix(entry.Name(), ".") || d.ignored(rel)) {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.EqualFold(filepath.Ext(entry.Name()), ".md") || d.ignored(rel) {
			return nil
		}

		file, ok := d.prepare(ctx, path)
		if ok {
			files = append(files, file)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSrcDirWalkFailed, d.srcDir, err)
	}

	observability.DebugContext(ctx, "Documentation discovery finished",
		logfields.Path(d.srcDir), logfields.FileCount(len(files)))
	return files, nil
}

// prepare reads one page and extracts its metadata.
func (d *Discovery) prepare(ctx context.Context, path string) (llms.PreparedFile, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		observability.WarnContext(ctx, "Skipping unreadable documentation file",
			logfields.File(path), logfields.Error(err))
		return llms.PreparedFile{}, false
	}

	file := llms.PreparedFile{Path: path, Frontmatter: map[string]any{}}

	fm, body, _, err := frontmatter.Split(raw)
	if err != nil {
		observability.WarnContext(ctx, "Malformed front-matter, keeping raw content",
			logfields.File(path), logfields.Error(err))
		file.Content = string(raw)
	} else {
		file.Content = string(body)
		fields, parseErr := frontmatter.ParseYAML(fm)
		if parseErr != nil {
			observability.WarnContext(ctx, "Unparsable front-matter, keeping raw content",
				logfields.File(path), logfields.Error(parseErr))
			file.Content = string(raw)
		} else {
			file.Frontmatter = fields
		}
	}

	file.Title = llms.ExtractTitle(file)
	return file, true
}

func (d *Discovery) ignored(rel string) bool {
	for _, pattern := range d.ignorePatterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
