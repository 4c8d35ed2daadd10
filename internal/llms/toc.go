package llms

import (
	"fmt"
	"strings"
)

// GenerateTOC renders one `- [title](link): description` line per page,
// joined with single newlines. Entries keep the input order exactly; callers
// supply pages in the desired navigational order. The `: description` suffix
// is emitted only when a description was found.
func GenerateTOC(files []PreparedFile, opts GenerateOptions) string {
	lines := make([]string, 0, len(files))
	for _, file := range files {
		link := NormalizePath(relativeTo(opts.SrcDir, file.Path), opts.LinkOptions)
		entry := fmt.Sprintf("- [%s](%s)", file.Title, link)
		if desc := ExtractDescription(file); desc != "" {
			entry += ": " + desc
		}
		lines = append(lines, entry)
	}
	return strings.Join(lines, "\n")
}
