package frontmatter

import "strings"

// Format identifies the front matter syntax of a content file.
type Format string

const (
	FormatNone Format = ""
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var delimiters = map[string]Format{
	"---": FormatYAML,
	"+++": FormatTOML,
}

// Split separates the front matter block from the body. It returns FormatNone
// and the whole content as body when no complete block is found.
func Split(content string) (Format, string, string) {
	content = strings.TrimPrefix(content, "\ufeff")
	normalized := strings.ReplaceAll(content, "\r\n", "\n")

	firstLine, rest, ok := strings.Cut(normalized, "\n")
	if !ok {
		return FormatNone, "", content
	}
	delim := strings.TrimRight(firstLine, " \t")
	format, known := delimiters[delim]
	if !known {
		return FormatNone, "", content
	}

	var front []string
	lines := strings.Split(rest, "\n")
	for i, line := range lines {
		if strings.TrimRight(line, " \t") == delim {
			body := strings.Join(lines[i+1:], "\n")
			return format, strings.Join(front, "\n"), body
		}
		front = append(front, line)
	}
	return FormatNone, "", content
}
