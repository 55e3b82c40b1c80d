package frontmatter

import "go.yaml.in/yaml/v3"

// Title returns the title field of a content file's YAML front matter, or ""
// when there is none or it cannot be parsed.
func Title(content string) string {
	format, front, _ := Split(content)
	if format != FormatYAML {
		return ""
	}
	var fields struct {
		Title string `yaml:"title"`
	}
	if err := yaml.Unmarshal([]byte(front), &fields); err != nil {
		return ""
	}
	return fields.Title
}
