// Package frontmatter splits the metadata block off a Hugo content file and
// checks YAML front matter against an embedded JSON Schema. Problems are
// reported as issues for the caller to surface; they are never fatal.
package frontmatter
