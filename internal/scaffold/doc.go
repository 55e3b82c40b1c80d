// Package scaffold creates a new Hugo page bundle for a blog post. It powers
// the "hugopost new" command: a timestamp-named directory under content/post
// with an empty images/ folder and an index.md built from either the embedded
// template or a user template with its date placeholders filled in.
package scaffold
