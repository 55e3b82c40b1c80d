package scaffold

import _ "embed"

// builtinTemplate is written verbatim in Literal mode. Its date field is a
// fixed value and is not replaced with the creation time.
//
//go:embed templates/index.md
var builtinTemplate string

// BuiltinTemplate returns the embedded post template.
func BuiltinTemplate() string {
	return builtinTemplate
}
