package frontmatter

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const schemaURL = "frontmatter.schema.json"

//go:embed schema/frontmatter.schema.json
var schemaJSON []byte

var english = message.NewPrinter(language.English)

var loadSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("decoding front matter schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("registering front matter schema: %w", err)
	}
	sch, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling front matter schema: %w", err)
	}
	return sch, nil
})

// ValidationResult is the outcome of checking one front matter block.
type ValidationResult struct {
	Format Format
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one schema violation.
type ValidationIssue struct {
	Path    string // JSON pointer into the front matter, "" for the root
	Message string
	Keyword string
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Validate checks a YAML front matter block, delimiters removed. Only
// unreadable YAML is returned as an error; schema violations are Issues.
func Validate(data []byte) (*ValidationResult, error) {
	sch, err := loadSchema()
	if err != nil {
		return nil, err
	}
	inst, err := toInstance(data)
	if err != nil {
		return nil, err
	}

	res := &ValidationResult{Format: FormatYAML, Valid: true}
	if err := sch.Validate(inst); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return nil, fmt.Errorf("validating front matter: %w", err)
		}
		res.Valid = false
		res.Issues = issuesOf(ve)
	}
	return res, nil
}

// toInstance turns YAML into the JSON value model the validator works on.
// An empty block becomes an empty object.
func toInstance(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML front matter: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	buf, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("front matter is not JSON-compatible: %w", err)
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(buf))
}

// ValidateContent checks the front matter of a whole content file. TOML front
// matter is recognised but not validated.
func ValidateContent(content string) (*ValidationResult, error) {
	format, front, _ := Split(content)
	switch format {
	case FormatYAML:
		return Validate([]byte(front))
	case FormatTOML:
		return &ValidationResult{Format: FormatTOML, Valid: true}, nil
	default:
		return &ValidationResult{
			Format: FormatNone,
			Valid:  false,
			Issues: []ValidationIssue{{Message: "no front matter block found"}},
		}, nil
	}
}

// issuesOf flattens the error tree to its leaves, dropping allOf/$ref
// wrappers and repeats.
func issuesOf(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	seen := make(map[ValidationIssue]bool)

	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		for _, cause := range e.Causes {
			walk(cause)
		}
		if len(e.Causes) > 0 || e.ErrorKind == nil {
			return
		}
		kw := e.ErrorKind.KeywordPath()
		if len(kw) == 0 {
			return
		}

		issue := ValidationIssue{
			Keyword: kw[len(kw)-1],
			Message: e.ErrorKind.LocalizedString(english),
		}
		if issue.Keyword == "allOf" || issue.Keyword == "$ref" {
			return
		}
		if len(e.InstanceLocation) > 0 {
			issue.Path = "/" + strings.Join(e.InstanceLocation, "/")
		}
		if !seen[issue] {
			seen[issue] = true
			issues = append(issues, issue)
		}
	}
	walk(ve)

	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	return issues
}
