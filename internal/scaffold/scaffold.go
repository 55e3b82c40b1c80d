package scaffold

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"time"

	"github.com/hugopost/hugopost/internal/frontmatter"
	"github.com/hugopost/hugopost/internal/notify"
	"github.com/hugopost/hugopost/internal/placeholder"
	"github.com/hugopost/hugopost/internal/stamp"
	"github.com/hugopost/hugopost/internal/workspace"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Layout of a post bundle inside the site root.
const (
	PostsDir  = "content/post"
	ImagesDir = "images"
	IndexFile = "index.md"
)

// Mode selects where post content comes from. The zero value is Literal.
type Mode struct {
	// TemplatePath, when set, is read and has its date placeholders filled.
	TemplatePath string
}

// Literal uses the embedded template as-is.
func Literal() Mode { return Mode{} }

// FromTemplate loads content from path.
func FromTemplate(path string) Mode { return Mode{TemplatePath: path} }

// IsLiteral reports whether m uses the embedded template.
func (m Mode) IsLiteral() bool { return m.TemplatePath == "" }

// Result holds the outcome of a successful scaffold.
type Result struct {
	FolderName string
	ISODate    string
	PostDir    string
	IndexPath  string
	// VaultPath is IndexPath relative to the root, always slash-separated.
	VaultPath string
	Content   string
	Warnings  []string
}

// Scaffolder creates post bundles under Root.
type Scaffolder struct {
	Root      string
	Fs        afero.Fs
	Clock     stamp.Clock
	Sink      notify.Sink
	Workspace workspace.Workspace
	Log       *logrus.Entry
	// OpenDelay is waited out between writing the post and opening it.
	OpenDelay time.Duration
}

// Plan computes the names and content for a post without touching the
// directory tree. Template read failures are returned as *TemplateReadError.
func (s *Scaffolder) Plan(mode Mode) (*Result, error) {
	now := s.now()
	folder := stamp.FolderName(now)
	isoDate := stamp.ISODate(now)

	postDir := filepath.Join(s.Root, filepath.FromSlash(PostsDir), folder)
	res := &Result{
		FolderName: folder,
		ISODate:    isoDate,
		PostDir:    postDir,
		IndexPath:  filepath.Join(postDir, IndexFile),
		VaultPath:  path.Join(PostsDir, folder, IndexFile),
	}

	if mode.IsLiteral() {
		res.Content = BuiltinTemplate()
	} else {
		raw, err := afero.ReadFile(s.Fs, mode.TemplatePath)
		if err != nil {
			return nil, &TemplateReadError{Path: mode.TemplatePath, Err: err}
		}
		res.Content = placeholder.Substitute(string(raw), isoDate)
	}

	res.Warnings = checkFrontMatter(res.Content)
	return res, nil
}

// Create scaffolds a new post. Any failure is logged, reported to the sink and
// returned; directories created before the failure are left in place.
func (s *Scaffolder) Create(ctx context.Context, mode Mode) (*Result, error) {
	res, err := s.create(mode)
	if err != nil {
		s.log().WithError(err).Error("creating post failed")
		s.Sink.Notify(notify.Failure(fmt.Sprintf("Failed to create post: %v", err)))
		return nil, err
	}

	log := s.log().WithField("folder", res.FolderName)
	for _, w := range res.Warnings {
		log.WithField("path", res.IndexPath).Warn("front matter: " + w)
	}
	log.WithField("path", res.IndexPath).Info("post created")
	s.Sink.Notify(notify.Success("Created post " + res.FolderName))

	s.open(ctx, log, res.VaultPath)
	return res, nil
}

func (s *Scaffolder) create(mode Mode) (*Result, error) {
	res, err := s.Plan(mode)
	if err != nil {
		return nil, err
	}

	// The post directory may already exist; images must not.
	if err := s.Fs.MkdirAll(res.PostDir, 0755); err != nil {
		return nil, &FileSystemError{Op: "mkdir", Path: res.PostDir, Err: err}
	}
	imagesDir := filepath.Join(res.PostDir, ImagesDir)
	if err := s.Fs.Mkdir(imagesDir, 0755); err != nil {
		return nil, &FileSystemError{Op: "mkdir", Path: imagesDir, Err: err}
	}

	if err := afero.WriteFile(s.Fs, res.IndexPath, []byte(res.Content), 0644); err != nil {
		return nil, &FileSystemError{Op: "write", Path: res.IndexPath, Err: err}
	}
	return res, nil
}

// open hands the new file to the workspace. The post already exists at this
// point, so a failure here is reported but does not fail the command.
func (s *Scaffolder) open(ctx context.Context, log *logrus.Entry, vaultPath string) {
	if s.Workspace == nil {
		return
	}
	if s.OpenDelay > 0 {
		select {
		case <-time.After(s.OpenDelay):
		case <-ctx.Done():
			return
		}
	}
	if err := s.Workspace.Open(ctx, vaultPath); err != nil {
		log.WithError(err).Warn("opening post failed")
		s.Sink.Notify(notify.Failure(fmt.Sprintf("Could not open %s: %v", vaultPath, err)))
	}
}

func (s *Scaffolder) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock()
}

func (s *Scaffolder) log() *logrus.Entry {
	if s.Log == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return s.Log
}

// checkFrontMatter validates content and converts problems into warnings.
func checkFrontMatter(content string) []string {
	result, err := frontmatter.ValidateContent(content)
	if err != nil {
		return []string{fmt.Sprintf("could not validate front matter: %v", err)}
	}
	var warnings []string
	for _, issue := range result.Issues {
		warnings = append(warnings, issue.String())
	}
	return warnings
}
