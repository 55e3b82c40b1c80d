package cli

import (
	"fmt"
	"time"

	"github.com/hugopost/hugopost/internal/config"
	"github.com/hugopost/hugopost/internal/log"
	"github.com/hugopost/hugopost/internal/placeholder"
	"github.com/hugopost/hugopost/internal/runner"
	"github.com/hugopost/hugopost/internal/scaffold"
	"github.com/hugopost/hugopost/internal/stamp"
	"github.com/hugopost/hugopost/internal/workspace"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	newTemplate string
	newLiteral  bool
	newOpen     string
	newDryRun   bool
)

// Overridden in tests.
var (
	newFs    = afero.NewOsFs
	newClock stamp.Clock = time.Now
)

func init() {
	newCmd.Flags().StringVarP(&newTemplate, "template", "t", "", "Template file with date placeholders (default: template setting)")
	newCmd.Flags().BoolVar(&newLiteral, "literal", false, "Use the built-in template even if one is configured")
	newCmd.Flags().StringVar(&newOpen, "open", "", "Open the new post afterwards: none, editor or obsidian (default: open setting)")
	newCmd.Flags().BoolVar(&newDryRun, "dry-run", false, "Print what would be created without writing anything")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new post bundle",
	Long: `Create content/post/<YYYY-MM-DD_HHMMSS>/ with an empty images/ folder and an
index.md file.

Without a template the built-in front matter is written as-is. With a template,
{{ .Date }} and {{ now.Format "2006-01-02T15:04:05-07:00" }} are replaced with
the current time in YYYY-MM-DDTHH:MM:SS+08:00 form.

Examples:
  hugopost new
  hugopost new --template archetypes/post.md --open obsidian
  hugopost new --literal --dry-run`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	root := settings.VaultRoot
	mode := resolveMode(root)

	openKind := settings.Open
	if newOpen != "" {
		openKind = newOpen
	}
	ws, err := workspace.New(openKind, root, settings.ObsidianVault, &runner.Exec{Dir: root})
	if err != nil {
		return err
	}

	s := &scaffold.Scaffolder{
		Root:      root,
		Fs:        newFs(),
		Clock:     newClock,
		Sink:      sinkFor(cmd, "scaffold"),
		Workspace: ws,
		Log:       log.For("scaffold"),
		OpenDelay: settings.OpenDelay,
	}

	if newDryRun {
		return printPlan(cmd, s, mode)
	}

	if _, err := s.Create(cmd.Context(), mode); err != nil {
		return reported(err)
	}
	return nil
}

// resolveMode picks Literal or FromTemplate from flags and settings.
func resolveMode(root string) scaffold.Mode {
	if newLiteral {
		return scaffold.Literal()
	}
	tmpl := settings.Template
	if newTemplate != "" {
		tmpl = newTemplate
	}
	if tmpl == "" {
		return scaffold.Literal()
	}
	return scaffold.FromTemplate(config.ResolvePath(root, tmpl))
}

func printPlan(cmd *cobra.Command, s *scaffold.Scaffolder, mode scaffold.Mode) error {
	res, err := s.Plan(mode)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Would create %s/\n", res.PostDir)
	fmt.Fprintf(out, "  %s/\n", scaffold.ImagesDir)
	fmt.Fprintf(out, "  %s\n", scaffold.IndexFile)
	if mode.IsLiteral() {
		fmt.Fprintln(out, "Template: built-in")
	} else {
		fmt.Fprintf(out, "Template: %s (%d date placeholders)\n", mode.TemplatePath, placeholder.Count(readTemplate(s, mode)))
	}
	fmt.Fprintf(out, "Date: %s\n", res.ISODate)
	if len(res.Warnings) > 0 {
		fmt.Fprintln(out, "\nWarnings:")
		for _, w := range res.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}
	return nil
}

func readTemplate(s *scaffold.Scaffolder, mode scaffold.Mode) string {
	data, err := afero.ReadFile(s.Fs, mode.TemplatePath)
	if err != nil {
		return ""
	}
	return string(data)
}
