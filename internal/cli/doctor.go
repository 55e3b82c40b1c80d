package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/hugopost/hugopost/internal/config"
	"github.com/hugopost/hugopost/internal/frontmatter"
	"github.com/hugopost/hugopost/internal/hugo"
	"github.com/hugopost/hugopost/internal/platform"
	"github.com/hugopost/hugopost/internal/runner"
	"github.com/hugopost/hugopost/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	doctorFix      bool
	doctorSkipHugo bool
	checkTemplate  string
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Make the deploy script executable if it is not")
	doctorCmd.Flags().BoolVar(&doctorSkipHugo, "skip-hugo", false, "Do not check the installed Hugo version")
	doctorCmd.Flags().StringVar(&checkTemplate, "check-template", "", "Validate the front matter of the given template file")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the vault, template, deploy script and Hugo install",
	Long:  `Run diagnostic checks on the configured site root and tools.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := &doctor{out: cmd.OutOrStdout()}
		root := settings.VaultRoot

		if checkTemplate != "" {
			d.checkTemplate(config.ResolvePath(root, checkTemplate))
			return d.result()
		}

		d.checkRoot(root)
		if settings.Template != "" {
			d.checkTemplate(config.ResolvePath(root, settings.Template))
		}
		d.checkDeployScript(config.ResolvePath(root, settings.DeployScript), doctorFix)
		d.checkBinary(settings.Shell)
		if !doctorSkipHugo {
			d.checkHugo(cmd.Context(), settings.HugoMinVersion)
		}
		return d.result()
	},
}

// doctor prints check lines and counts failures.
type doctor struct {
	out      io.Writer
	failures int
}

func (d *doctor) ok(format string, a ...interface{}) {
	fmt.Fprintf(d.out, "  [ OK ] "+format+"\n", a...)
}

func (d *doctor) warn(format string, a ...interface{}) {
	fmt.Fprintf(d.out, "  [WARN] "+format+"\n", a...)
}

func (d *doctor) fail(format string, a ...interface{}) {
	d.failures++
	fmt.Fprintf(d.out, "  [FAIL] "+format+"\n", a...)
}

func (d *doctor) result() error {
	if d.failures > 0 {
		return fmt.Errorf("doctor found %d problem(s)", d.failures)
	}
	return nil
}

func (d *doctor) checkRoot(root string) {
	fmt.Fprintf(d.out, "Site root: %s\n", root)
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		d.fail("site root %s is not a directory", root)
		return
	}
	d.ok("site root exists")

	postsDir := filepath.Join(root, filepath.FromSlash(scaffold.PostsDir))
	if info, err := os.Stat(postsDir); err != nil || !info.IsDir() {
		d.warn("%s does not exist yet; it will be created by the first post", scaffold.PostsDir)
		return
	}
	d.ok("%s exists", scaffold.PostsDir)
}

func (d *doctor) checkTemplate(path string) {
	fmt.Fprintf(d.out, "Template: %s\n", path)
	data, err := os.ReadFile(path) //nolint:gosec // User-specified file path is expected CLI behavior
	if err != nil {
		d.fail("cannot read template: %v", err)
		return
	}

	result, err := frontmatter.ValidateContent(string(data))
	if err != nil {
		d.fail("%v", err)
		return
	}
	if result.Valid {
		d.ok("front matter is valid (%s)", formatName(result.Format))
		return
	}
	d.fail("%d front matter issue(s):", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(d.out, "    - %s\n", issue)
	}
}

func formatName(f frontmatter.Format) string {
	if f == frontmatter.FormatTOML {
		return "toml, not validated"
	}
	return string(f)
}

func (d *doctor) checkDeployScript(path string, fix bool) {
	fmt.Fprintf(d.out, "Deploy script: %s\n", path)
	executable, err := platform.IsExecutable(path)
	if err != nil {
		d.fail("%v", err)
		return
	}
	if executable {
		d.ok("script is executable")
		return
	}
	if !fix {
		d.warn("script is not executable (run with --fix to chmod it)")
		return
	}
	if err := platform.MakeExecutable(path); err != nil {
		d.fail("%v", err)
		return
	}
	d.ok("made script executable")
}

func (d *doctor) checkBinary(name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		d.fail("%s not found on PATH", name)
		return
	}
	d.ok("%s found at %s", name, path)
}

func (d *doctor) checkHugo(ctx context.Context, min string) {
	fmt.Fprintln(d.out, "Hugo:")
	v, err := hugo.Installed(ctx, &runner.Exec{})
	if err != nil {
		d.warn("%v", err)
		return
	}
	ok, err := hugo.SatisfiesMinimum(v, min)
	if err != nil {
		d.fail("%v", err)
		return
	}
	if !ok {
		d.fail("hugo %s is older than the required %s", v, min)
		return
	}
	d.ok("hugo %s (>= %s)", v, min)
}
