package cli

import (
	"github.com/hugopost/hugopost/internal/config"
	"github.com/hugopost/hugopost/internal/deploy"
	"github.com/hugopost/hugopost/internal/log"
	"github.com/hugopost/hugopost/internal/runner"
	"github.com/spf13/cobra"
)

var (
	deployScript string
	deployShell  string
	deployStream bool
)

func init() {
	deployCmd.Flags().StringVarP(&deployScript, "script", "s", "", "Deployment script (default: deploy_script setting)")
	deployCmd.Flags().StringVar(&deployShell, "shell", "", "Shell that runs the script (default: shell setting)")
	deployCmd.Flags().BoolVar(&deployStream, "stream", false, "Stream script output to the terminal while it runs")
	rootCmd.AddCommand(deployCmd)
}

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Run the blog deployment script",
	Long: `Run the configured deployment script through a shell from the site root.

A zero exit status is reported as success; anything else, or a script that
cannot be started, is reported as a failure with the script output logged.`,
	Args: cobra.NoArgs,
	RunE: runDeploy,
}

func runDeploy(cmd *cobra.Command, args []string) error {
	root := settings.VaultRoot

	script := settings.DeployScript
	if deployScript != "" {
		script = deployScript
	}
	shell := settings.Shell
	if deployShell != "" {
		shell = deployShell
	}

	r := &runner.Exec{Dir: root}
	if deployStream {
		r.Stdout = cmd.OutOrStdout()
		r.Stderr = cmd.ErrOrStderr()
	}

	inv := &deploy.Invoker{
		Runner: r,
		Sink:   sinkFor(cmd, "deploy"),
		Log:    log.For("deploy"),
		Shell:  shell,
	}

	outcome := inv.Deploy(cmd.Context(), config.ResolvePath(root, script))
	return reported(outcome.Err)
}
