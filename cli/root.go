package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	out     io.Writer
	cfgPath string
	rootCmd *cobra.Command
}

// New creates the CLI writing reports to out (stdout when nil).
func New(out io.Writer) *CLI {
	if out == nil {
		out = os.Stdout
	}
	cli := &CLI{out: out}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides os.Args, for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rehab-roi",
		Short:         "Renovation investment return engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(cli.out)
	cmd.PersistentFlags().StringVarP(&cli.cfgPath, "config", "c", "", "Path to a YAML config file")

	cmd.AddCommand(cli.newServeCmd())
	cmd.AddCommand(cli.newAnalyzeCmd())
	cmd.AddCommand(cli.newCompareCmd())
	cmd.AddCommand(cli.newCashFlowCmd())
	cmd.AddCommand(cli.newBudgetCmd())
	cmd.AddCommand(cli.newFinancingCmd())

	return cmd
}
