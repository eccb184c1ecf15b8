package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rehab-roi/domain"
	"rehab-roi/service"
)

// readInput decodes the JSON file at path ("-" reads stdin) into dst.
func readInput(cmd *cobra.Command, path string, dst any) error {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("failed to parse input %s: %w", path, err)
	}
	return nil
}

// inputCommand builds a subcommand that reads a JSON input file and renders
// the result either as JSON or through the named report template.
func (cli *CLI) inputCommand(use, short string, run func(cmd *cobra.Command, path string) (any, string, error)) *cobra.Command {
	var (
		path    string
		rawJSON bool
	)
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, tmpl, err := run(cmd, path)
			if err != nil {
				return err
			}
			return newReporter(cli.out).write(result, tmpl, rawJSON)
		},
	}
	cmd.Flags().StringVarP(&path, "input", "i", "", "Path to a JSON input file (- for stdin)")
	cmd.Flags().BoolVar(&rawJSON, "json", false, "Print the raw JSON result")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func (cli *CLI) newAnalyzeCmd() *cobra.Command {
	return cli.inputCommand("analyze", "Run the full ROI analysis for a property", func(cmd *cobra.Command, path string) (any, string, error) {
		input := domain.DefaultROIInput()
		if err := readInput(cmd, path, &input); err != nil {
			return nil, "", err
		}
		result, err := service.CalculateROI(input)
		return result, "roi", err
	})
}

func (cli *CLI) newCompareCmd() *cobra.Command {
	return cli.inputCommand("compare", "Compare flip, rental and wholetail strategies", func(cmd *cobra.Command, path string) (any, string, error) {
		input := domain.DefaultROIInput()
		if err := readInput(cmd, path, &input); err != nil {
			return nil, "", err
		}
		result, err := service.CompareStrategies(cmd.Context(), input)
		return result, "compare", err
	})
}

func (cli *CLI) newCashFlowCmd() *cobra.Command {
	return cli.inputCommand("cash-flow", "Project month-by-month cash flow", func(cmd *cobra.Command, path string) (any, string, error) {
		input := domain.DefaultROIInput()
		if err := readInput(cmd, path, &input); err != nil {
			return nil, "", err
		}
		result, err := service.ProjectDetailedCashFlow(input)
		return result, "cashflow", err
	})
}

func (cli *CLI) newBudgetCmd() *cobra.Command {
	return cli.inputCommand("budget", "Allocate a rehab budget across renovation items", func(cmd *cobra.Command, path string) (any, string, error) {
		var input domain.BudgetInput
		if err := readInput(cmd, path, &input); err != nil {
			return nil, "", err
		}
		result, err := service.OptimizeRehabBudget(input)
		return result, "budget", err
	})
}

func (cli *CLI) newFinancingCmd() *cobra.Command {
	var (
		input   domain.FinancingInput
		rawJSON bool
	)
	cmd := &cobra.Command{
		Use:   "financing",
		Short: "Compare cash, conventional, investment and hard money financing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := service.CalculateFinancingScenarios(input)
			if err != nil {
				return err
			}
			return newReporter(cli.out).write(result, "financing", rawJSON)
		},
	}
	cmd.Flags().Float64Var(&input.PurchasePrice, "purchase", 0, "Purchase price")
	cmd.Flags().Float64Var(&input.RehabCost, "rehab", 0, "Rehab cost")
	cmd.Flags().Float64Var(&input.ARV, "arv", 0, "After-repair value")
	cmd.Flags().BoolVar(&rawJSON, "json", false, "Print the raw JSON result")
	_ = cmd.MarkFlagRequired("purchase")
	_ = cmd.MarkFlagRequired("arv")
	return cmd
}
