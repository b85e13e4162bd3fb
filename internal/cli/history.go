package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/randstr/internal/model"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "history [RUN_ID]",
		Short: "List journalled runs, newest first",
		Long: `history lists the runs recorded in the journal, newest first, or shows a
single run when RUN_ID is given. With the default in-memory storage the
journal only lives as long as the process, so this is mainly useful with
--storage-type redis.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			out := NewOutput(format, cmd.OutOrStdout())

			if len(args) == 1 {
				run, err := app.GeneratorService.GetRun(cmd.Context(), model.RunID(args[0]))
				if err != nil {
					return err
				}
				out.Print(run)
				return nil
			}

			runs, err := app.GeneratorService.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if runs == nil {
				runs = []*model.Run{}
			}
			out.Print(runs)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	cmd.Flags().StringVarP(&format, "output", "o", FormatText, "Output format: text, json")

	return cmd
}

func newReplayCmd() *cobra.Command {
	var (
		format  string
		newline bool
	)

	cmd := &cobra.Command{
		Use:   "replay RUN_ID",
		Short: "Regenerate a journalled run from its recorded seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			result, err := app.GeneratorService.Replay(cmd.Context(), model.RunID(args[0]))
			if err != nil {
				return err
			}

			if format == FormatJSON {
				NewOutput(format, cmd.OutOrStdout()).Print(ReplayResult{
					String: result.Output,
					Seed:   result.Seed,
					Length: result.Length,
					RunID:  result.RunID,
				})
				return nil
			}
			printString(cmd.OutOrStdout(), result.Output, newline)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", FormatText, "Output format: text, json")
	cmd.Flags().BoolVarP(&newline, "newline", "n", false, "Print a trailing newline")

	return cmd
}

func checkFormat(format string) error {
	switch format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be %q or %q", format, FormatText, FormatJSON)
	}
}
