package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"orgdir/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent organize runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if ctx.jsonValue() {
				if runs == nil {
					runs = []history.Run{}
				}
				return writeJSON(cmd, runs)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded.")
				return nil
			}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				status := "complete"
				if run.Cancelled {
					status = "interrupted"
				}
				rows = append(rows, []string{
					run.ID,
					run.RecordedAt.Local().Format("2006-01-02 15:04:05"),
					run.Root,
					strconv.Itoa(run.TotalMoved),
					strconv.Itoa(run.Failed),
					strconv.Itoa(run.Unclassified),
					status,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Run", "When", "Directory", "Moved", "Failed", "Unclassified", "Status"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}
	historyCmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of runs to show (0 for all)")

	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	return historyCmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show RUN_ID",
		Short: "List the files one run moved or failed to move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			moves, err := store.Moves(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if ctx.jsonValue() {
				if moves == nil {
					moves = []history.Move{}
				}
				return writeJSON(cmd, moves)
			}

			out := cmd.OutOrStdout()
			if len(moves) == 0 {
				fmt.Fprintf(out, "No files recorded for run %s.\n", args[0])
				return nil
			}
			rows := make([][]string, 0, len(moves))
			for _, m := range moves {
				rows = append(rows, []string{m.Category, m.Name, m.Status, m.Reason})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Category", "File", "Status", "Reason"},
				rows,
				nil,
			))
			return nil
		},
	}
}

func openHistory(ctx *commandContext) (*history.Store, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		return nil, fmt.Errorf("open run history: %w", err)
	}
	return store, nil
}
