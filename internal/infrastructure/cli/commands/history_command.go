package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/doeshing/coach-go/internal/app"
	"github.com/doeshing/coach-go/internal/domain"
	"github.com/doeshing/coach-go/internal/infrastructure/cli/helpers"
	historyinfra "github.com/doeshing/coach-go/internal/infrastructure/history"
	"github.com/doeshing/coach-go/internal/pkg/filesystem"
)

// NewHistoryCommand creates the history command with all subcommands
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect past plans",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryShowCommand(container),
		newHistorySearchCommand(container),
		newHistoryClearCommand(container),
		newHistoryExportCommand(container),
	)

	return historyCmd
}

// newHistoryListCommand creates the 'history list' subcommand
func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List history entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHistoryEntries(cmd.Context(), cmd.OutOrStdout(), container, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Max entries to show (0 for all)")
	return cmd
}

// newHistoryShowCommand creates the 'history show' subcommand
func newHistoryShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id|latest]",
		Short: "Show a stored plan with its parameters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := LatestEntry
			if len(args) == 1 {
				id = args[0]
			}
			entry, err := findEntry(cmd, container, id)
			if err != nil {
				return err
			}
			helpers.RenderHistoryEntry(cmd.OutOrStdout(), entry)
			return nil
		},
	}
}

// newHistorySearchCommand creates the 'history search' subcommand
func newHistorySearchCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search goals, questions and plans for a keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.HistoryService == nil {
				return fmt.Errorf(ErrHistoryServiceUnavailable)
			}
			entries, err := container.HistoryService.Search(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to search history: %w", err)
			}
			helpers.RenderHistoryList(cmd.OutOrStdout(), entries, limit)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Max entries to show (0 for all)")
	return cmd
}

// newHistoryClearCommand creates the 'history clear' subcommand
func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every history entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.HistoryService == nil {
				return fmt.Errorf(ErrHistoryServiceUnavailable)
			}
			if err := container.HistoryService.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), helpers.MsgHistoryCleared)
			return nil
		},
	}
}

// newHistoryExportCommand creates the 'history export' subcommand
func newHistoryExportCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Export history as a JSON array (stdout when no path is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_, err := exportHistory(cmd.Context(), cmd.OutOrStdout(), container)
				return err
			}
			return exportHistoryToFile(cmd.Context(), cmd.OutOrStdout(), container, args[0])
		},
	}
}

// listHistoryEntries prints the stored entries
func listHistoryEntries(ctx context.Context, out io.Writer, container *app.Container, limit int) error {
	if container.HistoryService == nil {
		return fmt.Errorf(ErrHistoryServiceUnavailable)
	}

	entries, err := container.HistoryService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	helpers.RenderHistoryList(out, entries, limit)
	return nil
}

// findEntry resolves an id argument, accepting "latest"
func findEntry(cmd *cobra.Command, container *app.Container, id string) (domain.HistoryEntry, error) {
	if container.HistoryService == nil {
		return domain.HistoryEntry{}, fmt.Errorf(ErrHistoryServiceUnavailable)
	}

	if id == LatestEntry {
		entry, ok, err := container.HistoryService.Latest(cmd.Context())
		if err != nil {
			return domain.HistoryEntry{}, fmt.Errorf("failed to load history: %w", err)
		}
		if !ok {
			return domain.HistoryEntry{}, domain.ErrNoPlan
		}
		return entry, nil
	}

	numeric, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("invalid history id %q", id)
	}
	entry, ok, err := container.HistoryService.Find(cmd.Context(), numeric)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("failed to load history: %w", err)
	}
	if !ok {
		return domain.HistoryEntry{}, fmt.Errorf(ErrUnknownHistoryEntry, id)
	}
	return entry, nil
}

func exportHistory(ctx context.Context, w io.Writer, container *app.Container) (int, error) {
	if container.HistoryStore == nil {
		return 0, fmt.Errorf(ErrHistoryServiceUnavailable)
	}
	count, err := historyinfra.Export(ctx, container.HistoryStore, w)
	if err != nil {
		return 0, fmt.Errorf("failed to export history: %w", err)
	}
	return count, nil
}

// exportHistoryToFile writes the export to path atomically
func exportHistoryToFile(ctx context.Context, out io.Writer, container *app.Container, path string) error {
	path = filesystem.ExpandHome(path)

	var buf bytes.Buffer
	count, err := exportHistory(ctx, &buf, container)
	if err != nil {
		return err
	}
	if err := filesystem.WriteFileAtomic(path, buf.Bytes(), domain.ExportFilePermissions); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(out, "Exported %d entries to %s\n", count, path)
	return nil
}
