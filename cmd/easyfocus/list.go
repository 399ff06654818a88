package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/easyfocus/internal/adapter/input"
	"github.com/jmylchreest/easyfocus/internal/adapter/output"
	"github.com/jmylchreest/easyfocus/internal/core"
	"github.com/jmylchreest/easyfocus/internal/model"
	"github.com/jmylchreest/easyfocus/internal/sway"
)

var listOpts struct {
	format   string
	template string
	sep      string
	tree     string
	filter   string
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the labels for the focused workspace",
	Long: `Print the label, position and container id of every window on the
focused workspace, in label order, without showing an overlay.

Examples:
  # Aligned table
  easyfocus list

  # Pick a window with fuzzel and focus it
  easyfocus list --format dmenu | fuzzel -d | cut -d' ' -f1

  # Container ids only
  easyfocus list --format ids

  # Only terminals, keeping the labels the overlay would show
  easyfocus list --filter 'app~=^(foot|kitty)$'

  # Labels for a saved layout
  swaymsg -t get_tree | easyfocus list --tree -

  # Custom template
  easyfocus list --template '{{.Label}} {{.Window.ID}} {{.Window.AppID}}'`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listOpts.format, "format", "f", string(output.FormatPlain),
		"Output format (plain, dmenu, ids, json, yaml)")
	listCmd.Flags().StringVar(&listOpts.template, "template", "",
		"Go template applied to each hint (plain and dmenu formats)")
	listCmd.Flags().StringVar(&listOpts.sep, "separator", output.DefaultFormatterOptions().Separator,
		"Field separator for dmenu format")
	listCmd.Flags().StringVar(&listOpts.filter, "filter", "",
		"Filter expression (e.g., 'app=foot,focused=false')")
	listCmd.Flags().StringVar(&listOpts.tree, "tree", "",
		"Read the layout tree from a get_tree dump file (\"-\" for stdin) instead of the compositor")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	format, err := output.ParseFormat(listOpts.format)
	if err != nil {
		return err
	}

	opts := output.DefaultFormatterOptions()
	opts.Template = listOpts.template
	opts.Separator = listOpts.sep
	formatter, err := output.NewFormatter(format, opts)
	if err != nil {
		return err
	}

	filter, err := core.ParseFilter(listOpts.filter)
	if err != nil {
		return err
	}

	snap, err := listSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("query windows: %w", err)
	}

	margin := core.Margin{X: cfg.Label.MarginX, Y: cfg.Label.MarginY}
	table := output.Table{
		Output:    snap.Output,
		Workspace: snap.Workspace,
		Hints:     core.FilterHints(core.BuildHints(snap.Windows, snap.Output, margin), filter),
	}

	return formatter.Format(cmd.OutOrStdout(), table)
}

func listSnapshot(ctx context.Context) (model.Snapshot, error) {
	if listOpts.tree != "" {
		dir, err := input.NewTreeDirectory(listOpts.tree, logger)
		if err != nil {
			return model.Snapshot{}, err
		}
		return dir.Snapshot(ctx)
	}

	client, err := sway.Connect(ctx, logger)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to connect to compositor: %w", err)
	}
	defer func() { _ = client.Close() }()

	return sway.NewDirectory(client, logger).Snapshot(ctx)
}
