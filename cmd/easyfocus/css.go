package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/easyfocus/internal/config"
	"github.com/jmylchreest/easyfocus/internal/theme"
)

var cssOpts struct {
	listThemes bool
}

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the generated stylesheet",
	Long: `Print the stylesheet the overlay would load: the colors and fonts from
the configuration followed by the selected theme.

User themes live in ~/.config/easyfocus/themes/<name>.css and override
bundled themes of the same name.`,
	RunE: runCSS,
}

func init() {
	rootCmd.AddCommand(cssCmd)

	cssCmd.Flags().BoolVar(&cssOpts.listThemes, "list-themes", false,
		"List available themes instead")
}

func runCSS(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	themesDir := config.ThemesDir()

	if cssOpts.listThemes {
		themes, err := theme.ListAvailableThemes(themesDir)
		if err != nil {
			return fmt.Errorf("failed to list themes: %w", err)
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, t := range themes {
			source := t.Path
			if t.Bundled {
				source = "(bundled)"
			}
			fmt.Fprintf(tw, "%s\t%s\n", t.Name, source)
		}
		return tw.Flush()
	}

	css, err := theme.NewLoader(cfg, themesDir, logger).CSS()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, css)
	return err
}
