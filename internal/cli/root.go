package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/agebook/internal/tui"
)

// RootCmd returns the agebook command. With no subcommand it runs the board.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agebook",
		Short: "Sort people into age groups",
		Long: `agebook is a terminal board of people split into four age groups
(1-18, 19-24, 25-45, 46-100). Add, edit, delete, search and sort people, and
move a card into another group to clamp their age into that group's range.

Nothing is saved: every session starts from the sample people and any seed file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBoard,
	}
	cmd.PersistentFlags().String("config", "", "Config file (default $AGEBOOK_CONFIG or ~/.config/agebook/config.toml)")
	cmd.PersistentFlags().String("seed", "", "YAML file of people to load at startup")

	cmd.AddCommand(ListCmd())
	return cmd
}

func sessionFromFlags(cmd *cobra.Command) (*session, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	seedPath, _ := cmd.Flags().GetString("seed")
	return openSession(cfgPath, seedPath)
}

func runBoard(cmd *cobra.Command, args []string) error {
	s, err := sessionFromFlags(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	app := tui.New(s.store, tui.Options{
		SuggestDistance: s.cfg.UI.SuggestDistance,
		Sort:            s.cfg.UI.Sort,
	}, s.log)

	opts := []tea.ProgramOption{tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout())}
	if s.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return err
	}
	return nil
}
