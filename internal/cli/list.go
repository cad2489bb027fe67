package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jask/agebook/internal/directory"
)

// ListCmd prints the age groups without starting the board.
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print people grouped by age",
		Long: `Print the four age groups to stdout.

Usage:
  agebook list                         # every person, store order
  agebook list --search an             # names containing "an"
  agebook list --sort age-desc         # name-asc, name-desc, age-asc, age-desc`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
	cmd.Flags().String("search", "", "Case-insensitive name filter")
	cmd.Flags().String("sort", "", "Sort option: name-asc, name-desc, age-asc or age-desc")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")
	sortOpt, _ := cmd.Flags().GetString("sort")

	s, err := sessionFromFlags(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	if sortOpt == "" {
		sortOpt = s.cfg.UI.Sort
	}
	var order directory.Sort
	if sortOpt != "" {
		order, err = directory.ParseSortOption(sortOpt)
		if err != nil {
			return err
		}
	}

	derived := directory.Derive(s.store.List(), search, order)
	writeBuckets(cmd.OutOrStdout(), derived)
	if len(derived) == 0 && search != "" {
		if name, ok := directory.Suggest(s.store.List(), search, s.cfg.UI.SuggestDistance); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "no matches, did you mean %q?\n", name)
		}
	}
	return nil
}

func writeBuckets(w io.Writer, derived []directory.Person) {
	for i, col := range directory.PartitionAll(derived) {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d)\n", directory.Buckets[i].Title(), len(col))
		for _, p := range col {
			fmt.Fprintf(w, "  %-20s %3d  %-28s %s\n", p.Name, p.Age, p.Email, p.Phone)
		}
	}
	if hidden := directory.Hidden(derived); len(hidden) > 0 {
		fmt.Fprintf(w, "\n%d person(s) outside ages 1-100 not shown\n", len(hidden))
	}
}
