package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func constantsCmd(s *state) *cobra.Command {
	var (
		unit      string
		precision int
	)

	cmd := &cobra.Command{
		Use:   "constants [abbrev]",
		Short: "List the physical constants, or describe one",
		Example: `  rastro constants
  rastro constants G
  rastro constants c --unit km/s`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev := s.evaluator()
			p := s.printer(cmd)

			if len(args) == 0 {
				var b strings.Builder
				for _, c := range ev.Constants(cmd.Context()) {
					b.WriteString(p.field(c.Abbrev, c.Name) + "\n")
				}

				return p.lines(b.String())
			}

			c, err := ev.Constant(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if unit == "" {
				return p.lines(c.String())
			}

			q, err := ev.ConvertConstant(cmd.Context(), c.Abbrev, unit)
			if err != nil {
				return err
			}

			return p.lines(p.quantity(q, s.precision(cmd, precision)))
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", "", "print the value converted to this unit expression")
	cmd.Flags().IntVar(&precision, "precision", -1, "significant digits with --unit, -1 for the shortest exact value (default units.precision)")

	return cmd
}
