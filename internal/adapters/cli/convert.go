package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/rastro/internal/app"
	"github.com/jsamuelsen/rastro/internal/domain"
)

func convertCmd(s *state) *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert a value between unit expressions",
		Example: `  rastro convert 1 au km
  rastro convert 299792458 m/s km/s
  rastro convert -- -40 ft/s "m s-1"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return domain.NewValidationErrorWithValue("value", "must be a number", args[0])
			}

			q, err := s.evaluator().Convert(cmd.Context(), app.ConversionInput{
				Value: value,
				From:  args[1],
				To:    args[2],
			})
			if err != nil {
				return err
			}

			p := s.printer(cmd)

			return p.lines(p.quantity(q, s.precision(cmd, precision)))
		},
	}

	cmd.Flags().IntVar(&precision, "precision", -1, "significant digits, -1 for the shortest exact value (default units.precision)")

	return cmd
}
