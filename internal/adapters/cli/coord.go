package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/rastro/internal/coordinates"
)

func coordCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:     "coord <designation>",
		Short:   "Print the J2000 position encoded in a source designation",
		Example: `  rastro coord "SDSS J004917.14-252037.6"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := coordinates.ParseDesignation(args[0])
			if err != nil {
				return err
			}

			p := s.printer(cmd)

			return p.lines(strings.Join([]string{
				p.field("ra", formatDegrees(pos.RA)+" deg ("+formatDegrees(pos.RAHours)+" h)"),
				p.field("dec", formatDegrees(pos.Dec)+" deg"),
			}, "\n"))
		},
	}
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
