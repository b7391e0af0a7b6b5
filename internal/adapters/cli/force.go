package cli

import (
	"bytes"

	"github.com/spf13/cobra"
)

func forceCmd(s *state) *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:   "force",
		Short: "Print G, the pull between 3 solar masses and 100 kg at 2.2 au, and c in km/s",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var buf bytes.Buffer

			err := s.evaluator().ForceScript(cmd.Context(), &buf, s.precision(cmd, precision))
			if err != nil {
				return err
			}

			return s.printer(cmd).lines(buf.String())
		},
	}

	cmd.Flags().IntVar(&precision, "precision", -1, "significant digits, -1 for the shortest exact value (default units.precision)")

	return cmd
}
