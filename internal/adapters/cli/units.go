package cli

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/rastro/internal/app"
)

func unitsCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units",
		Short: "Inspect unit systems",
	}

	cmd.AddCommand(
		unitsListCmd(s),
		unitsNamesCmd(s),
		unitsSystemsCmd(s),
		unitsDescribeCmd(s),
	)

	return cmd
}

func unitsListCmd(s *state) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the public SI unit names followed by a second list",
		Long: `Print the public SI unit names, one per line, followed by a second list.

In replicate mode (the default) the CGS names are computed and discarded,
so the SI names are printed twice. In corrected mode the second list holds
the CGS names.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("mode") {
				mode = s.cfg.Units.ListingMode
			}

			m, err := app.ParseListingMode(mode)
			if err != nil {
				return err
			}

			var buf bytes.Buffer

			if err := s.catalog().ListingScript(cmd.Context(), &buf, m); err != nil {
				return err
			}

			return s.printer(cmd).lines(buf.String())
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "replicate", "replicate or corrected (default units.listing_mode)")

	return cmd
}

func unitsNamesCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "names [system...]",
		Short: "Print the public unit names of each system (default units.default_systems)",
		RunE: func(cmd *cobra.Command, args []string) error {
			systems := args
			if len(systems) == 0 {
				systems = s.cfg.Units.DefaultSystems
			}

			lists, err := s.catalog().ListSystems(cmd.Context(), systems...)
			if err != nil {
				return err
			}

			var buf bytes.Buffer

			for _, names := range lists {
				if err := app.WriteNames(&buf, names); err != nil {
					return err
				}
			}

			return s.printer(cmd).lines(buf.String())
		},
	}
}

func unitsSystemsCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "systems",
		Short: "Print each unit system with its number of public units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := s.printer(cmd)

			var b strings.Builder
			for _, sys := range s.catalog().Systems(cmd.Context()) {
				b.WriteString(p.field(sys.Name, strconv.Itoa(sys.PublicUnits)) + "\n")
			}

			return p.lines(b.String())
		},
	}
}

func unitsDescribeCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <unit>",
		Short: "Print the scale and dimension of a unit expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := s.catalog().Describe(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			p := s.printer(cmd)

			lines := []string{p.field("unit", p.unit(d.Symbol))}
			if d.Name != "" {
				lines = append(lines, p.field("name", d.Name))
			}

			lines = append(lines,
				p.field("scale", fmt.Sprintf("%s %s", strconv.FormatFloat(d.Scale, 'g', -1, 64), p.unit(d.SI))),
				p.field("dimension", d.Dimension),
			)

			return p.lines(strings.Join(lines, "\n"))
		},
	}
}
