package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/rastro/internal/platform/config"
)

func configCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the rastro configuration file",
		// Overrides the root hook: a broken user file must not stop
		// init from replacing it.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	}

	cmd.AddCommand(configInitCmd(s), configShowCmd(s))

	return cmd
}

func configInitCmd(s *state) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration to a file (default ~/.rastro/config.yaml)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(args)
			if err != nil {
				return err
			}

			if err := config.WriteFile(path, s.profile, overwrite); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

			return err
		},
	}

	cmd.Flags().BoolVarP(&overwrite, "force", "f", false, "replace an existing file")

	return cmd
}

func configShowCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := s.configFile
			if path == "" {
				path, _ = config.DefaultFilePath()
			}

			out, err := config.Render(s.profile, path)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}
}

func configPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	return config.DefaultFilePath()
}
