package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/dragplan"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect engine option files",
	}
	cmd.AddCommand(configCheckCmd())
	cmd.AddCommand(configDefaultsCmd())
	return cmd
}

func configCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate an options file and print the effective settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := dragplan.LoadOptions(args[0])
			if err != nil {
				return err
			}
			return printOptions(cmd, opts)
		},
	}
}

func configDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default options as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOptions(cmd, dragplan.DefaultOptions())
		},
	}
}

func printOptions(cmd *cobra.Command, opts dragplan.Options) error {
	out, err := yaml.Marshal(opts)
	if err != nil {
		return fmt.Errorf("encoding options: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
