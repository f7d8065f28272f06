package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"bojctl/internal/config"
)

var configInitForce bool

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage bojctl configuration",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default bojctl.yaml to the current directory",
		RunE:  runConfigInit,
	}
	initCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(initCmd)
	return configCmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	path := filepath.Join(workDir, config.DefaultConfigFile)
	if err := config.WriteDefault(path, configInitForce); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", config.DefaultConfigFile)
	return nil
}
