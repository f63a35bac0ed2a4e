package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"folio/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the folio config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings to the config file",
	Long: `Writes the built-in defaults to the file named by --config. An existing
file is left alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(cfgFile); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("accessing %s: %w", cfgFile, err)
	}
	if err := config.DefaultConfig().Save(cfgFile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", cfgFile)
	return nil
}
