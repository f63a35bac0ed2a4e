package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect portfolio content",
}

var contentCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a portfolio YAML file",
	Long: `Parses the file (or the configured content, or the built-in sample) and
reports every authoring problem found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runContentCheck,
}

var contentDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective portfolio content as YAML",
	Args:  cobra.NoArgs,
	RunE:  runContentDump,
}

func init() {
	contentCmd.AddCommand(contentCheckCmd, contentDumpCmd)
	rootCmd.AddCommand(contentCmd)
}

// contentPath resolves the file argument, falling back to config and flags.
func contentPath(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return "", err
	}
	return cfg.Content, nil
}

func runContentCheck(cmd *cobra.Command, args []string) error {
	path, err := contentPath(cmd, args)
	if err != nil {
		return err
	}
	p, err := content.Load(path)
	if err != nil {
		return err
	}

	name := path
	if name == "" {
		name = "built-in sample"
	}
	if err := p.Validate(); err != nil {
		var joined interface{ Unwrap() []error }
		if errors.As(err, &joined) {
			for _, e := range joined.Unwrap() {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", name, e)
			}
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", name, err)
		}
		return fmt.Errorf("%s has content errors", name)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d photos, %d projects, %d skill groups)\n",
		name, len(p.Photos), len(p.Projects), len(p.Skills))
	return nil
}

func runContentDump(cmd *cobra.Command, args []string) error {
	path, err := contentPath(cmd, args)
	if err != nil {
		return err
	}
	p, err := content.Load(path)
	if err != nil {
		return err
	}
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
