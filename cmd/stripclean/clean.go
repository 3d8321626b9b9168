package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"greg-hacke/stripclean/clean"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "clean <image>",
		Short: "Write a copy of an image with all metadata removed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := ctx.ensure()
			if err != nil {
				return err
			}

			input := args[0]
			file, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer file.Close()

			res, err := clean.Strip(file, clean.Options{JPEGQuality: cfg.Clean.JPEGQuality})
			if err != nil {
				return err
			}

			if output == "" {
				output = filepath.Join(filepath.Dir(input), res.DownloadName(filepath.Base(input)))
			}
			if err := os.WriteFile(output, res.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s, %s)\n", output, res.Format, humanize.Bytes(uint64(len(res.Data))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default cleaned_<name> next to the input)")
	return cmd
}
