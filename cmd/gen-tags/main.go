package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"greg-hacke/stripclean/parser"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "gen-tags [-o output_dir] <module.pm>...",
		Short: "Generate tag tables from ExifTool modules",
		Example: "  gen-tags -o tags /usr/share/perl5/Image/ExifTool/Exif.pm " +
			"/usr/share/perl5/Image/ExifTool/GPS.pm",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			absOutputDir, err := filepath.Abs(outputDir)
			if err != nil {
				return fmt.Errorf("resolve output directory: %w", err)
			}
			if err := os.MkdirAll(absOutputDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, path := range args {
				table, err := parser.ParsePMFile(path)
				if err != nil {
					return err
				}
				target := filepath.Join(absOutputDir, parser.FileName(table.ModuleName))
				if err := writeTable(table, target); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %d tags -> %s\n", table.PackageName, len(table.Tags), target)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "tags", "Output directory for generated Go files")
	return cmd
}

func writeTable(table *parser.TagTable, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := parser.GenerateTable(table, file); err != nil {
		file.Close()
		return fmt.Errorf("generate %s: %w", path, err)
	}
	return file.Close()
}
