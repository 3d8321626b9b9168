package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"greg-hacke/stripclean/meta"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var jobs int

	cmd := &cobra.Command{
		Use:   "analyze <image>...",
		Short: "Report privacy-sensitive metadata in images",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := ctx.ensure()
			if err != nil {
				return err
			}
			analyzer := meta.NewAnalyzer(cfg.Policy(), meta.WithLogger(logger.Named("analyzer")))

			reports := analyzeFiles(analyzer, args, jobs)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(reports); err != nil {
					return err
				}
			} else {
				colorize := shouldColorize(out)
				for _, fr := range reports {
					renderFileReport(out, fr, colorize)
				}
			}

			failed := 0
			for _, fr := range reports {
				if fr.Error != "" {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files could not be analyzed", failed, len(reports))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output reports as JSON")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "Files analyzed in parallel")
	return cmd
}

// analyzeFiles analyzes paths concurrently and returns reports in argument order
func analyzeFiles(analyzer *meta.Analyzer, paths []string, jobs int) []fileReport {
	if jobs < 1 {
		jobs = 1
	}
	reports := make([]fileReport, len(paths))

	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			fr := fileReport{File: path}
			if info, err := os.Stat(path); err == nil {
				fr.Size = info.Size()
			}
			report, err := analyzer.AnalyzeFile(path)
			if err != nil {
				fr.Error = err.Error()
			} else {
				fr.Report = report
			}
			reports[i] = fr
			return nil
		})
	}
	_ = g.Wait()

	return reports
}
