package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"greg-hacke/stripclean/meta"
	"greg-hacke/stripclean/tags"
)

func newTagsCommand() *cobra.Command {
	var gps bool

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List known tag names and their default threat level",
		// Works without configuration
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			namespace := tags.NamespaceExif
			if gps {
				namespace = tags.NamespaceGPS
			}

			policy := meta.DefaultPolicy()
			defs := tags.Sorted(namespace)
			rows := make([][]string, 0, len(defs))
			for _, def := range defs {
				// decimal ids are what unknown tags are named after
				dec := ""
				if n, err := strconv.ParseUint(def.ID[2:], 16, 16); err == nil {
					dec = strconv.FormatUint(n, 10)
				}
				rows = append(rows, []string{def.ID, dec, def.Name, def.Format, string(policy.Classify(def.Name))})
			}

			columns := []column{
				{title: "ID"},
				{title: "Decimal", align: text.AlignRight},
				{title: "Name"},
				{title: "Format"},
				{title: "Threat"},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(columns, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&gps, "gps", false, "List the GPS namespace instead of the main one")
	return cmd
}
