package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contentloop/gocda"
)

var (
	exportDSN    string
	exportSchema string
	exportDir    string
)

func init() {
	exportPgCmd.Flags().StringVarP(&exportDSN, "dsn", "d", "", "postgres connection string (required)")
	exportPgCmd.Flags().StringVarP(&exportSchema, "schema", "n", "content", "target schema name")
	exportPgCmd.MarkFlagRequired("dsn")
	exportCmd.AddCommand(exportPgCmd)

	exportFilesCmd.Flags().StringVarP(&exportDir, "dir", "o", ".", "output directory")
	exportCmd.AddCommand(exportFilesCmd)

	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a fetched batch",
}

func fetchAll() (*gocda.Client, *gocda.Array) {
	client := newClient()
	if _, err := client.LoadContentTypes(); err != nil {
		fatal(err)
	}

	arr, err := client.Entries.Fetch(gocda.NewQuery().Limit(1000).Include(2))
	if err != nil {
		fatal(err)
	}
	return client, arr
}

var exportPgCmd = &cobra.Command{
	Use:   "pg",
	Short: "Export entries into postgres tables",

	Run: func(cmd *cobra.Command, args []string) {
		_, arr := fetchAll()

		exp := gocda.NewPGExport(exportSchema, arr)
		if err := exp.ExecDSN(exportDSN); err != nil {
			fatal(err)
		}
		fmt.Printf("exported %d items into schema %s\n", arr.Len(), exportSchema)
	},
}

var exportFilesCmd = &cobra.Command{
	Use:   "files",
	Short: "Write entries as json files",

	Run: func(cmd *cobra.Command, args []string) {
		client, arr := fetchAll()

		if err := gocda.ExportFiles(exportDir, arr, client.Types()); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %d entries under %s\n", len(arr.Entries()), exportDir)
	},
}
