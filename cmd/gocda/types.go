package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(typesCmd)
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List content types",

	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		types, err := client.ContentTypes.Fetch()
		if err != nil {
			fatal(err)
		}

		for _, t := range types {
			fmt.Printf("%s\t%s (%d fields, display: %s)\n", t.Sys.ID, t.Name, len(t.Fields), t.DisplayField)
		}
	},
}
