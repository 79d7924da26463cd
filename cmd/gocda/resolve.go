package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contentloop/gocda"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <Entry|Asset> <id>",
	Short: "Resolve a link stub with a single fetch",
	Args:  cobra.ExactArgs(2),

	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		if _, err := client.LoadContentTypes(); err != nil {
			fatal(err)
		}

		r, err := client.ResolveLink(gocda.ResourceLink{Kind: args[0], ID: args[1]})
		if err != nil {
			fatal(err)
		}

		switch res := r.(type) {
		case *gocda.Entry:
			printEntry(res)
		case *gocda.Asset:
			fmt.Printf("%s %q", res.Sys.ID, res.Title)
			if res.File != nil {
				fmt.Printf(" %s (%s)", res.File.URL, res.File.ContentType)
			}
			fmt.Println()
		default:
			fmt.Printf("%s %s\n", r.ResourceSys().Type, r.ResourceSys().ID)
		}
	},
}
