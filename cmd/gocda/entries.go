package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/contentloop/gocda"
)

var (
	contentType  string
	limit        int
	skip         int
	includeDepth int
)

func init() {
	entriesCmd.Flags().StringVarP(&contentType, "content-type", "c", "", "filter by content type id")
	entriesCmd.Flags().IntVarP(&limit, "limit", "l", 100, "page size")
	entriesCmd.Flags().IntVarP(&skip, "skip", "k", 0, "page offset")
	entriesCmd.Flags().IntVarP(&includeDepth, "include", "i", 1, "include depth")
	rootCmd.AddCommand(entriesCmd)
}

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Fetch entries and print the resolved batch",

	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		client.AfterRequest = func(c *gocda.Client, req *http.Request, elapsed time.Duration) {
			fmt.Printf("GET %s (%s)\n", req.URL.Path, elapsed)
		}
		if _, err := client.LoadContentTypes(); err != nil {
			fatal(err)
		}

		q := gocda.NewQuery().Limit(limit).Skip(skip).Include(includeDepth)
		if contentType != "" {
			q.ContentType(contentType)
		}

		arr, err := client.Entries.Fetch(q)
		if err != nil {
			fatal(err)
		}

		fmt.Printf("total: %d (showing %d, skip %d)\n", arr.Total, arr.Len(), arr.Skip)
		for _, e := range arr.Entries() {
			printEntry(e)
		}
	},
}

func printEntry(e *gocda.Entry) {
	fmt.Printf("%s [%s]\n", e.Sys.ID, e.ContentTypeID())
	for id, v := range e.Fields {
		switch v.Kind() {
		case gocda.ValueLink:
			link, _ := v.Link()
			fmt.Printf("  %s: -> %s %s (unresolved)\n", id, link.Kind, link.ID)
		case gocda.ValueResource:
			r, _ := v.Resource()
			fmt.Printf("  %s: -> %s %s\n", id, r.ResourceSys().Type, r.ResourceSys().ID)
		case gocda.ValueList:
			fmt.Printf("  %s: %d items\n", id, len(v.List()))
		default:
			fmt.Printf("  %s: %v\n", id, v.Scalar())
		}
	}
}
