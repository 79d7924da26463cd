package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/contentloop/gocda"
)

var (
	spaceID    string
	cdnToken   string
	cdnURL     string
	modelsPath string
)

var rootCmd = &cobra.Command{
	Use:   "gocda",
	Short: "cli for the content delivery api",
}

func init() {
	godotenv.Load()

	rootCmd.PersistentFlags().StringVarP(&spaceID, "space", "s", os.Getenv("CDA_SPACE_ID"), "space id (required)")
	rootCmd.PersistentFlags().StringVarP(&cdnToken, "token", "t", os.Getenv("CDA_TOKEN"), "cdn token (required)")
	rootCmd.PersistentFlags().StringVarP(&cdnURL, "url", "u", os.Getenv("CDA_URL"), "cdn hostname")
	rootCmd.PersistentFlags().StringVarP(&modelsPath, "models", "m", "", "yaml model declarations")
}

func newClient() *gocda.Client {
	registry := gocda.NewModelRegistry(gocda.OverwriteDuplicates)
	if modelsPath != "" {
		if err := gocda.LoadModels(modelsPath, registry); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	return gocda.NewClient(&gocda.ClientOptions{
		CdnURL:   cdnURL,
		SpaceID:  spaceID,
		CdnToken: cdnToken,
	}, registry)
}

func fatal(err error) {
	fmt.Println(err)
	os.Exit(1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
