// Package main provides the contenthub CLI: the serve command runs the
// HTTP API, and migrate prepares the database without serving.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "contenthub",
	Short: "Contenthub is a content management backend",
	Long: `Contenthub serves the content API behind a community site: articles,
programs, announcements, galleries, and the site's configuration,
backed by PostgreSQL. Configuration is read from CONTENTHUB_-prefixed
environment variables, optionally loaded from a .env file.`,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("contenthub v0.1.0")
	},
}
