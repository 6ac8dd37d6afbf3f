package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/huh-boost/storefront/config"
	"github.com/huh-boost/storefront/db"
)

var dbFile string

var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the storefront's collection catalog",
	Long:  "catalog seeds, lists and deletes the collections served at /api/collections and clears the cached payload.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return db.Init(dbFile)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return db.Close()
	},
}

func init() {
	config.Load()
	rootCmd.PersistentFlags().StringVar(&dbFile, "db", config.DatabaseURL, "sqlite database file")
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
