package main

import (
	"os"

	"github.com/spf13/cobra"
)

// @title Campus Desk API
// @version 1.0.0
// @description Admin console backend for campus maintenance tickets, requests and rooms.
// @BasePath /api/v1
// @schemes http

func main() {
	rootCmd := &cobra.Command{
		Use:           "campus-api",
		Short:         "Campus Desk admin API",
		Long:          `Serves the campus admin console: maintenance chat, requests, rooms, people, settings and reports.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(reportCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
