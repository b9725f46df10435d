package main

import (
	"fmt"
	"os"

	"notes-server/pkg/client"

	"github.com/spf13/cobra"
)

var addr string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notesctl",
	Short: "Command-line client for the notes server",
	Long: `notesctl talks to a running notes server over its HTTP API:
list, read, create, edit and delete notes from the terminal.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&addr, "addr", "http://localhost:3000", "Base URL of the notes server")
}

func newClient() *client.Client {
	return client.New(addr)
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
