package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	listSearch string
	listLimit  int64
	listOffset int64
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, newest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := newClient().ListNotes(context.Background(), listSearch, listLimit, listOffset)
		if err != nil {
			fatal("Error listing notes", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(resp); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		for _, note := range resp.Data {
			fmt.Printf("%s  %s  %s\n", note.ID, note.CreatedAt.Format("2006-01-02 15:04"), note.Title)
		}
		fmt.Printf("%d of %d notes\n", len(resp.Data), resp.Total)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter notes whose title contains this text")
	listCmd.Flags().Int64Var(&listLimit, "limit", 0, "Maximum number of notes to return")
	listCmd.Flags().Int64Var(&listOffset, "offset", 0, "Number of notes to skip")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
