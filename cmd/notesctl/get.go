package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a single note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		note, err := newClient().GetNote(context.Background(), args[0])
		if err != nil {
			fatal("Error fetching note", err)
		}

		fmt.Printf("ID:      %s\n", note.ID)
		fmt.Printf("Title:   %s\n", note.Title)
		fmt.Printf("Created: %s\n", note.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("Updated: %s\n", note.UpdatedAt.Format("2006-01-02 15:04:05"))
		fmt.Println()
		fmt.Println(note.Content)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
