package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	createTitle   string
	createContent string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new note",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		note, err := newClient().CreateNote(context.Background(), createTitle, createContent)
		if err != nil {
			fatal("Error creating note", err)
		}

		fmt.Printf("Note created: %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVar(&createTitle, "title", "", "Title of the note (required)")
	createCmd.Flags().StringVar(&createContent, "content", "", "Content of the note")
	createCmd.MarkFlagRequired("title")
}
