package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/jotter"
	"github.com/aretw0/jotter/pkg/adapters/lifecycle"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted session and print the store state",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		src := lifecycle.NewSource(store.Watch(ctx))
		if err := src.Start(ctx); err != nil {
			fatal("Failed to start event source", err)
		}

		runDemo(store)

		// Closing the store ends the subscription, which drains and closes the source.
		if err := store.Close(); err != nil {
			fatal("Failed to close store", err)
		}
		for e := range src.Events() {
			fmt.Println("event:", e)
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(store.State()); err != nil {
			fatal("Failed to encode state", err)
		}
	},
}

func runDemo(store *jotter.Store) {
	var ids []string
	for i := 1; i <= store.MaxOpenNotes()+1; i++ {
		ids = append(ids, store.AddNote(fmt.Sprintf("body %d", i), fmt.Sprintf("Note %d", i)))
	}

	store.AutoOpenNotes(len(ids))
	last := ids[len(ids)-1]
	if !store.OpenNote(last) {
		fmt.Printf("%s stays closed: %d/%d notes open\n", last, store.OpenNotesCount(), store.MaxOpenNotes())
	}

	store.OpenEditor(ids[0])
	store.UpdateNote(ids[0], jotter.SetTitle("Note 1 (edited)"))
	store.CloseNote(ids[0])
	if store.ToggleNoteOpen(last) {
		fmt.Printf("%s opened after a slot was freed\n", last)
	}
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
