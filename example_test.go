package jotter_test

import (
	"fmt"
	"log"

	"github.com/aretw0/jotter"
)

// Example_basic demonstrates how to create a store, add a note and open it.
func Example_basic() {
	store, err := jotter.New()
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	id := store.AddNote("Buy milk", "Groceries")
	store.OpenNote(id)

	note, _ := store.GetNoteByID(id)
	fmt.Printf("%s open=%v valid-id=%v\n", note.Title, note.IsOpen, jotter.IsValidID(id))
	// Output:
	// Groceries open=true valid-id=true
}

// Example_openLimit shows that a fifth note cannot be opened with the default limit.
func Example_openLimit() {
	store, err := jotter.New()
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.AddNote("", fmt.Sprintf("note %d", i))
	}
	store.AutoOpenNotes(5)

	fmt.Printf("open=%d remaining=%d\n", store.OpenNotesCount(), store.RemainingSlots())
	closed := store.ClosedNotes()
	fmt.Println("still closed:", closed[0].Title)
	// Output:
	// open=4 remaining=0
	// still closed: note 4
}
