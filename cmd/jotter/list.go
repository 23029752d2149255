package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/jotter"
	"github.com/aretw0/jotter/pkg/query"
)

var (
	listJSON  bool
	listYAML  bool
	listMatch string
	listWhere string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the notes seeded from the config file",
	Long: `List prints the notes created from the config file's seed_notes.

Filters:
  --match  doublestar glob on the title, e.g. "work/**"
  --where  expression over id, title, content, isOpen, editing, createdAt, updatedAt`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()

		notes, err := selectNotes(store, listMatch, listWhere)
		if err != nil {
			fatal("Failed to filter notes", err)
		}

		switch {
		case listJSON:
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Failed to encode JSON", err)
			}
		case listYAML:
			encoder := yaml.NewEncoder(os.Stdout)
			encoder.SetIndent(2)
			if err := encoder.Encode(notes); err != nil {
				fatal("Failed to encode YAML", err)
			}
		default:
			for _, note := range notes {
				mark := " "
				if note.IsOpen {
					mark = "o"
				}
				fmt.Printf("[%s] %s %s\n", mark, note.ID, note.Title)
			}
		}
	},
}

func selectNotes(store *jotter.Store, match, where string) ([]jotter.Note, error) {
	notes := store.Notes()
	if match != "" {
		var err error
		if notes, err = store.MatchTitle(match); err != nil {
			return nil, err
		}
	}
	if where != "" {
		filter, err := query.Compile(where)
		if err != nil {
			return nil, err
		}
		editing, _ := store.EditingID()
		return filter.Apply(notes, editing)
	}
	return notes, nil
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "Output in YAML format")
	listCmd.Flags().StringVar(&listMatch, "match", "", "Glob pattern on note titles")
	listCmd.Flags().StringVar(&listWhere, "where", "", "Filter expression")
	listCmd.MarkFlagsMutuallyExclusive("json", "yaml")
}
