package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/jotter"
	"github.com/aretw0/jotter/pkg/ident"
)

var (
	idKind     string
	idPrefix   string
	idCount    int
	idStrategy string
)

var idCmd = &cobra.Command{
	Use:   "id",
	Short: "Generate note identifiers",
	Long: `Generate identifiers with the same generator the store uses.

Kinds: uuid, timestamp, simple, short, system, prefixed.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		gen, err := jotter.NewGenerator(
			jotter.WithIDStrategy(idStrategy),
			jotter.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Failed to resolve id generator", err)
		}

		next, err := idFunc(gen, idKind, idPrefix)
		if err != nil {
			fatal("Invalid kind", err)
		}
		for i := 0; i < idCount; i++ {
			fmt.Println(next())
		}
	},
}

func idFunc(gen *ident.Generator, kind, prefix string) (func() string, error) {
	switch kind {
	case "uuid":
		return gen.Generate, nil
	case "timestamp":
		return gen.TimestampID, nil
	case "simple":
		return gen.SimpleID, nil
	case "short":
		return gen.ShortID, nil
	case "system":
		return gen.SystemID, nil
	case "prefixed":
		return func() string { return gen.PrefixedID(prefix) }, nil
	default:
		return nil, fmt.Errorf("unknown id kind: %s", kind)
	}
}

func init() {
	rootCmd.AddCommand(idCmd)
	idCmd.Flags().StringVarP(&idKind, "kind", "k", "uuid", "Identifier kind")
	idCmd.Flags().StringVar(&idPrefix, "prefix", "note", "Prefix for --kind prefixed")
	idCmd.Flags().IntVarP(&idCount, "count", "n", 1, "How many ids to print")
	idCmd.Flags().StringVar(&idStrategy, "strategy", ident.StrategyAuto, "Random source: auto, secure, pseudo")
}
