package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/huh-boost/storefront/catalog"
	"github.com/huh-boost/storefront/collection"
)

var seedFile string

type seedDoc struct {
	Collections []collection.Collection `yaml:"collections"`
}

// loadSeed parses and validates a seed document. Every entry needs a handle
// since it is the collection's URL.
func loadSeed(r io.Reader) ([]collection.Collection, error) {
	var doc seedDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("error parsing seed file: %w", err)
	}
	if err := collection.Validate(doc.Collections); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(doc.Collections))
	for _, c := range doc.Collections {
		if c.Handle == "" {
			return nil, fmt.Errorf("collection %q has no handle", c.ID)
		}
		if seen[c.Handle] {
			return nil, fmt.Errorf("duplicate handle %q", c.Handle)
		}
		seen[c.Handle] = true
	}
	return doc.Collections, nil
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert collections from a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(seedFile)
		if err != nil {
			return err
		}
		defer f.Close()

		list, err := loadSeed(f)
		if err != nil {
			return err
		}

		ctx := context.Background()
		if err := catalog.Migrate(ctx); err != nil {
			return err
		}
		for i, c := range list {
			if err := catalog.Upsert(ctx, c, i); err != nil {
				return err
			}
			fmt.Printf("  ✓ %s (%s)\n", c.Title, c.Handle)
		}
		fmt.Printf("Seeded %d collections.\n", len(list))
		return invalidate(ctx)
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "collections.yaml", "seed file")
}
