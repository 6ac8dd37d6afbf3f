package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huh-boost/storefront/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List collections in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := catalog.List(context.Background())
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("No collections. Run 'catalog seed' to add some.")
			return nil
		}
		for _, c := range list {
			image := ""
			if c.HasImage() {
				image = "  [image]"
			}
			fmt.Printf("%-24s %s%s\n", c.Handle, c.Title, image)
		}
		return nil
	},
}
