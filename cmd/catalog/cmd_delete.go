package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/huh-boost/storefront/catalog"
	"github.com/huh-boost/storefront/config"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <handle>",
	Short: "Delete a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		err := catalog.Delete(ctx, args[0])
		if errors.Is(err, catalog.ErrNotFound) {
			return fmt.Errorf("no collection with handle %q", args[0])
		}
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %s.\n", args[0])
		return invalidate(ctx)
	},
}

// invalidate drops the cached payload so running servers pick up the change
// once their in-process copy expires.
func invalidate(ctx context.Context) error {
	shared := catalog.NewRedisStore(config.RedisAddress, config.RedisPassword)
	defer shared.Close()
	if err := shared.Ping(ctx); err != nil {
		log.Printf("[catalog] redis unavailable, cached payload left to expire: %v", err)
		return nil
	}
	svc, err := catalog.NewService(shared, config.CatalogCacheTTL)
	if err != nil {
		return err
	}
	defer svc.Close()
	svc.Invalidate(ctx)
	return nil
}
