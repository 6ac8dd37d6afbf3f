package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/huh-boost/storefront/cache"
	"github.com/huh-boost/storefront/collection"
	"github.com/huh-boost/storefront/loader"
)

const payloadKey = "catalog:collections"

// ListFunc loads the catalog from its source of truth.
type ListFunc func(ctx context.Context) ([]collection.Collection, error)

// Service serves the collections payload, caching the encoded body in an
// in-process cache backed by a shared store.
type Service struct {
	local  *cache.Cache[[]byte]
	shared StateStore
	ttl    time.Duration
	list   ListFunc
}

// NewService serves the catalog stored in the database.
func NewService(shared StateStore, ttl time.Duration) (*Service, error) {
	return NewServiceWithList(shared, ttl, List)
}

func NewServiceWithList(shared StateStore, ttl time.Duration, list ListFunc) (*Service, error) {
	local, err := cache.New("Catalog Payload Cache", 1<<24, ttl, func(v []byte) int64 {
		return int64(len(v))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize catalog cache: %w", err)
	}
	log.Printf("[catalog] Cache initialized (ttl %s)", ttl)
	return &Service{
		local:  local,
		shared: shared,
		ttl:    ttl,
		list:   list,
	}, nil
}

// Payload returns the JSON body for GET /api/collections.
func (s *Service) Payload(ctx context.Context) ([]byte, error) {
	if body, ok := s.local.Get(payloadKey); ok {
		return body, nil
	}

	body, err := s.shared.Get(ctx, payloadKey)
	switch {
	case err == nil:
		s.local.Set(payloadKey, body, 0)
		return body, nil
	case !errors.Is(err, ErrCacheMiss):
		log.Printf("[catalog] shared cache read failed, bypassing: %v", err)
	}

	list, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	body, err = json.Marshal(loader.Payload{Collections: list})
	if err != nil {
		return nil, fmt.Errorf("error encoding collections: %w", err)
	}

	s.local.Set(payloadKey, body, 0)
	if err := s.shared.Set(ctx, payloadKey, body, s.ttl); err != nil {
		log.Printf("[catalog] shared cache write failed: %v", err)
	}
	return body, nil
}

// Collections returns the decoded catalog, going through the same cache.
func (s *Service) Collections(ctx context.Context) ([]collection.Collection, error) {
	body, err := s.Payload(ctx)
	if err != nil {
		return nil, err
	}
	return loader.Decode(body)
}

// Invalidate drops the cached payload from both tiers.
func (s *Service) Invalidate(ctx context.Context) {
	s.local.Delete(payloadKey)
	if err := s.shared.Delete(ctx, payloadKey); err != nil {
		log.Printf("[catalog] shared cache delete failed: %v", err)
	}
	log.Printf("[catalog] Cache invalidated")
}

// Stats returns the in-process cache metrics for the admin page.
func (s *Service) Stats() map[string]any {
	return s.local.Stats()
}

// Ping checks the shared store.
func (s *Service) Ping(ctx context.Context) error {
	return s.shared.Ping(ctx)
}

func (s *Service) Close() {
	s.local.Close()
}
