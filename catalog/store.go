package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huh-boost/storefront/collection"
	"github.com/huh-boost/storefront/db"
)

var ErrNotFound = errors.New("collection not found")

const schema = `
CREATE TABLE IF NOT EXISTS Collection (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	handle      TEXT NOT NULL UNIQUE,
	image_url   TEXT NOT NULL DEFAULT '',
	position    INTEGER NOT NULL DEFAULT 0
)`

// Migrate creates the catalog table.
func Migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("error migrating catalog: %w", err)
	}
	return nil
}

// List returns all collections in display order.
func List(ctx context.Context) ([]collection.Collection, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT id, title, description, handle, image_url FROM Collection ORDER BY position, title")
	if err != nil {
		return nil, fmt.Errorf("error listing collections: %w", err)
	}
	defer rows.Close()

	list := []collection.Collection{}
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error listing collections: %w", err)
	}
	return list, nil
}

// Upsert inserts or replaces a collection at the given display position.
func Upsert(ctx context.Context, c collection.Collection, position int) error {
	if err := collection.Validate([]collection.Collection{c}); err != nil {
		return err
	}
	if c.Handle == "" {
		return fmt.Errorf("collection %s: handle is empty", c.ID)
	}
	imageURL := ""
	if c.Image != nil {
		imageURL = c.Image.URL
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO Collection (id, title, description, handle, image_url, position)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			handle = excluded.handle,
			image_url = excluded.image_url,
			position = excluded.position`,
		c.ID, c.Title, c.Description, c.Handle, imageURL, position)
	if err != nil {
		return fmt.Errorf("error saving collection %s: %w", c.ID, err)
	}
	return nil
}

// Delete removes a collection by handle.
func Delete(ctx context.Context, handle string) error {
	res, err := db.ExecContext(ctx, "DELETE FROM Collection WHERE handle = ?", handle)
	if err != nil {
		return fmt.Errorf("error deleting collection %s: %w", handle, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, handle)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (collection.Collection, error) {
	var c collection.Collection
	var imageURL string
	if err := s.Scan(&c.ID, &c.Title, &c.Description, &c.Handle, &imageURL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c, err
		}
		return c, fmt.Errorf("error scanning collection: %w", err)
	}
	if imageURL != "" {
		c.Image = &collection.Image{URL: imageURL}
	}
	return c, nil
}
