package collection

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrDuplicateID = errors.New("duplicate collection id")
	ErrEmptyTitle  = errors.New("collection title is empty")
)

// Image is the optional artwork attached to a collection.
type Image struct {
	URL string `json:"url" yaml:"url"`
}

// Collection is a named, filterable group of products exposed by the commerce platform.
type Collection struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description"`
	Handle      string `json:"handle" yaml:"handle"`
	Image       *Image `json:"image,omitempty" yaml:"image"`
}

// HasImage reports whether the collection carries usable artwork.
func (c Collection) HasImage() bool {
	return c.Image != nil && c.Image.URL != ""
}

// Validate checks that ids are unique and titles are non-empty.
func Validate(list []Collection) error {
	seen := make(map[string]struct{}, len(list))
	for i, c := range list {
		if strings.TrimSpace(c.Title) == "" {
			return fmt.Errorf("collection %d (%s): %w", i, c.ID, ErrEmptyTitle)
		}
		if _, ok := seen[c.ID]; ok {
			return fmt.Errorf("collection %s: %w", c.ID, ErrDuplicateID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

// Sanitize drops entries that break the list invariants, keeping the first
// occurrence of each id. It returns the number of entries dropped.
func Sanitize(list []Collection) ([]Collection, int) {
	seen := make(map[string]struct{}, len(list))
	clean := make([]Collection, 0, len(list))
	for _, c := range list {
		if strings.TrimSpace(c.Title) == "" {
			continue
		}
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		clean = append(clean, c)
	}
	return clean, len(list) - len(clean)
}

// Filter returns the collections whose title or description contains query,
// ignoring case, in their original order. A blank query matches nothing.
func Filter(list []Collection, query string) []Collection {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	q := strings.ToLower(query)
	var matches []Collection
	for _, c := range list {
		if Matches(c, q) {
			matches = append(matches, c)
		}
	}
	return matches
}

// Matches reports whether c matches an already lower-cased query.
func Matches(c Collection, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(c.Title), lowerQuery) ||
		(c.Description != "" && strings.Contains(strings.ToLower(c.Description), lowerQuery))
}

// Featured returns at most n collections from the head of the list.
func Featured(list []Collection, n int) []Collection {
	if n < 0 {
		n = 0
	}
	if len(list) <= n {
		return list
	}
	return list[:n]
}

// ByHandle looks up a collection by its routing slug, falling back to its id.
func ByHandle(list []Collection, key string) (Collection, bool) {
	for _, c := range list {
		if c.Handle == key {
			return c, true
		}
	}
	for _, c := range list {
		if c.ID == key {
			return c, true
		}
	}
	return Collection{}, false
}

// Path is the storefront route for a collection.
func Path(c Collection) string {
	return "/collections/" + c.Handle
}

// Initial is the upper-cased first letter of the title, used as an image placeholder.
func Initial(c Collection) string {
	r, _ := utf8.DecodeRuneInString(c.Title)
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}
