package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"slices"
)

// Page sizes for listings.
const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// ErrInvalidCursor is returned for a cursor that does not decode or that
// was issued for a different unit system.
var ErrInvalidCursor = errors.New("invalid cursor")

// PaginationRequest is the query of a paginated listing.
type PaginationRequest struct {
	// Cursor is the NextCursor of the previous page; empty for the first.
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit"  validate:"omitempty,gte=1,lte=500"`
}

// PageSize is Limit clamped to [1, MaxLimit], DefaultLimit when unset.
func (p *PaginationRequest) PageSize() int {
	switch {
	case p.Limit <= 0:
		return DefaultLimit
	case p.Limit > MaxLimit:
		return MaxLimit
	default:
		return p.Limit
	}
}

// PaginatedResponse is one page of a listing.
type PaginatedResponse[T any] struct {
	Items []T `json:"items"`
	// NextCursor fetches the following page. Empty on the last page.
	NextCursor string `json:"nextCursor,omitempty"`
	HasMore    bool   `json:"hasMore"`
}

// Cursor marks a position in the sorted listing of one unit system: the
// page it opens starts after the name After.
type Cursor struct {
	System string `json:"s"`
	After  string `json:"a"`
}

// Encode renders c as an opaque URL-safe token.
func (c Cursor) Encode() string {
	raw, _ := json.Marshal(c) //nolint:errchkjson // two string fields
	return base64.RawURLEncoding.EncodeToString(raw)
}

// ParseCursor decodes a token from Cursor.Encode. An empty token yields a
// nil cursor, meaning the first page.
func ParseCursor(token string) (*Cursor, error) {
	if token == "" {
		return nil, nil //nolint:nilnil // nil cursor is the first page
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil || c.System == "" || c.After == "" {
		return nil, ErrInvalidCursor
	}

	return &c, nil
}

// PageNames returns up to limit of the sorted names of system, starting
// after cursor. A name recorded in cursor that has since disappeared still
// positions the page correctly.
func PageNames(system string, names []string, cursor *Cursor, limit int) (*PaginatedResponse[string], error) {
	start := 0

	if cursor != nil {
		if cursor.System != system {
			return nil, ErrInvalidCursor
		}

		i, found := slices.BinarySearch(names, cursor.After)
		if found {
			i++
		}

		start = i
	}

	rest := names[min(start, len(names)):]
	page := &PaginatedResponse[string]{Items: slices.Clone(rest[:min(limit, len(rest))])}

	if page.Items == nil {
		page.Items = []string{}
	}

	if len(rest) > limit {
		page.HasMore = true
		page.NextCursor = Cursor{System: system, After: page.Items[len(page.Items)-1]}.Encode()
	}

	return page, nil
}
