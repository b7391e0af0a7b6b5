package dto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageSize(t *testing.T) {
	tests := map[int]int{
		0:            DefaultLimit,
		-1:           DefaultLimit,
		1:            1,
		20:           20,
		MaxLimit:     MaxLimit,
		MaxLimit + 1: MaxLimit,
	}

	for limit, want := range tests {
		assert.Equal(t, want, (&PaginationRequest{Limit: limit}).PageSize(), limit)
	}
}

func TestParseCursor(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		got, err := ParseCursor(Cursor{System: "cgs", After: "erg"}.Encode())

		require.NoError(t, err)
		assert.Equal(t, &Cursor{System: "cgs", After: "erg"}, got)
	})

	t.Run("empty is the first page", func(t *testing.T) {
		got, err := ParseCursor("")

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	invalid := map[string]string{
		"bad base64":       "invalid-base64!",
		"not json":         base64.RawURLEncoding.EncodeToString([]byte("not json")),
		"missing position": base64.RawURLEncoding.EncodeToString([]byte(`{"s":"si"}`)),
		"missing system":   base64.RawURLEncoding.EncodeToString([]byte(`{"a":"J"}`)),
	}

	for name, token := range invalid {
		t.Run(name, func(t *testing.T) {
			got, err := ParseCursor(token)

			require.ErrorIs(t, err, ErrInvalidCursor)
			assert.Nil(t, got)
		})
	}
}

func TestPageNames(t *testing.T) {
	names := []string{"Ba", "D", "G", "P", "St", "dyn", "erg", "g"}

	t.Run("walks every name once", func(t *testing.T) {
		var (
			got    []string
			cursor *Cursor
			pages  int
		)

		for {
			page, err := PageNames("cgs", names, cursor, 3)
			require.NoError(t, err)

			got = append(got, page.Items...)
			pages++

			if !page.HasMore {
				assert.Empty(t, page.NextCursor)
				break
			}

			cursor, err = ParseCursor(page.NextCursor)
			require.NoError(t, err)
		}

		assert.Equal(t, names, got)
		assert.Equal(t, 3, pages)
	})

	t.Run("exact fit has no next page", func(t *testing.T) {
		page, err := PageNames("cgs", names, nil, len(names))

		require.NoError(t, err)
		assert.Equal(t, names, page.Items)
		assert.False(t, page.HasMore)
	})

	t.Run("cursor on a name that has gone", func(t *testing.T) {
		page, err := PageNames("cgs", names, &Cursor{System: "cgs", After: "Gal"}, 2)

		require.NoError(t, err)
		assert.Equal(t, []string{"P", "St"}, page.Items)
		assert.True(t, page.HasMore)
	})

	t.Run("cursor past the end", func(t *testing.T) {
		page, err := PageNames("cgs", names, &Cursor{System: "cgs", After: "g"}, 2)

		require.NoError(t, err)
		assert.Equal(t, []string{}, page.Items)
		assert.False(t, page.HasMore)
	})

	t.Run("cursor from another system", func(t *testing.T) {
		_, err := PageNames("cgs", names, &Cursor{System: "si", After: "J"}, 2)

		require.ErrorIs(t, err, ErrInvalidCursor)
	})

	t.Run("page does not alias names", func(t *testing.T) {
		page, err := PageNames("cgs", names, nil, 2)
		require.NoError(t, err)

		page.Items[0] = "changed"
		assert.Equal(t, "Ba", names[0])
	})
}
