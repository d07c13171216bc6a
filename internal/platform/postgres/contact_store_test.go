package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocontacts/contacts-api/internal/store"
)

func TestBuildContactFilter(t *testing.T) {
	tests := []struct {
		name     string
		filter   store.ContactFilter
		wantArgs []any
	}{
		{
			name:     "owner only",
			filter:   store.ContactFilter{Username: "test"},
			wantArgs: []any{"test"},
		},
		{
			name:     "name filter",
			filter:   store.ContactFilter{Username: "test", Name: "jane"},
			wantArgs: []any{"test", "%jane%"},
		},
		{
			name:     "wildcards in the filter are escaped",
			filter:   store.ContactFilter{Username: "test", Name: "100%"},
			wantArgs: []any{"test", `%100\%%`},
		},
		{
			name: "all filters",
			filter: store.ContactFilter{
				Username: "test",
				Name:     "jane",
				Email:    "example.com",
				Phone:    "0891",
			},
			wantArgs: []any{"test", "%jane%", "%example.com%", "%0891%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildContactFilter(tt.filter)

			assert.Equal(t, tt.wantArgs, args)
			assert.Contains(t, where, "username = $1")

			if tt.filter.Name != "" {
				// The name filter matches either name column with one argument.
				assert.Contains(t, where, "first_name ILIKE $2")
				assert.Contains(t, where, "last_name ILIKE $2")
			} else {
				assert.NotContains(t, where, "first_name")
			}
			if tt.filter.Email != "" {
				assert.Contains(t, where, "email ILIKE $3")
			}
			if tt.filter.Phone != "" {
				assert.Contains(t, where, "phone ILIKE $4")
			}
		})
	}
}

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "plain value", value: "jane", want: "%jane%"},
		{name: "percent", value: "100%", want: `%100\%%`},
		{name: "underscore", value: "a_c", want: `%a\_c%`},
		{name: "backslash", value: `a\c`, want: `%a\\c%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, containsPattern(tt.value))
		})
	}
}

func TestNullable(t *testing.T) {
	empty := nullable("")
	require.False(t, empty.Valid, "empty strings are stored as NULL")

	set := nullable("value")
	require.True(t, set.Valid)
	assert.Equal(t, "value", set.String)
}
