// Copyright (c) 2026 Smriti. All rights reserved.
// Author: rafid.hsn.bd@gmail.com

package slug_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafidhsn/smriti/pkg/slug"
)

/*
TestFrom covers the normalization pipeline for Bengali and Latin titles.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"latin_simple", "My First Poem", "my-first-poem"},
		{"latin_punctuation", "Hello, World!", "hello-world"},
		{"bengali_kept", "আমার গান", "আমার-গান"},
		{"mixed_script", "Gitanjali গীতাঞ্জলি (1910)", "gitanjali-গীতাঞ্জলি-1910"},
		{"whitespace_runs", "  a   b\t c ", "a-b-c"},
		{"repeated_hyphens", "a --- b", "a-b"},
		{"only_symbols", "!!! ???", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.title))
		})
	}
}

/*
TestFrom_Idempotent pins the invariant From(From(t)) == From(t).
*/
func TestFrom_Idempotent(t *testing.T) {
	titles := []string{
		"My First Poem",
		"আমার সোনার বাংলা",
		"Ode -- to   Joy!",
		"কবির ১০টি গান",
	}

	for _, title := range titles {
		once := slug.From(title)
		assert.Equal(t, once, slug.From(once), "title %q", title)
	}
}

/*
TestTransliterate covers the Bengali→Latin phonetic table.
*/
func TestTransliterate(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		// Per-character mapping, no inherent vowel insertion: ক ব ি → k b i
		{"kobi", "কবি", "kbi"},
		{"gan_with_kar", "গান", "gan"},
		{"conjunct_collapse", "বিশ্ব", "bishb"}, // শ + ্ + ব
		{"anusvara", "বাংলা", "bangla"},
		{"bengali_digits", "১৯১৩", "1913"},
		{"latin_passthrough", "Poem গান", "poem-gan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slug.Transliterate(tt.title)
			assert.Equal(t, tt.want, got)

			// Output must be Latin-only
			for _, r := range got {
				assert.True(t, r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'),
					"unexpected rune %q in %q", r, got)
			}
		})
	}
}

/*
TestFallback verifies the synthetic slug shape and monotonic uniqueness.
*/
func TestFallback(t *testing.T) {
	first := slug.Fallback("writing")
	assert.True(t, strings.HasPrefix(first, "writing-"))

	time.Sleep(2 * time.Millisecond)
	second := slug.Fallback("writing")
	assert.NotEqual(t, first, second)
}

/*
TestUnique pins the collision-probing sequence: base, base-1, base-2, ...
*/
func TestUnique(t *testing.T) {
	taken := map[string]bool{}
	exists := func(_ context.Context, s string) (bool, error) {
		return taken[s], nil
	}

	ctx := context.Background()

	// Empty table: base slug wins.
	got, err := slug.Unique(ctx, "amar-gan", exists)
	require.NoError(t, err)
	assert.Equal(t, "amar-gan", got)
	taken[got] = true

	// Second identical title must receive base-1.
	got, err = slug.Unique(ctx, "amar-gan", exists)
	require.NoError(t, err)
	assert.Equal(t, "amar-gan-1", got)
	taken[got] = true

	// And the third base-2.
	got, err = slug.Unique(ctx, "amar-gan", exists)
	require.NoError(t, err)
	assert.Equal(t, "amar-gan-2", got)
}
