// Copyright (c) 2026 Smriti. All rights reserved.
// Author: rafid.hsn.bd@gmail.com

// Package slug generates URL slugs from Bengali and Latin titles.
//
// # Usage
//
// Slugs are used as human-readable identifiers for writings, books, media and
// posts (e.g., "আমার-গান" or its transliterated form "amar-gan"). This package
// handles normalization, Bengali transliteration, and character sanitization.
// Uniqueness is NOT guaranteed here; callers probe the store via [Unique].
package slug

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// whitespaceRun matches any sequence of whitespace characters.
	whitespaceRun = regexp.MustCompile(`\s+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// From converts a title into a URL-safe slug that may contain Bengali script.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFC (composes combining vowel signs into stable code points).
// 2. Converts to lowercase.
// 3. Strips every rune outside {Bengali block, ASCII alphanumerics, space, hyphen}.
// 4. Replaces whitespace runs with single hyphens.
// 5. Collapses multiple hyphens and trims leading/trailing hyphens.
//
// The transform is pure and idempotent: From(From(t)) == From(t).
func From(title string) string {
	// 1. Normalize so decomposed vowel signs compare equal
	result := norm.NFC.String(title)

	// 2. Lowercase (no-op for Bengali, required for mixed Latin titles)
	result = strings.ToLower(result)

	// 3. Keep only Bengali, ASCII alphanumerics, spaces and hyphens
	result = strings.Map(func(r rune) rune {
		switch {
		case unicode.Is(unicode.Bengali, r):
			return r
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-':
			return r
		}
		return -1
	}, result)

	// 4. Hyphenate word boundaries
	result = whitespaceRun.ReplaceAllString(result, "-")

	// 5. Clean up hyphenation
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// # Bengali Transliteration

// bengaliToLatin maps individual Bengali code points to their phonetic Latin
// equivalents. The virama (hosonto) maps to an empty string so consonant
// conjuncts collapse (ক + ্ + ত → "kt").
var bengaliToLatin = map[rune]string{
	// Diacritic signs
	'ঁ': "n",  // chandrabindu
	'ং': "ng", // anusvara
	'ঃ': "h",  // visarga
	'্': "",   // virama / hosonto

	// Independent vowels
	'অ': "a", 'আ': "a", 'ই': "i", 'ঈ': "i", 'উ': "u", 'ঊ': "u",
	'ঋ': "ri", 'এ': "e", 'ঐ': "oi", 'ও': "o", 'ঔ': "ou",

	// Vowel signs (kar)
	'া': "a", 'ি': "i", 'ী': "i", 'ু': "u", 'ূ': "u",
	'ৃ': "ri", 'ে': "e", 'ৈ': "oi", 'ো': "o", 'ৌ': "ou",

	// Consonants
	'ক': "k", 'খ': "kh", 'গ': "g", 'ঘ': "gh", 'ঙ': "ng",
	'চ': "ch", 'ছ': "chh", 'জ': "j", 'ঝ': "jh", 'ঞ': "n",
	'ট': "t", 'ঠ': "th", 'ড': "d", 'ঢ': "dh", 'ণ': "n",
	'ত': "t", 'থ': "th", 'দ': "d", 'ধ': "dh", 'ন': "n",
	'প': "p", 'ফ': "ph", 'ব': "b", 'ভ': "bh", 'ম': "m",
	'য': "j", 'র': "r", 'ল': "l", 'শ': "sh", 'ষ': "sh",
	'স': "s", 'হ': "h", 'ড়': "r", 'ঢ়': "rh", 'য়': "y", 'ৎ': "t",

	// Bengali digits
	'০': "0", '১': "1", '২': "2", '৩': "3", '৪': "4",
	'৫': "5", '৬': "6", '৭': "7", '৮': "8", '৯': "9",
}

// Transliterate converts a Bengali title into a Latin-only slug.
//
// Each Bengali code point is first replaced via the fixed phonetic table,
// then the result goes through the same [From] pipeline. Characters without
// a table entry pass through unchanged and are sanitized by From.
func Transliterate(title string) string {
	normalized := norm.NFC.String(title)

	var builder strings.Builder
	builder.Grow(len(normalized))

	for _, r := range normalized {
		if latin, ok := bengaliToLatin[r]; ok {
			builder.WriteString(latin)
			continue
		}
		builder.WriteRune(r)
	}

	return From(builder.String())
}

// # Fallback & Uniqueness

// Fallback returns a synthetic slug of the form "prefix-<epoch-millis>".
//
// It is used when the normalization pipeline produces an empty result, e.g.
// a title consisting entirely of punctuation.
func Fallback(prefix string) string {
	return prefix + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// Unique probes the store for a free slug derived from base.
//
// It tries base, then base-1, base-2, ... until exists reports false. The
// probe and the subsequent insert are not transactional; the UNIQUE index on
// every slug column is the backstop for concurrent identical titles.
func Unique(ctx context.Context, base string, exists func(ctx context.Context, slug string) (bool, error)) (string, error) {
	candidate := base

	for suffix := 1; ; suffix++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("slug: uniqueness probe failed: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(suffix)
	}
}
