// Copyright (c) 2026 Smriti. All rights reserved.
// Author: rafid.hsn.bd@gmail.com

package spamfilter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rafidhsn/smriti/pkg/spamfilter"
)

/*
TestContains screens representative spam and clean comment bodies.
*/
func TestContains(t *testing.T) {
	tests := []struct {
		name string
		text string
		spam bool
	}{
		{"https_link", "check this out https://example.com/page", true},
		{"http_link", "visit http://spam.site now", true},
		{"www_prefix", "go to www.cheap-pills.net", true},
		{"bare_domain", "my site is poetryworld.com thanks", true},
		{"shortener", "bit.ly/3xYzAbc", true},
		{"telegram", "message me on t.me/dealer", true},
		{"ip_address", "connect to 192.168.1.77 for files", true},
		{"email", "write me at someone@example.org", true},
		{"clean_english", "This poem moved me to tears.", false},
		{"clean_bengali", "কবিতাটি পড়ে চোখে জল এসে গেল।", false},
		{"decimal_number", "Stanza 3.14 is my favourite part of it", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.spam, spamfilter.Contains(tt.text))
		})
	}
}

/*
TestMatch verifies the reported pattern name for diagnostics.
*/
func TestMatch(t *testing.T) {
	name, matched := spamfilter.Match("ping me at user@mail.com")
	assert.Equal(t, "email", name)
	assert.Equal(t, "user@mail.com", matched)

	name, matched = spamfilter.Match("nothing suspicious here")
	assert.Empty(t, name)
	assert.Empty(t, matched)
}
