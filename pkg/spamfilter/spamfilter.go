// Copyright (c) 2026 Smriti. All rights reserved.
// Author: rafid.hsn.bd@gmail.com

// Package spamfilter detects URLs and contact information in user-submitted
// text.
//
// # Usage
//
// Comment bodies are screened before persistence; a single match rejects the
// submission. The pattern set covers http(s) links, bare domains, IP
// addresses, common link-shortener and messaging-app domains, and email
// addresses.
package spamfilter

import "regexp"

// contactPatterns is the fixed screening set. Order matters only for
// [Match]'s reported pattern name; detection is any-match.
var contactPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"url", regexp.MustCompile(`(?i)\bhttps?://\S+`)},
	{"www", regexp.MustCompile(`(?i)\bwww\.\S+`)},
	{"shortener", regexp.MustCompile(`(?i)\b(?:bit\.ly|tinyurl\.com|goo\.gl|t\.co|is\.gd|cutt\.ly|rb\.gy)\b`)},
	{"messaging", regexp.MustCompile(`(?i)\b(?:wa\.me|t\.me|telegram\.me|m\.me|imo\.im)\b`)},
	// Email must precede bare_domain, otherwise "user@mail.com" reports as a domain.
	{"email", regexp.MustCompile(`(?i)\b[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`)},
	{"ip_address", regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)},
	{"bare_domain", regexp.MustCompile(`(?i)\b[a-z0-9][a-z0-9-]*\.(?:com|net|org|info|biz|xyz|io|me|tv|cc|bd|in)\b`)},
}

// Contains reports whether text matches any pattern in the screening set.
func Contains(text string) bool {
	name, _ := Match(text)
	return name != ""
}

// Match returns the name of the first matching pattern and the matched text.
// It returns ("", "") when the text is clean.
func Match(text string) (name, matched string) {
	for _, entry := range contactPatterns {
		if m := entry.pattern.FindString(text); m != "" {
			return entry.name, m
		}
	}
	return "", ""
}
