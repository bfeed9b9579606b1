// Package textdata holds the immutable reference data the classifier scores
// against: the bundled English dictionary, the common-password list, the
// n-gram membership tables and the reference letter frequencies.
//
// Everything here is built exactly once at package load from embedded
// payloads and never mutated afterwards, so all lookups are safe for
// concurrent use without locking.
package textdata

import (
	_ "embed"
	"strings"
)

//go:embed words.txt
var wordsRaw string

//go:embed passwords.txt
var passwordsRaw string

// StringSet is an immutable membership set with O(1) average lookup.
type StringSet struct {
	m map[string]struct{}
}

// NewStringSet builds a set from the given items.
func NewStringSet(items ...string) *StringSet {
	s := &StringSet{m: make(map[string]struct{}, len(items))}
	for _, item := range items {
		s.m[item] = struct{}{}
	}
	return s
}

// Contains reports whether v is a member of the set.
func (s *StringSet) Contains(v string) bool {
	_, ok := s.m[v]
	return ok
}

// Len returns the number of members.
func (s *StringSet) Len() int {
	return len(s.m)
}

func setFromLines(raw string) *StringSet {
	lines := strings.Split(raw, "\n")
	s := &StringSet{m: make(map[string]struct{}, len(lines))}
	for _, line := range lines {
		entry := strings.TrimSpace(line)
		if entry == "" {
			continue
		}
		s.m[entry] = struct{}{}
	}
	return s
}

var (
	englishWords    = setFromLines(wordsRaw)
	commonPasswords = setFromLines(passwordsRaw)
)

// EnglishWords returns the bundled English dictionary. Entries are lowercase.
func EnglishWords() *StringSet {
	return englishWords
}

// CommonPasswords returns the known-weak-password set. Entries are matched
// exactly, case preserved.
func CommonPasswords() *StringSet {
	return commonPasswords
}
