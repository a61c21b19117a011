// Package faq answers typical recruiter questions by fuzzy matching the
// incoming message against a fixed, ordered list of canonical questions.
package faq

import (
	"github.com/pmezard/go-difflib/difflib"
)

// DefaultThreshold is the ratio a message must exceed to match a question.
const DefaultThreshold = 0.65

// Entry is a canonical question with its prewritten answer.
type Entry struct {
	Name     string
	Question string
	Answer   string
}

// Matcher returns the answer of the first entry similar enough to a query.
// Entry order is significant: it is not a best-match search.
type Matcher struct {
	entries   []Entry
	threshold float64
}

// NewMatcher creates a matcher over entries. A non-positive threshold falls
// back to DefaultThreshold.
func NewMatcher(entries []Entry, threshold float64) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	return &Matcher{
		entries:   append([]Entry(nil), entries...),
		threshold: threshold,
	}
}

// Match returns the answer for query, if any.
func (m *Matcher) Match(query string) (string, bool) {
	entry, _, ok := m.MatchEntry(query)
	if !ok {
		return "", false
	}
	return entry.Answer, true
}

// MatchEntry returns the first entry whose question ratio with query exceeds
// the threshold, together with that ratio.
func (m *Matcher) MatchEntry(query string) (Entry, float64, bool) {
	for _, entry := range m.entries {
		if ratio := Ratio(query, entry.Question); ratio > m.threshold {
			return entry, ratio, true
		}
	}
	return Entry{}, 0, false
}

// Entries returns a copy of the entries in match order.
func (m *Matcher) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Threshold returns the ratio a query must exceed.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Ratio measures the similarity of two strings as 2*M/T, where M is the
// number of characters in matching blocks and T the total length of both.
// Identical strings score 1, strings without common characters score 0.
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(runes(a), runes(b)).Ratio()
}

func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
