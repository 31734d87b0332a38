package ui

import (
	"reflect"
	"testing"

	"github.com/sahilm/fuzzy"
)

func TestFilterBySubstring(t *testing.T) {
	base := []string{"hello world", "foo bar", "hello bar"}
	idx := []int{0, 1, 2}
	cfg := FilterConfig{MaxResults: 10}
	want := []int{0, 2}
	if got := filterBySubstring("hello", base, idx, cfg); !reflect.DeepEqual(got, want) {
		t.Fatalf("substring filter mismatch: want %v got %v", want, got)
	}
	cfg.MaxResults = 1
	want = []int{0}
	if got := filterBySubstring("hello", base, idx, cfg); !reflect.DeepEqual(got, want) {
		t.Fatalf("substring maxresults mismatch: want %v got %v", want, got)
	}
}

func TestFilterByFuzzyThresholds(t *testing.T) {
	base := []string{"viewport fit", "event wiring", "viewer basics"}
	idx := []int{0, 1, 2}
	cfg := FilterConfig{MinCoverage: 0.6, MaxSpread: 40, MaxResults: 10}

	got := filterByFuzzy("viewport", base, idx, cfg)
	if len(got) == 0 || got[0] != 0 {
		t.Fatalf("expected 'viewport fit' first, got %v", got)
	}

	// MaxResults truncates even when more candidates match.
	cfg.MaxResults = 1
	if got := filterByFuzzy("vie", base, idx, cfg); len(got) != 1 {
		t.Fatalf("expected a single result, got %v", got)
	}
}

func TestMatchCoverageAndSpread(t *testing.T) {
	m := fuzzy.Match{MatchedIndexes: []int{0, 1, 5}}
	if got := matchCoverage("abc", m); got != 1 {
		t.Fatalf("expected full coverage, got %v", got)
	}
	if got := matchSpread(m); got != 5 {
		t.Fatalf("expected spread 5, got %d", got)
	}
	if got := matchSpread(fuzzy.Match{}); got != 0 {
		t.Fatalf("expected zero spread for empty match, got %d", got)
	}
	if got := matchCoverage("", fuzzy.Match{}); got != 1 {
		t.Fatalf("expected coverage 1 for empty query, got %v", got)
	}
}
