package dropdown

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Matcher decides whether an item is shown for what the user typed. It is
// only consulted when filtering is on and the query is not empty.
type Matcher interface {
	Match(query, item string) bool
}

// MatcherFunc adapts a function to Matcher.
type MatcherFunc func(query, item string) bool

func (f MatcherFunc) Match(query, item string) bool { return f(query, item) }

var (
	// Substring keeps items containing the query, ignoring case. It is the
	// default.
	Substring Matcher = MatcherFunc(matchSubstring)

	// Fuzzy keeps items containing the characters of the query in order,
	// not necessarily adjacent, as in "ctry" for "Country".
	Fuzzy Matcher = MatcherFunc(matchFuzzy)
)

func matchSubstring(query, item string) bool {
	// A Caser keeps state between calls and is not safe to share.
	lower := cases.Lower(language.Und)
	return strings.Contains(lower.String(item), lower.String(query))
}

func matchFuzzy(query, item string) bool {
	return len(fuzzy.Find(query, []string{item})) > 0
}
