package repository

import (
	"fmt"
	"strings"

	"github.com/golang/mock/gomock"
)

type queryMatcher struct {
	parts []string
}

// queryHas matches a SQL string containing every part, ignoring runs of whitespace.
func queryHas(parts ...string) gomock.Matcher {
	return queryMatcher{parts: parts}
}

func (q queryMatcher) Matches(x interface{}) bool {
	s, ok := x.(string)
	if !ok {
		return false
	}
	s = strings.Join(strings.Fields(s), " ")
	for _, p := range q.parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}

func (q queryMatcher) String() string {
	return fmt.Sprintf("query containing %q", q.parts)
}
