package keywords

import (
	"fmt"
	"strings"

	"github.com/cognicore/keywords/pkg/keywords/internalerr"
)

// Method selects the scoring strategy.
type Method string

const (
	MethodWordFrequency Method = "wf"
	MethodTFIDF         Method = "tfidf"
	MethodPageRank      Method = "pr"
)

// Methods lists every supported method.
func Methods() []Method {
	return []Method{MethodWordFrequency, MethodTFIDF, MethodPageRank}
}

// ParseMethod resolves a method identifier, ignoring case.
func ParseMethod(name string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(name)))
	if !m.Valid() {
		return "", fmt.Errorf("method %q: %w", name, internalerr.ErrUnsupportedMethod)
	}
	return m, nil
}

// Valid reports whether m is a supported method.
func (m Method) Valid() bool {
	switch m {
	case MethodWordFrequency, MethodTFIDF, MethodPageRank:
		return true
	}
	return false
}

func (m Method) String() string {
	return string(m)
}
