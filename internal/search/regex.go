package search

import (
	"regexp"
	"sync"

	"github.com/cristianoliveira/notedeck/internal/domain"
)

// RegexProvider matches fields against the query compiled as a regular
// expression. Invalid patterns match nothing.
type RegexProvider struct {
	opts Options

	mu    sync.Mutex
	cache map[string]*regexp.Regexp
}

// NewRegexProvider creates a new regex search provider.
func NewRegexProvider(opts ...Option) Provider {
	return &RegexProvider{
		opts:  applyOptions(opts),
		cache: make(map[string]*regexp.Regexp),
	}
}

// Match returns true if any configured field matches the pattern.
func (p *RegexProvider) Match(note domain.Note, query string) bool {
	if query == "" {
		return true
	}
	re := p.compile(query)
	if re == nil {
		return false
	}
	for _, field := range p.opts.Fields {
		for _, value := range fieldValues(note, field) {
			if value != "" && re.MatchString(value) {
				return true
			}
		}
	}
	return false
}

func (p *RegexProvider) compile(query string) *regexp.Regexp {
	p.mu.Lock()
	defer p.mu.Unlock()
	if re, ok := p.cache[query]; ok {
		return re
	}
	pattern := query
	if p.opts.CaseInsensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		re = nil
	}
	p.cache[query] = re
	return re
}

// Name returns the provider name.
func (p *RegexProvider) Name() string {
	return "regex"
}
