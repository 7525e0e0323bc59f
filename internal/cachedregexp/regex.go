// Package cachedregexp compiles regular expressions once per process and
// shares them between callers.
package cachedregexp

import (
	"regexp"
	"sync"
)

var cache sync.Map // map[string]*regexp.Regexp

// MustCompile is like regexp.MustCompile but returns the cached expression
// when the same pattern has been compiled before.
func MustCompile(exp string) *regexp.Regexp {
	if compiled, ok := cache.Load(exp); ok {
		return compiled.(*regexp.Regexp)
	}

	compiled, _ := cache.LoadOrStore(exp, regexp.MustCompile(exp))

	return compiled.(*regexp.Regexp)
}
