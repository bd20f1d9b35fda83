package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// ExemptionRule lets requests to Path with one of Methods through without
// a token. Path is compared verbatim: no patterns, no trailing-slash folding.
type ExemptionRule struct {
	Path    string
	Methods []string
}

// ExemptionFilter answers IsExempt in O(1) from rules compiled at startup.
// It is read-only after construction and safe for concurrent use.
type ExemptionFilter struct {
	rules map[string]map[string]struct{}
}

func NewExemptionFilter(rules ...ExemptionRule) *ExemptionFilter {
	f := &ExemptionFilter{rules: make(map[string]map[string]struct{}, len(rules))}
	for _, r := range rules {
		methods, ok := f.rules[r.Path]
		if !ok {
			methods = make(map[string]struct{}, len(r.Methods))
			f.rules[r.Path] = methods
		}
		for _, m := range r.Methods {
			methods[strings.ToUpper(m)] = struct{}{}
		}
	}
	return f
}

// IsExempt reports whether a rule matches both path and method.
func (f *ExemptionFilter) IsExempt(method, path string) bool {
	methods, ok := f.rules[path]
	if !ok {
		return false
	}
	_, ok = methods[strings.ToUpper(method)]
	return ok
}

// Skipper adapts the filter to echo's middleware Skipper contract.
func (f *ExemptionFilter) Skipper() echomiddleware.Skipper {
	return func(c echo.Context) bool {
		r := c.Request()
		return f.IsExempt(r.Method, r.URL.Path)
	}
}
