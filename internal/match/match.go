package match

import (
	"fmt"
	"regexp"
	"strings"
)

// M matches strings either by exact comparison or by a regular
// expression. A pattern wrapped in slashes (e.g. "/SAVE.*/") is
// treated as a regular expression, anything else as a plain string.
// An empty matcher matches everything.
type M struct {
	pattern *regexp.Regexp
	spec    string
}

func FromString(s string) (matcher M, err error) {
	err = matcher.FromString(s)
	return
}

func FromPatternOrPanic(s string) (matcher M) {
	if err := matcher.FromPattern(s); err != nil {
		panic(err)
	}
	return
}

func (this *M) FromString(s string) error {
	if strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/") && len(s) >= 2 {
		this.spec = s[1 : len(s)-1]
		return this.FromPattern(this.spec)
	}
	this.spec = s
	return nil
}

func (this *M) FromPattern(s string) (err error) {
	this.spec = s
	this.pattern, err = regexp.Compile(s)
	return
}

func (this *M) String() string {
	if this.UsesRegex() {
		return fmt.Sprintf("/%s/", this.spec)
	}
	return this.spec
}

func (this *M) IsEmpty() bool {
	return this.pattern == nil && this.spec == ""
}

func (this *M) UsesRegex() bool {
	return this.pattern != nil
}

func (this *M) MatchString(s string) bool {
	if this.IsEmpty() {
		return true
	}
	if this.UsesRegex() {
		return this.pattern.MatchString(s)
	}
	return this.spec == s
}
