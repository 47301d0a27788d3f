package find

import "regexp"

// Matcher tests base filenames against a compiled regular expression.
type Matcher struct {
	src string
	re  *regexp.Regexp
}

// Compile parses src as a regular expression.
func Compile(src string) (*Matcher, error) {
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, err
	}
	return &Matcher{src: src, re: re}, nil
}

// MustCompile is like Compile but panics on an invalid expression.
func MustCompile(src string) *Matcher {
	m, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return m
}

// Match reports whether name contains a match of the expression.
func (m *Matcher) Match(name string) bool {
	return m.re.MatchString(name)
}

// Source returns the expression as it was given on the command line.
func (m *Matcher) Source() string {
	return m.src
}

// firstMatch returns the first matcher accepting name, or nil.
func firstMatch(matchers []*Matcher, name string) *Matcher {
	if name == "" {
		return nil
	}
	for _, m := range matchers {
		if m.Match(name) {
			return m
		}
	}
	return nil
}
