package find

import (
	"fmt"
	"io/fs"
	"strings"
)

// FS is the read-only filesystem view used for classification and traversal.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
}

// Kind tags a classified command-line token.
type Kind int

const (
	KindOption Kind = iota
	KindPath
	KindPattern
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindOption:
		return "option"
	case KindPath:
		return "path"
	case KindPattern:
		return "pattern"
	case KindInvalid:
		return "invalid"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Classified is the result of classifying one token. Matcher is set for
// KindPattern and Err for KindInvalid.
type Classified struct {
	Token   string
	Kind    Kind
	Matcher *Matcher
	Err     error
}

// InvalidArgumentError reports a token that is neither an existing path nor
// a valid regular expression.
type InvalidArgumentError struct {
	Token string
	Err   error
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s, not a regex nor a path", e.Token)
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

// Args is the classified command line.
type Args struct {
	Options  Options
	Paths    []string
	Matchers []*Matcher
}

// ClassifyToken decides what a single token is. Path existence is checked
// before the token is compiled, so an existing path never becomes a pattern.
func ClassifyToken(fsys FS, token string) Classified {
	if strings.HasPrefix(token, "-") {
		return Classified{Token: token, Kind: KindOption}
	}
	if _, err := fsys.Stat(token); err == nil {
		return Classified{Token: token, Kind: KindPath}
	}
	m, err := Compile(token)
	if err != nil {
		return Classified{Token: token, Kind: KindInvalid, Err: err}
	}
	return Classified{Token: token, Kind: KindPattern, Matcher: m}
}

// Classify partitions tokens into options, root paths and matchers, keeping
// the input order inside each group. It stops at the first invalid token.
func Classify(fsys FS, tokens []string) (*Args, error) {
	args := &Args{}
	var optionTokens []string
	for _, tok := range tokens {
		c := ClassifyToken(fsys, tok)
		switch c.Kind {
		case KindOption:
			optionTokens = append(optionTokens, tok)
		case KindPath:
			args.Paths = append(args.Paths, tok)
		case KindPattern:
			args.Matchers = append(args.Matchers, c.Matcher)
		case KindInvalid:
			return nil, &InvalidArgumentError{Token: tok, Err: c.Err}
		}
	}
	args.Options = ParseOptions(optionTokens)
	return args, nil
}
