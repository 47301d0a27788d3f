package find

// Options is the set of boolean toggles derived from dash-prefixed tokens.
type Options struct {
	Verbose   bool
	Help      bool
	Version   bool
	Recursive bool
}

// ParseOptions folds option tokens into an Options value. Unrecognized
// tokens request the usage text instead of failing.
func ParseOptions(tokens []string) Options {
	var opts Options
	for _, tok := range tokens {
		switch tok {
		case "-v", "--verbose":
			opts.Verbose = true
		case "-V", "--version":
			opts.Version = true
		case "-r", "--recursive":
			opts.Recursive = true
		default:
			// -h, --help and anything unknown
			opts.Help = true
		}
	}
	return opts
}
