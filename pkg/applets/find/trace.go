package find

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Tracer receives progress notifications from a Finder. Implementations must
// not influence the search result.
type Tracer interface {
	NoRoot()
	Enter(dir string)
	Matched(name, pattern string)
	Missed(name string)
}

// NewTracer returns a Tracer that writes status lines to w when verbose is
// set, and a silent one otherwise.
func NewTracer(w io.Writer, verbose bool) Tracer {
	if !verbose {
		return nopTracer{}
	}
	return newLineTracer(w, useColor(w))
}

type nopTracer struct{}

func (nopTracer) NoRoot()                {}
func (nopTracer) Enter(string)           {}
func (nopTracer) Matched(string, string) {}
func (nopTracer) Missed(string)          {}

// lineTracer logs one line per event through a private logrus logger.
type lineTracer struct {
	log  *logrus.Logger
	info *color.Color
	hit  *color.Color
	miss *color.Color
}

func newLineTracer(w io.Writer, colored bool) *lineTracer {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(lineFormatter{})
	l.SetLevel(logrus.InfoLevel)

	t := &lineTracer{
		log:  l,
		info: color.New(color.FgBlue),
		hit:  color.New(color.FgGreen),
		miss: color.New(color.FgRed),
	}
	for _, c := range []*color.Color{t.info, t.hit, t.miss} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return t
}

func (t *lineTracer) NoRoot() {
	t.log.Info(t.info.Sprint("no path specified, using current directory"))
}

func (t *lineTracer) Enter(dir string) {
	t.log.Info(t.info.Sprintf("searching for %s", dir))
}

func (t *lineTracer) Matched(name, pattern string) {
	t.log.Info(t.hit.Sprintf("%s matches %s", name, pattern))
}

func (t *lineTracer) Missed(name string) {
	t.log.Info(t.miss.Sprintf("%s does not match any regex", name))
}

// lineFormatter prints the bare message; level and timestamp are noise for
// interactive status lines.
type lineFormatter struct{}

func (lineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if entry == nil {
		return []byte{}, nil
	}
	return []byte(entry.Message + "\n"), nil
}

func useColor(w io.Writer) bool {
	if v, ok := os.LookupEnv("NO_COLOR"); ok && v != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
