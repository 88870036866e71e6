package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/rivo/uniseg"

	"github.com/matzehuels/prettydoc/pkg/doc"
	"github.com/matzehuels/prettydoc/pkg/errors"
)

// mode is the layout state an item is rendered in.
type mode uint8

const (
	// modeTop applies outside of any group: soft breaks are taken and
	// IfBreak picks its flat branch.
	modeTop mode = iota
	modeBreak
	modeFlat
)

const blanks = " \t"

// item is one pending unit of work: a node with the indentation level and
// mode it is rendered in.
type item struct {
	level int
	mode  mode
	node  *doc.Node
}

// Printer renders documents with a fixed configuration.
type Printer struct {
	config Config
	logger *log.Logger
}

// Option configures a [Printer].
type Option func(*Printer)

// WithLogger sets the logger that receives render statistics at debug level.
// A nil logger selects log.Default().
func WithLogger(logger *log.Logger) Option {
	return func(p *Printer) {
		if logger == nil {
			logger = log.Default()
		}
		p.logger = logger
	}
}

// NewPrinter returns a printer for cfg. It fails with INVALID_CONFIG if cfg
// does not validate.
func NewPrinter(cfg Config, opts ...Option) (*Printer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Printer{
		config: cfg,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Config returns the configuration the printer was created with.
func (p *Printer) Config() Config { return p.config }

// Render lays out d with cfg. It is shorthand for creating a [Printer] that
// discards its log output and calling [Printer.Render].
func Render(d *doc.Node, cfg Config) (string, error) {
	p, err := NewPrinter(cfg, WithLogger(log.NewWithOptions(io.Discard, log.Options{})))
	if err != nil {
		return "", err
	}
	return p.Render(d)
}

// Render lays out d. It returns a MULTILINE_TEXT or NEGATIVE_INDENT error,
// and no output, if d is malformed.
//
// Text is written verbatim except at the end of a line: spaces and tabs
// before a line break are dropped, including those inside a Text leaf.
func (p *Printer) Render(d *doc.Node) (string, error) {
	if err := doc.Validate(d); err != nil {
		p.logger.Debug("invalid document", "code", errors.GetCode(err), "reason", errors.UserMessage(err))
		return "", err
	}

	s := &state{
		config: p.config,
		stack:  []item{{level: 0, mode: modeTop, node: d}},
	}
	s.run()

	p.logger.Debug("rendered document",
		"lines", s.stats.lines,
		"flat_groups", s.stats.flat,
		"broken_groups", s.stats.broken,
		"max_stack", s.stats.maxStack,
		"bytes", len(s.out))
	return string(s.out), nil
}

type stats struct {
	lines    int
	flat     int
	broken   int
	maxStack int
}

// state is the per-call render state.
type state struct {
	config Config
	out    []byte
	col    int
	stack  []item
	stats  stats
}

func (s *state) run() {
	s.stats.lines = 1
	for len(s.stack) > 0 {
		s.stats.maxStack = max(s.stats.maxStack, len(s.stack))
		it := s.pop()
		n := it.node

		switch n.Kind() {
		case doc.KindText:
			if s.config.BreakLongText && s.col+n.Width() > s.config.MaxWidth {
				s.wrapText(n.Str(), it.level)
			} else {
				s.write(n.Str(), n.Width())
			}
		case doc.KindHardline:
			s.newline(it.level)
		case doc.KindLiteralline:
			s.newline(0)
		case doc.KindSoftline:
			if it.mode == modeFlat {
				s.write(n.Str(), n.Width())
			} else {
				s.newline(it.level)
			}
		case doc.KindConcat:
			for i := n.Len() - 1; i >= 0; i-- {
				s.stack = append(s.stack, item{it.level, it.mode, n.Child(i)})
			}
		case doc.KindNest:
			s.stack = append(s.stack, item{it.level + n.Delta(), it.mode, n.Child(0)})
		case doc.KindGroup:
			m := modeFlat
			if it.mode != modeFlat && !s.fits(n.Child(0)) {
				m = modeBreak
			}
			if m == modeFlat {
				s.stats.flat++
			} else {
				s.stats.broken++
			}
			s.stack = append(s.stack, item{it.level, m, n.Child(0)})
		case doc.KindIfBreak:
			branch := n.Flat()
			if it.mode == modeBreak {
				branch = n.Broken()
			}
			s.stack = append(s.stack, item{it.level, it.mode, branch})
		}
	}
}

func (s *state) pop() item {
	it := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return it
}

// fitItem is a node visited by the fits check. rest marks nodes that follow
// the group rather than belong to it.
type fitItem struct {
	mode mode
	node *doc.Node
	rest bool
}

// fits reports whether content, rendered flat from the current column, stays
// within the width together with everything after it up to the next line
// break that is taken. The pending stack supplies what comes after the group.
func (s *state) fits(content *doc.Node) bool {
	remaining := s.config.MaxWidth - s.col
	pending := []fitItem{{modeFlat, content, false}}
	next := len(s.stack) - 1

	for remaining >= 0 {
		if len(pending) == 0 {
			if next < 0 {
				return true
			}
			it := s.stack[next]
			next--
			pending = append(pending, fitItem{it.mode, it.node, true})
			continue
		}

		f := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		n := f.node
		switch n.Kind() {
		case doc.KindText:
			remaining -= n.Width()
		case doc.KindHardline, doc.KindLiteralline:
			// A forced break inside the group rules out flat mode; one after
			// it ends the line that has to fit.
			return f.rest
		case doc.KindSoftline:
			if f.mode != modeFlat {
				return true
			}
			remaining -= n.Width()
		case doc.KindConcat:
			for i := n.Len() - 1; i >= 0; i-- {
				pending = append(pending, fitItem{f.mode, n.Child(i), f.rest})
			}
		case doc.KindNest, doc.KindGroup:
			pending = append(pending, fitItem{f.mode, n.Child(0), f.rest})
		case doc.KindIfBreak:
			branch := n.Flat()
			if f.mode == modeBreak {
				branch = n.Broken()
			}
			pending = append(pending, fitItem{f.mode, branch, f.rest})
		}
	}
	return false
}

func (s *state) write(text string, width int) {
	s.out = append(s.out, text...)
	s.col += width
}

// newline terminates the current line, dropping its trailing blanks, and
// indents the next one to level.
func (s *state) newline(level int) {
	end := len(s.out)
	for end > 0 && (s.out[end-1] == ' ' || s.out[end-1] == '\t') {
		end--
	}
	s.out = append(s.out[:end], '\n')
	s.stats.lines++

	s.col = level * s.config.IndentWidth
	if s.config.UseTabs {
		for range level {
			s.out = append(s.out, '\t')
		}
	} else {
		for range s.col {
			s.out = append(s.out, ' ')
		}
	}
}

// wrapText writes text that does not fit on the current line, breaking it at
// the last blank that keeps each piece within the width. A piece without a
// suitable blank moves to a fresh line first; only a token that starts at
// the indentation column is written whole and may overflow.
func (s *state) wrapText(text string, level int) {
	indent := level * s.config.IndentWidth
	for {
		width := uniseg.GraphemeClusterCount(text)
		room := s.config.MaxWidth - s.col
		if width <= room {
			s.write(text, width)
			return
		}

		cut := lastBlankWithin(text, room)
		if cut <= 0 && s.col > indent {
			s.newline(level)
			text = strings.TrimLeft(text, blanks)
			if text == "" {
				return
			}
			continue
		}
		if cut <= 0 {
			i := strings.IndexAny(text[1:], blanks)
			if i < 0 {
				s.write(text, width)
				return
			}
			cut = i + 1
		}

		head := text[:cut]
		s.write(head, uniseg.GraphemeClusterCount(head))
		text = strings.TrimLeft(text[cut:], blanks)
		if text == "" {
			return
		}
		s.newline(level)
	}
}

// lastBlankWithin returns the byte offset of the last blank in text that is
// preceded by at most room columns, or -1.
func lastBlankWithin(text string, room int) int {
	cut, width, pos := -1, 0, 0
	state := -1
	for rest := text; len(rest) > 0 && width <= room; {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == " " || cluster == "\t" {
			cut = pos
		}
		width++
		pos += len(cluster)
	}
	return cut
}
