// Package parse provides HOCON parsing support.
//
// [Parse] runs a recursive descent over a [token.Cursor] and registers
// every value against its full dotted key path in a [tree.Builder]. Values
// whose references are already known are compiled on the spot; the others
// are kept as pending segment lists and resolved when read.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/tony-format/hocon/debug"
	"github.com/signadot/tony-format/hocon/ir"
	"github.com/signadot/tony-format/hocon/resolve"
	"github.com/signadot/tony-format/hocon/token"
	"github.com/signadot/tony-format/hocon/tree"
)

type parser struct {
	c     *token.Cursor
	opts  *parseOpts
	depth int
}

// Parse parses a HOCON document into an object tree. Grammar violations
// are reported as *token.FormatErr.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	b, err := ParseBuilder(d, opts...)
	if err != nil {
		return nil, err
	}
	return b.Root(), nil
}

// ParseBuilder is Parse returning the document builder, which can look
// up and resolve values of the document.
func ParseBuilder(d []byte, opts ...ParseOption) (*tree.Builder, error) {
	if len(d) == 0 {
		return nil, ErrEmpty
	}
	pOpts := &parseOpts{depth: defaultDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{
		c:    token.NewCursor(string(d)),
		opts: pOpts,
	}
	b := tree.New()
	if err := p.document(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (p *parser) tracef(msg string, args ...any) {
	if p.opts.trace || debug.Parse() {
		debug.Logf(msg+" at %s\n", append(args, p.c)...)
	}
}

func (p *parser) errorf(msg string) error {
	return p.c.Errorf(msg)
}

func (p *parser) document(b *tree.Builder) error {
	p.c.SkipBlank()
	if p.c.Peek() != '{' {
		return p.fields(b, "", false)
	}
	err := p.object(b, "")
	if fe := (*token.FormatErr)(nil); errors.As(err, &fe) && fe.Msg == msgObjectEnd && p.c.AtEnd() {
		return p.errorf(msgConfigBraces)
	}
	if err != nil {
		return err
	}
	p.c.SkipBlank()
	if !p.c.AtEnd() {
		return p.errorf(msgConfigBraces)
	}
	return nil
}

func (p *parser) fields(b *tree.Builder, prefix string, inObject bool) error {
	for {
		p.c.SkipBlank()
		if p.c.AtEnd() {
			return nil
		}
		if p.c.Peek() == '}' {
			if inObject {
				return nil
			}
			return p.errorf(msgStrayClose)
		}
		if err := p.field(b, prefix); err != nil {
			return err
		}
		if _, err := p.commas(); err != nil {
			return err
		}
	}
}

func (p *parser) field(b *tree.Builder, prefix string) error {
	pos := p.c.Pos()
	key, err := p.key()
	if err != nil {
		return err
	}
	path := ir.JoinPath(prefix, key)
	p.tracef("field %q", path)
	if p.opts.positions != nil {
		p.opts.positions[path] = pos
	}
	p.c.SkipInline()
	if token.IsLineSeparator(p.c.Peek()) {
		// only an object or array may start on a later line
		m := p.c.Mark()
		p.c.TrimLeft()
		if r := p.c.Peek(); r != '{' && r != '[' {
			p.c.Reset(m)
			return p.errorf(msgKeySeparator)
		}
	}
	switch p.c.Peek() {
	case ':', '=':
		p.c.Advance()
	case '{', '[':
	default:
		return p.errorf(msgKeySeparator)
	}
	return p.value(b, path)
}

// key reads a possibly composite key made of quoted and unquoted pieces.
func (p *parser) key() (string, error) {
	buf := &strings.Builder{}
	quoted := false
loop:
	for {
		switch r := p.c.Peek(); {
		case r == '"':
			p.c.Advance()
			body, ok := p.c.ReadQuoted()
			if strings.ContainsAny(body, "\n\r") {
				return "", p.errorf(msgKeyNewline)
			}
			if !ok {
				return "", p.errorf(msgKeyQuote)
			}
			s, err := token.Unquote(body)
			if err != nil {
				return "", p.errorf(fmt.Sprintf("Invalid key %q: %v", body, err))
			}
			if strings.ContainsAny(s, "\n\r") {
				return "", p.errorf(msgKeyNewline)
			}
			buf.WriteString(s)
			quoted = true
		case r == token.EOF, r == ':', r == '=', r == '{', r == '[', token.IsWhitespace(r):
			break loop
		default:
			s := p.c.ReadToOneOf(`:="{[]},`, token.IsWhitespace)
			if s == "" {
				break loop
			}
			buf.WriteString(s)
		}
	}
	key := buf.String()
	switch {
	case key == "" && quoted:
		return "", p.errorf("Key cannot be empty")
	case key == "":
		return "", p.errorf(fmt.Sprintf("Unexpected character %q, expected a key", string(p.c.Peek())))
	}
	for _, seg := range strings.Split(key, ".") {
		if seg == "" {
			return "", p.errorf(fmt.Sprintf("Property name %q cannot start with a dot.", key))
		}
	}
	return key, nil
}

// value parses the value of path and registers it.
func (p *parser) value(b *tree.Builder, path string) error {
	p.c.SkipBlank()
	if p.c.Peek() == '{' {
		return p.object(b, path)
	}
	n, err := p.leaf(b, path, false)
	if err != nil {
		return err
	}
	b.RegisterValue(path, n)
	return nil
}

// leaf parses any value but an object. b is the scope for references.
func (p *parser) leaf(b *tree.Builder, path string, inArray bool) (*ir.Node, error) {
	switch p.c.Peek() {
	case '[':
		return p.array(b, path)
	case '"':
		segs, err := p.quoted()
		if err != nil {
			return nil, err
		}
		return p.compile(b, segs)
	case '$':
		segs, err := p.reference()
		if err != nil {
			return nil, err
		}
		return p.compile(b, segs)
	}
	return p.unquoted(path, inArray)
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.opts.depth {
		return p.errorf(fmt.Sprintf("Maximum nesting depth of %d exceeded", p.opts.depth))
	}
	return nil
}

func (p *parser) object(b *tree.Builder, path string) error {
	if p.c.Next() != '{' {
		return p.errorf(msgObjectStart)
	}
	if err := p.enter(); err != nil {
		return err
	}
	defer func() { p.depth-- }()
	p.tracef("object %q", path)
	p.c.SkipBlank()
	if p.c.Peek() == '}' {
		p.c.Advance()
		b.RegisterValue(path, nil)
		return nil
	}
	if err := p.fields(b, path, true); err != nil {
		return err
	}
	if p.c.Peek() != '}' {
		return p.errorf(msgObjectEnd)
	}
	p.c.Advance()
	return nil
}

func (p *parser) array(b *tree.Builder, path string) (*ir.Node, error) {
	if p.c.Next() != '[' {
		return nil, p.errorf(msgArrayStart)
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	p.tracef("array %q", path)
	res := ir.FromSlice(nil)
	p.c.SkipBlank()
	switch p.c.Peek() {
	case ']':
		p.c.Advance()
		return res, nil
	case ',':
		return nil, p.errorf(msgArrayLeading)
	}
	for {
		p.c.SkipBlank()
		if p.c.AtEnd() {
			return nil, p.errorf(msgArrayEnd)
		}
		ep := ir.JoinPath(path, strconv.Itoa(len(res.Values)))
		var elt *ir.Node
		if p.c.Peek() == '{' {
			child := tree.New(tree.WithParent(b))
			if err := p.object(child, ep); err != nil {
				return nil, err
			}
			elt = child.Root().GetPath(ep)
		} else {
			n, err := p.leaf(b, ep, true)
			if err != nil {
				return nil, err
			}
			elt = n
		}
		res.Values = append(res.Values, elt)
		n, err := p.commas()
		if err != nil {
			return nil, err
		}
		switch {
		case p.c.Peek() == ']' && n > 0:
			return nil, p.errorf(msgArrayTrailing)
		case p.c.Peek() == ']':
			p.c.Advance()
			return res, nil
		case p.c.AtEnd():
			return nil, p.errorf(msgArrayEnd)
		}
	}
}

// commas consumes the separators after a value and returns how many
// commas were found.
func (p *parser) commas() (int, error) {
	n := 0
	for {
		p.c.SkipBlank()
		if p.c.Peek() != ',' {
			break
		}
		p.c.Advance()
		n++
	}
	if n > 1 {
		return n, p.errorf(msgCommas)
	}
	return n, nil
}

func (p *parser) unquoted(path string, inArray bool) (*ir.Node, error) {
	stop := ",}"
	if inArray {
		stop += "]"
	}
	buf := &strings.Builder{}
	for {
		buf.WriteString(p.c.ReadToOneOf(stop+"/", token.IsLineSeparator))
		if p.c.Peek() != '/' || p.c.AtComment() {
			break
		}
		buf.WriteRune(p.c.Next())
	}
	s := token.TrimSpace(buf.String())
	switch {
	case s == "":
		return nil, p.errorf(fmt.Sprintf("Missing value for %q", path))
	case s == "null":
		return ir.Null(), nil
	case token.IsInt(s):
		i, _ := strconv.ParseInt(s, 10, 64)
		return ir.FromInt(i), nil
	case token.IsFloat(s):
		f, _ := strconv.ParseFloat(s, 64)
		return ir.FromDouble(f), nil
	}
	return ir.FromString(s), nil
}

// quoted parses a single or triple quoted string and any string or
// reference concatenated to it.
func (p *parser) quoted() ([]ir.Segment, error) {
	var s string
	if p.c.TestSequence(`"""`, true) {
		body, ok := p.c.ReadToSequence(`"""`)
		if !ok {
			return nil, p.errorf(msgMultilineEOF)
		}
		for p.c.Peek() == '"' {
			body += `"`
			p.c.Advance()
		}
		s = body
	} else {
		p.c.Advance()
		body, ok := p.c.ReadQuoted()
		if strings.ContainsAny(body, "\n\r") {
			return nil, p.errorf(msgMultilineSingle)
		}
		if !ok {
			return nil, p.errorf(msgStringEnd)
		}
		u, err := token.Unquote(body)
		if err != nil {
			return nil, p.errorf(fmt.Sprintf("Invalid string %q: %v", body, err))
		}
		s = u
	}
	return p.concat([]ir.Segment{ir.Lit(ir.FromString(s))})
}

func (p *parser) reference() ([]ir.Segment, error) {
	if p.c.Next() != '$' {
		return nil, p.errorf(msgRefStart)
	}
	p.c.SkipInline()
	if p.c.Next() != '{' {
		return nil, p.errorf(msgRefBrace)
	}
	path, ok := p.c.ReadToChar('}')
	if !ok {
		return nil, p.errorf(msgRefEnd)
	}
	path = token.TrimSpace(path)
	if path == "" || strings.IndexFunc(path, token.IsWhitespace) >= 0 {
		return nil, p.errorf(fmt.Sprintf("Invalid reference path %q", path))
	}
	return p.concat([]ir.Segment{ir.Ref(path)})
}

// concat appends a string or reference following on the same line.
func (p *parser) concat(segs []ir.Segment) ([]ir.Segment, error) {
	m := p.c.Mark()
	p.c.SkipInline()
	var (
		more []ir.Segment
		err  error
	)
	switch p.c.Peek() {
	case '"':
		more, err = p.quoted()
	case '$':
		more, err = p.reference()
	default:
		p.c.Reset(m)
		return segs, nil
	}
	if err != nil {
		return nil, err
	}
	return append(segs, more...), nil
}

// compile resolves segs against b when all references are known, and
// keeps them pending otherwise. References already known are cached.
func (p *parser) compile(b *tree.Builder, segs []ir.Segment) (*ir.Node, error) {
	if len(segs) == 1 && !segs[0].IsRef() {
		return segs[0].Lit, nil
	}
	for i := range segs {
		if !segs[i].IsRef() {
			continue
		}
		v, err := resolve.Ref(segs[i], b, nil)
		switch {
		case errors.Is(err, resolve.ErrUnresolved):
		case err != nil:
			return nil, err
		case v != nil:
			segs[i].Cached = v
		}
	}
	n, err := resolve.Compile(segs, b, nil)
	if errors.Is(err, resolve.ErrUnresolved) {
		p.tracef("pending %v", ir.FromSegments(segs))
		return ir.FromSegments(segs), nil
	}
	return n, err
}
