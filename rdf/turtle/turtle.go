// Package turtle parses the Turtle RDF serialization into triples.
//
// The dialect covered is the subset ontology documents use: prefix and
// base directives (both @-style and SPARQL-style), prefixed names, IRI
// references, blank nodes (labelled and property lists), collections,
// the "a" keyword, predicate and object lists, and string, numeric,
// and boolean literals with datatype or language-tag suffixes.
package turtle

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/c360studio/ontolint/rdf"
	"github.com/c360studio/ontolint/vocabulary/xsd"
)

// ParseError reports a syntax error and the position it occurred at.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("turtle: line %d, col %d: %s", e.Line, e.Col, e.Msg)
}

// Parse reads Turtle from r and returns the parsed triples.
func Parse(r io.Reader) ([]rdf.Triple, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read turtle input: %w", err)
	}
	return ParseString(string(data))
}

// ParseFile parses the Turtle document at path.
func ParseFile(path string) ([]rdf.Triple, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open turtle file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// ParseString parses a Turtle document held in a string.
func ParseString(input string) ([]rdf.Triple, error) {
	p := &parser{
		input:    input,
		line:     1,
		col:      1,
		prefixes: make(map[string]string),
	}
	for {
		p.skipWhitespace()
		if p.eof() {
			return p.triples, nil
		}
		if err := p.parseStatement(); err != nil {
			return nil, err
		}
	}
}

type parser struct {
	input    string
	pos      int
	line     int
	col      int
	prefixes map[string]string
	base     string
	bnodeSeq int
	triples  []rdf.Triple
}

func (p *parser) eof() bool { return p.pos >= len(p.input) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) peekAt(off int) byte {
	if p.pos+off >= len(p.input) {
		return 0
	}
	return p.input[p.pos+off]
}

func (p *parser) next() byte {
	c := p.input[p.pos]
	p.pos++
	if c == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return c
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Line: p.line, Col: p.col, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) emit(s rdf.Term, pred rdf.IRI, o rdf.Term) {
	p.triples = append(p.triples, rdf.Triple{Subject: s, Predicate: pred, Object: o})
}

func (p *parser) newBlankNode() rdf.BlankNode {
	p.bnodeSeq++
	return rdf.BlankNode(fmt.Sprintf("genid%d", p.bnodeSeq))
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func (p *parser) skipWhitespace() {
	for !p.eof() {
		c := p.peek()
		switch {
		case isWhitespace(c):
			p.next()
		case c == '#':
			for !p.eof() && p.peek() != '\n' {
				p.next()
			}
		default:
			return
		}
	}
}

func (p *parser) expect(c byte) error {
	if p.peek() != c {
		return p.errorf("expected %q, found %q", string(c), string(p.peek()))
	}
	p.next()
	return nil
}

// hasKeyword reports whether the case-insensitive keyword starts at the
// current position, followed by whitespace.
func (p *parser) hasKeyword(kw string) bool {
	if p.pos+len(kw) >= len(p.input) {
		return false
	}
	if !strings.EqualFold(p.input[p.pos:p.pos+len(kw)], kw) {
		return false
	}
	return isWhitespace(p.input[p.pos+len(kw)])
}

func (p *parser) skip(n int) {
	for i := 0; i < n; i++ {
		p.next()
	}
}

func (p *parser) parseStatement() error {
	switch {
	case p.peek() == '@':
		return p.parseAtDirective()
	case p.hasKeyword("PREFIX"):
		p.skip(len("PREFIX"))
		return p.parsePrefix(false)
	case p.hasKeyword("BASE"):
		p.skip(len("BASE"))
		return p.parseBase(false)
	default:
		return p.parseTriples()
	}
}

func (p *parser) parseAtDirective() error {
	p.next() // '@'
	word := p.readBareWord()
	switch word {
	case "prefix":
		return p.parsePrefix(true)
	case "base":
		return p.parseBase(true)
	default:
		return p.errorf("unknown directive @%s", word)
	}
}

func (p *parser) readBareWord() string {
	start := p.pos
	for !p.eof() {
		c := p.peek()
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			p.next()
			continue
		}
		break
	}
	return p.input[start:p.pos]
}

// parsePrefix handles "@prefix label: <iri> ." and "PREFIX label: <iri>".
func (p *parser) parsePrefix(dotted bool) error {
	p.skipWhitespace()
	start := p.pos
	for !p.eof() && p.peek() != ':' {
		if isWhitespace(p.peek()) {
			return p.errorf("malformed prefix label")
		}
		p.next()
	}
	label := p.input[start:p.pos]
	if err := p.expect(':'); err != nil {
		return err
	}
	p.skipWhitespace()
	iri, err := p.parseIRIRef()
	if err != nil {
		return err
	}
	p.prefixes[label] = string(iri)
	if dotted {
		p.skipWhitespace()
		return p.expect('.')
	}
	return nil
}

func (p *parser) parseBase(dotted bool) error {
	p.skipWhitespace()
	iri, err := p.parseIRIRef()
	if err != nil {
		return err
	}
	p.base = string(iri)
	if dotted {
		p.skipWhitespace()
		return p.expect('.')
	}
	return nil
}

func (p *parser) parseTriples() error {
	var subject rdf.Term
	var err error

	switch p.peek() {
	case '[':
		subject, err = p.parseBlankNodePropertyList()
		if err != nil {
			return err
		}
		p.skipWhitespace()
		// A bare property list may stand alone as a statement.
		if p.peek() == '.' {
			p.next()
			return nil
		}
	case '(':
		subject, err = p.parseCollection()
		if err != nil {
			return err
		}
	default:
		subject, err = p.parseSubjectNode()
		if err != nil {
			return err
		}
	}

	if err := p.parsePredicateObjectList(subject); err != nil {
		return err
	}
	p.skipWhitespace()
	return p.expect('.')
}

func (p *parser) parseSubjectNode() (rdf.Term, error) {
	switch {
	case p.peek() == '<':
		return p.parseIRIRef()
	case p.peek() == '_' && p.peekAt(1) == ':':
		return p.parseBlankNodeLabel()
	default:
		term, err := p.parsePrefixedName()
		if err != nil {
			return nil, err
		}
		return term, nil
	}
}

func (p *parser) parsePredicateObjectList(subject rdf.Term) error {
	for {
		p.skipWhitespace()
		verb, err := p.parseVerb()
		if err != nil {
			return err
		}
		for {
			p.skipWhitespace()
			object, err := p.parseObject()
			if err != nil {
				return err
			}
			p.emit(subject, verb, object)
			p.skipWhitespace()
			if p.peek() == ',' {
				p.next()
				continue
			}
			break
		}
		if p.peek() != ';' {
			return nil
		}
		for p.peek() == ';' {
			p.next()
			p.skipWhitespace()
		}
		// Trailing semicolon before the statement or property-list end.
		if c := p.peek(); c == '.' || c == ']' {
			return nil
		}
	}
}

func (p *parser) parseVerb() (rdf.IRI, error) {
	if p.peek() == 'a' && isVerbDelimiter(p.peekAt(1)) {
		p.next()
		return rdf.Type, nil
	}
	if p.peek() == '<' {
		return p.parseIRIRef()
	}
	return p.parsePrefixedName()
}

func isVerbDelimiter(c byte) bool {
	return isWhitespace(c) || c == '<' || c == '[' || c == '(' || c == '"' || c == '\'' || c == '#' || c == 0
}

func (p *parser) parseObject() (rdf.Term, error) {
	c := p.peek()
	switch {
	case c == '<':
		return p.parseIRIRef()
	case c == '[':
		return p.parseBlankNodePropertyList()
	case c == '(':
		return p.parseCollection()
	case c == '_' && p.peekAt(1) == ':':
		return p.parseBlankNodeLabel()
	case c == '"' || c == '\'':
		return p.parseStringLiteral()
	case c >= '0' && c <= '9', c == '+', c == '-',
		c == '.' && p.peekAt(1) >= '0' && p.peekAt(1) <= '9':
		return p.parseNumericLiteral()
	default:
		return p.parsePrefixedNameOrBoolean()
	}
}

// parseIRIRef parses "<...>" resolving \u escapes and the base IRI.
func (p *parser) parseIRIRef() (rdf.IRI, error) {
	if err := p.expect('<'); err != nil {
		return "", err
	}
	var sb strings.Builder
	for {
		if p.eof() {
			return "", p.errorf("unterminated IRI reference")
		}
		c := p.peek()
		switch c {
		case '>':
			p.next()
			iri := sb.String()
			if p.base != "" && !strings.Contains(iri, ":") {
				iri = p.base + iri
			}
			return rdf.IRI(iri), nil
		case '\n', ' ':
			return "", p.errorf("whitespace inside IRI reference")
		case '\\':
			p.next()
			r, err := p.readUnicodeEscape()
			if err != nil {
				return "", err
			}
			sb.WriteRune(r)
		default:
			sb.WriteByte(p.next())
		}
	}
}

func (p *parser) readUnicodeEscape() (rune, error) {
	var digits int
	switch p.peek() {
	case 'u':
		digits = 4
	case 'U':
		digits = 8
	default:
		return 0, p.errorf("invalid escape \\%s", string(p.peek()))
	}
	p.next()
	if p.pos+digits > len(p.input) {
		return 0, p.errorf("truncated unicode escape")
	}
	hex := p.input[p.pos : p.pos+digits]
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, p.errorf("invalid unicode escape %q", hex)
	}
	p.skip(digits)
	if !utf8.ValidRune(rune(v)) {
		return 0, p.errorf("escape %q is not a valid rune", hex)
	}
	return rune(v), nil
}

func (p *parser) parseBlankNodeLabel() (rdf.BlankNode, error) {
	p.next() // '_'
	p.next() // ':'
	start := p.pos
	for !p.eof() {
		c := p.peek()
		if isNameChar(c) {
			p.next()
			continue
		}
		break
	}
	label := p.input[start:p.pos]
	label = p.trimTrailingDots(label)
	if label == "" {
		return "", p.errorf("empty blank node label")
	}
	return rdf.BlankNode(label), nil
}

func isNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '_' || c == '-' || c == '.' || c >= 0x80
}

// trimTrailingDots rewinds the parser over dots scanned into a name;
// a trailing dot belongs to the statement, not the name.
func (p *parser) trimTrailingDots(name string) string {
	for strings.HasSuffix(name, ".") {
		name = name[:len(name)-1]
		p.pos--
		p.col--
	}
	return name
}

func (p *parser) parsePrefixedName() (rdf.IRI, error) {
	term, err := p.parsePrefixedNameOrBoolean()
	if err != nil {
		return "", err
	}
	iri, ok := term.(rdf.IRI)
	if !ok {
		return "", p.errorf("expected an IRI, found %s", term)
	}
	return iri, nil
}

func (p *parser) parsePrefixedNameOrBoolean() (rdf.Term, error) {
	start := p.pos
	for !p.eof() {
		c := p.peek()
		if isNameChar(c) || c == ':' || c == '%' {
			p.next()
			continue
		}
		break
	}
	token := p.input[start:p.pos]
	token = p.trimTrailingDots(token)
	if token == "" {
		return nil, p.errorf("expected a term, found %q", string(p.peek()))
	}

	idx := strings.IndexByte(token, ':')
	if idx < 0 {
		switch token {
		case "true", "false":
			return rdf.Typed(token, xsd.Boolean), nil
		}
		return nil, p.errorf("%q is not a prefixed name or keyword", token)
	}

	prefix, local := token[:idx], token[idx+1:]
	ns, ok := p.prefixes[prefix]
	if !ok {
		return nil, p.errorf("undefined prefix %q", prefix)
	}
	return rdf.IRI(ns + local), nil
}

func (p *parser) parseStringLiteral() (rdf.Term, error) {
	value, err := p.parseQuotedString()
	if err != nil {
		return nil, err
	}

	switch p.peek() {
	case '@':
		p.next()
		start := p.pos
		for !p.eof() {
			c := p.peek()
			if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
				(c >= '0' && c <= '9') || c == '-' {
				p.next()
				continue
			}
			break
		}
		tag := p.input[start:p.pos]
		if tag == "" {
			return nil, p.errorf("empty language tag")
		}
		return rdf.Literal{Value: value, Language: tag}, nil
	case '^':
		p.next()
		if err := p.expect('^'); err != nil {
			return nil, err
		}
		var datatype rdf.IRI
		if p.peek() == '<' {
			datatype, err = p.parseIRIRef()
		} else {
			datatype, err = p.parsePrefixedName()
		}
		if err != nil {
			return nil, err
		}
		// Plain strings and xsd:string literals are the same value.
		if datatype == xsd.String {
			return rdf.String(value), nil
		}
		return rdf.Typed(value, datatype), nil
	default:
		return rdf.String(value), nil
	}
}

func (p *parser) parseQuotedString() (string, error) {
	quote := p.next() // '"' or '\''
	long := false
	if p.peek() == quote {
		p.next()
		if p.peek() != quote {
			return "", nil // empty short string
		}
		p.next()
		long = true
	}

	var sb strings.Builder
	for {
		if p.eof() {
			return "", p.errorf("unterminated string literal")
		}
		c := p.peek()
		if c == quote {
			if !long {
				p.next()
				return sb.String(), nil
			}
			if p.peekAt(1) == quote && p.peekAt(2) == quote {
				p.skip(3)
				return sb.String(), nil
			}
			sb.WriteByte(p.next())
			continue
		}
		if c == '\n' && !long {
			return "", p.errorf("newline in string literal")
		}
		if c == '\\' {
			p.next()
			esc, err := p.readStringEscape()
			if err != nil {
				return "", err
			}
			sb.WriteRune(esc)
			continue
		}
		sb.WriteByte(p.next())
	}
}

func (p *parser) readStringEscape() (rune, error) {
	c := p.peek()
	switch c {
	case 't':
		p.next()
		return '\t', nil
	case 'n':
		p.next()
		return '\n', nil
	case 'r':
		p.next()
		return '\r', nil
	case 'b':
		p.next()
		return '\b', nil
	case 'f':
		p.next()
		return '\f', nil
	case '"', '\'', '\\':
		p.next()
		return rune(c), nil
	case 'u', 'U':
		return p.readUnicodeEscape()
	default:
		return 0, p.errorf("invalid string escape \\%s", string(c))
	}
}

func (p *parser) parseNumericLiteral() (rdf.Term, error) {
	start := p.pos
	if c := p.peek(); c == '+' || c == '-' {
		p.next()
	}
	hasDot := false
	hasExp := false
	for !p.eof() {
		c := p.peek()
		switch {
		case c >= '0' && c <= '9':
			p.next()
		case c == '.' && !hasDot && !hasExp:
			// A dot is only part of the number when a digit follows;
			// otherwise it terminates the statement.
			if d := p.peekAt(1); d < '0' || d > '9' {
				goto done
			}
			hasDot = true
			p.next()
		case (c == 'e' || c == 'E') && !hasExp:
			hasExp = true
			p.next()
			if s := p.peek(); s == '+' || s == '-' {
				p.next()
			}
		default:
			goto done
		}
	}
done:
	token := p.input[start:p.pos]
	if token == "" || token == "+" || token == "-" {
		return nil, p.errorf("malformed numeric literal")
	}
	switch {
	case hasExp:
		return rdf.Typed(token, xsd.Double), nil
	case hasDot:
		return rdf.Typed(token, xsd.Decimal), nil
	default:
		return rdf.Typed(token, xsd.Integer), nil
	}
}

// parseCollection parses "( o1 o2 ... )" into an rdf:first/rdf:rest
// chain, returning the head node. An empty collection is rdf:nil.
func (p *parser) parseCollection() (rdf.Term, error) {
	p.next() // '('
	var members []rdf.Term
	for {
		p.skipWhitespace()
		if p.eof() {
			return nil, p.errorf("unterminated collection")
		}
		if p.peek() == ')' {
			p.next()
			break
		}
		object, err := p.parseObject()
		if err != nil {
			return nil, err
		}
		members = append(members, object)
	}
	if len(members) == 0 {
		return rdf.Nil, nil
	}

	head := p.newBlankNode()
	node := head
	for i, member := range members {
		p.emit(node, rdf.First, member)
		if i == len(members)-1 {
			p.emit(node, rdf.Rest, rdf.Nil)
			break
		}
		next := p.newBlankNode()
		p.emit(node, rdf.Rest, next)
		node = next
	}
	return head, nil
}

func (p *parser) parseBlankNodePropertyList() (rdf.Term, error) {
	p.next() // '['
	node := p.newBlankNode()
	p.skipWhitespace()
	if p.peek() == ']' {
		p.next()
		return node, nil
	}
	if err := p.parsePredicateObjectList(node); err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if err := p.expect(']'); err != nil {
		return nil, err
	}
	return node, nil
}
