// Package formula compiles admin-authored calculator formulas into
// evaluable expression trees. The grammar is deliberately tiny: decimal
// numbers, named variables (bare identifiers or {braced}), the four
// arithmetic operators and parentheses. Formula text is untrusted input
// and is never handed to a scripting engine.
package formula

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Error reports why a formula could not be compiled or evaluated, with
// the byte offset of the offending token where one applies.
type Error struct {
	Pos int
	Msg string
}

func (e *Error) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("formula: %s (offset %d)", e.Msg, e.Pos)
	}
	return "formula: " + e.Msg
}

func errAt(pos int, format string, args ...any) *Error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Compiled is a parsed formula ready for repeated evaluation.
type Compiled struct {
	src  string
	root node
	vars []string
}

// Compile parses src into an expression tree.
func Compile(src string) (*Compiled, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, errAt(tok.pos, "unexpected %q", tok.text)
	}

	seen := map[string]bool{}
	var vars []string
	collectVars(root, seen, &vars)
	return &Compiled{src: src, root: root, vars: vars}, nil
}

// Vars returns the variable names the formula references, in first
// appearance order.
func (c *Compiled) Vars() []string {
	return append([]string(nil), c.vars...)
}

// Eval substitutes values and evaluates. Every referenced variable must
// have a value; division by zero and non-finite results are errors, never
// NaN in the output.
func (c *Compiled) Eval(values map[string]float64) (float64, error) {
	v, err := c.root.eval(values)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errAt(-1, "result is not a finite number")
	}
	return v, nil
}

// Validate compiles src and checks that it references only declared
// variable names. Called at definition save time so a typo fails fast
// instead of at first customer use.
func Validate(src string, declared []string) error {
	c, err := Compile(src)
	if err != nil {
		return err
	}
	allowed := map[string]bool{}
	for _, name := range declared {
		allowed[name] = true
	}
	var missing []string
	for _, name := range c.vars {
		if !allowed[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return errAt(-1, "undeclared variable(s): %s", strings.Join(missing, ", "))
	}
	return nil
}

// --- AST ---

type node interface {
	eval(vars map[string]float64) (float64, error)
}

type numberNode float64

func (n numberNode) eval(map[string]float64) (float64, error) {
	return float64(n), nil
}

type varNode struct {
	name string
	pos  int
}

func (n varNode) eval(vars map[string]float64) (float64, error) {
	v, ok := vars[n.name]
	if !ok {
		return 0, errAt(n.pos, "no value for variable %q", n.name)
	}
	return v, nil
}

type binaryNode struct {
	op          byte
	left, right node
	pos         int
}

func (n binaryNode) eval(vars map[string]float64) (float64, error) {
	l, err := n.left.eval(vars)
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval(vars)
	if err != nil {
		return 0, err
	}
	switch n.op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	default:
		if r == 0 {
			return 0, errAt(n.pos, "division by zero")
		}
		return l / r, nil
	}
}

type negNode struct {
	operand node
}

func (n negNode) eval(vars map[string]float64) (float64, error) {
	v, err := n.operand.eval(vars)
	return -v, err
}

func collectVars(n node, seen map[string]bool, out *[]string) {
	switch t := n.(type) {
	case varNode:
		if !seen[t.name] {
			seen[t.name] = true
			*out = append(*out, t.name)
		}
	case binaryNode:
		collectVars(t.left, seen, out)
		collectVars(t.right, seen, out)
	case negNode:
		collectVars(t.operand, seen, out)
	}
}

// --- lexer ---

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '+' || c == '-' || c == '*' || c == '/':
			toks = append(toks, token{tokOp, string(c), i})
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "(", i})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")", i})
			i++
		case c == '{':
			end := strings.IndexByte(src[i:], '}')
			if end < 0 {
				return nil, errAt(i, "unclosed '{'")
			}
			name := strings.TrimSpace(src[i+1 : i+end])
			if !validIdent(name) {
				return nil, errAt(i, "bad variable name %q", name)
			}
			toks = append(toks, token{tokIdent, name, i})
			i += end + 1
		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < len(src) && (src[j] >= '0' && src[j] <= '9' || src[j] == '.') {
				j++
			}
			toks = append(toks, token{tokNumber, src[i:j], i})
			i = j
		case isIdentStart(rune(c)):
			j := i
			for j < len(src) && isIdentPart(rune(src[j])) {
				j++
			}
			toks = append(toks, token{tokIdent, src[i:j], i})
			i = j
		default:
			return nil, errAt(i, "unexpected character %q", string(c))
		}
	}
	toks = append(toks, token{tokEOF, "", len(src)})
	return toks, nil
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !isIdentStart(r) {
			return false
		}
		if i > 0 && !isIdentPart(r) {
			return false
		}
	}
	return true
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

// --- parser ---
//
// expr   := term (('+' | '-') term)*
// term   := factor (('*' | '/') factor)*
// factor := number | ident | '(' expr ')' | ('-' | '+') factor

type parser struct {
	toks []token
	i    int
}

func (p *parser) peek() token {
	return p.toks[p.i]
}

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokOp || (tok.text != "+" && tok.text != "-") {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: tok.text[0], left: left, right: right, pos: tok.pos}
	}
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokOp || (tok.text != "*" && tok.text != "/") {
			return left, nil
		}
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: tok.text[0], left: left, right: right, pos: tok.pos}
	}
}

func (p *parser) parseFactor() (node, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, errAt(tok.pos, "bad number %q", tok.text)
		}
		return numberNode(v), nil
	case tokIdent:
		return varNode{name: tok.text, pos: tok.pos}, nil
	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, errAt(closing.pos, "expected ')'")
		}
		return inner, nil
	case tokOp:
		if tok.text == "-" {
			operand, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			return negNode{operand: operand}, nil
		}
		if tok.text == "+" {
			return p.parseFactor()
		}
		return nil, errAt(tok.pos, "unexpected %q", tok.text)
	case tokEOF:
		return nil, errAt(tok.pos, "unexpected end of formula")
	default:
		return nil, errAt(tok.pos, "unexpected %q", tok.text)
	}
}
