package frontend

import (
	"errors"
	"log/slog"

	"github.com/ian-shakespeare/minicc/pkg/array"
)

// Nesting limit for blocks and parenthesized expressions. Deeper input is
// reported as an internal fault instead of exhausting the goroutine stack.
const maxDepth = 1000

var (
	errBlockTooDeep      = errors.New("blocks nested too deeply")
	errExpressionTooDeep = errors.New("expression nested too deeply")

	typeKeywords = []string{"int", "float", "double", "char"}
	compareOps   = []string{"==", "!=", "<", ">", "<=", ">="}
)

type Options struct {
	// Receives debug events for the walk. Discarded when nil.
	Logger *slog.Logger
}

type Result struct {
	Errors []*SyntaxError
}

func (r Result) Success() bool {
	return len(r.Errors) == 0
}

func (r Result) Messages() []string {
	return array.Map(r.Errors, (*SyntaxError).Error)
}

type parser struct {
	tokens []Token
	index  int
	errors []*SyntaxError
	depth  int
	logger *slog.Logger

	onAdvance func(index int)
}

func Parse(tokens []Token) Result {
	return ParseWithOptions(tokens, Options{})
}

func ParseWithOptions(tokens []Token, opts Options) Result {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return newParser(tokens, logger.With("component", "parser")).parse()
}

func newParser(tokens []Token, logger *slog.Logger) *parser {
	return &parser{
		tokens: tokens,
		logger: logger,
	}
}

func (p *parser) parse() Result {
	p.logger.Debug("parse started", "tokens", len(p.tokens))

	p.guard(func() {
		p.program()
		if token, ok := p.current(); ok {
			p.errorf("Unexpected token %s after program end.", token)
		}
	})

	result := Result{Errors: p.errors}
	p.logger.Debug("parse finished", "success", result.Success(), "errors", len(result.Errors))
	return result
}

// guard turns a panic inside walk into an INTERNAL_FAULT entry so that it
// still fails the verdict.
func (p *parser) guard(walk func()) {
	defer func() {
		if fault := recover(); fault != nil {
			p.logger.Error("internal fault during parse", "index", p.index, "fault", fault)
			p.errors = append(p.errors, newInternalFault(p.index, fault))
		}
	}()
	walk()
}

func (p *parser) current() (Token, bool) {
	if p.index >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.index], true
}

func (p *parser) peek() (Token, bool) {
	if p.index+1 >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.index+1], true
}

// at reports whether the current token's lexeme is one of values.
func (p *parser) at(values ...string) bool {
	token, ok := p.current()
	return ok && array.Contains(values, token.Value)
}

func (p *parser) advance() {
	if p.index < len(p.tokens) {
		p.index++
	}
	if p.onAdvance != nil {
		p.onAdvance(p.index)
	}
}

// expect consumes the current token when it has the given type and, if value
// is not empty, the given lexeme. On mismatch it records an error and leaves
// the cursor where it was.
func (p *parser) expect(tokenType TokenType, value string) bool {
	expected := tokenType.String()
	if value != "" {
		expected += " (" + value + ")"
	}

	token, ok := p.current()
	if !ok {
		p.errorf("Expected %s, but found end of file.", expected)
		return false
	}
	if token.Type != tokenType || (value != "" && token.Value != value) {
		p.errorf("Expected %s, but found %s.", expected, token)
		return false
	}

	p.advance()
	return true
}

// enter aborts the walk through guard once nesting passes maxDepth.
func (p *parser) enter(fault error) {
	p.depth++
	if p.depth > maxDepth {
		panic(fault)
	}
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) errorf(format string, a ...any) {
	err := NewSyntaxErrorf(p.index, format, a...)
	p.logger.Debug("syntax error", "index", err.Index, "message", err.Message)
	p.errors = append(p.errors, err)
}

// clean reports whether no error was recorded since mark.
func (p *parser) clean(mark int) bool {
	return len(p.errors) == mark
}

func (p *parser) program() bool {
	return p.functionDefinition()
}

func (p *parser) functionDefinition() bool {
	mark := len(p.errors)
	p.typeSpecifier()
	p.expect(IDENTIFIER_TOKEN, "")
	p.expect(PUNCTUATOR_TOKEN, "(")
	p.expect(PUNCTUATOR_TOKEN, ")")
	p.block()
	return p.clean(mark)
}

func (p *parser) typeSpecifier() bool {
	token, ok := p.current()
	if ok && token.Type == KEYWORD_TOKEN && array.Contains(typeKeywords, token.Value) {
		p.advance()
		return true
	}
	p.errorf("Expected a Type (int, float, double, char).")
	return false
}

func (p *parser) block() bool {
	p.enter(errBlockTooDeep)
	defer p.leave()

	mark := len(p.errors)
	p.expect(PUNCTUATOR_TOKEN, "{")
	p.statementList()
	p.expect(PUNCTUATOR_TOKEN, "}")
	return p.clean(mark)
}

// statementList stops at the first statement that leaves anything in the
// error log, including errors recorded before the list was entered.
func (p *parser) statementList() bool {
	mark := len(p.errors)
	for {
		if _, ok := p.current(); !ok || p.at("}") {
			break
		}

		start := p.index
		p.statement()
		if len(p.errors) > 0 || p.index == start {
			break
		}
	}
	return p.clean(mark)
}

func (p *parser) statement() bool {
	token, ok := p.current()
	if !ok {
		return true
	}

	mark := len(p.errors)
	switch {
	case token.Type == KEYWORD_TOKEN && array.Contains(typeKeywords, token.Value):
		p.declaration()
		p.expect(PUNCTUATOR_TOKEN, ";")
	case token.Type == IDENTIFIER_TOKEN:
		next, ok := p.peek()
		switch {
		case !ok:
			p.errorf("Expected AssignmentStatement or OutputStatement, but found end of file.")
		case next.Value == "=":
			p.assignment()
			p.expect(PUNCTUATOR_TOKEN, ";")
		case next.Is(OPERATOR_TOKEN, "<<"):
			p.output()
			p.expect(PUNCTUATOR_TOKEN, ";")
		default:
			p.errorf("Expected AssignmentStatement or OutputStatement.")
		}
	case token.Is(KEYWORD_TOKEN, "if"):
		p.ifStatement()
	case token.Is(KEYWORD_TOKEN, "return"):
		p.returnStatement()
		p.expect(PUNCTUATOR_TOKEN, ";")
	default:
		p.errorf("Expected a valid Statement (Declaration, Assignment, If, Output, or Return).")
		p.advance()
	}
	return p.clean(mark)
}

func (p *parser) declaration() bool {
	mark := len(p.errors)
	p.typeSpecifier()
	p.identifierList()
	return p.clean(mark)
}

func (p *parser) identifierList() bool {
	mark := len(p.errors)
	p.expect(IDENTIFIER_TOKEN, "")
	for p.at(",") {
		if !p.expect(PUNCTUATOR_TOKEN, ",") {
			break
		}
		p.expect(IDENTIFIER_TOKEN, "")
	}
	return p.clean(mark)
}

func (p *parser) assignment() bool {
	mark := len(p.errors)
	p.expect(IDENTIFIER_TOKEN, "")
	p.expect(OPERATOR_TOKEN, "=")
	p.expression()
	return p.clean(mark)
}

func (p *parser) ifStatement() bool {
	mark := len(p.errors)
	p.expect(KEYWORD_TOKEN, "if")
	p.expect(PUNCTUATOR_TOKEN, "(")
	p.condition()
	p.expect(PUNCTUATOR_TOKEN, ")")
	p.block()

	if p.at("else") {
		p.expect(KEYWORD_TOKEN, "else")
		p.block()
	}
	return p.clean(mark)
}

func (p *parser) condition() bool {
	mark := len(p.errors)
	p.expression()
	p.compareOp()
	p.expression()
	return p.clean(mark)
}

func (p *parser) compareOp() bool {
	token, ok := p.current()
	if ok && token.Type == OPERATOR_TOKEN && array.Contains(compareOps, token.Value) {
		p.advance()
		return true
	}
	p.errorf("Expected a Comparison Operator (==, !=, <, >, <=, >=).")
	return false
}

// output expects the identifier to name the output stream, e.g. cout.
func (p *parser) output() bool {
	mark := len(p.errors)
	p.expect(IDENTIFIER_TOKEN, "")
	p.outputList()
	return p.clean(mark)
}

func (p *parser) outputList() bool {
	mark := len(p.errors)
	p.expect(OPERATOR_TOKEN, "<<")
	p.outputItem()

	for p.at("<<") {
		if !p.expect(OPERATOR_TOKEN, "<<") {
			break
		}
		p.outputItem()
	}
	return p.clean(mark)
}

// outputItem accepts endl like any other identifier.
func (p *parser) outputItem() bool {
	token, ok := p.current()
	if !ok {
		p.errorf("Expected an Output Item (String, Identifier, or endl).")
		return false
	}

	switch token.Type {
	case STRING_TOKEN, IDENTIFIER_TOKEN:
		p.advance()
		return true
	default:
		p.errorf("Expected a String Literal, Identifier, or 'endl'.")
		return false
	}
}

func (p *parser) returnStatement() bool {
	mark := len(p.errors)
	p.expect(KEYWORD_TOKEN, "return")
	p.expression()
	return p.clean(mark)
}

func (p *parser) expression() bool {
	mark := len(p.errors)
	p.term()
	for p.at("+", "-") {
		p.advance()
		p.term()
	}
	return p.clean(mark)
}

func (p *parser) term() bool {
	mark := len(p.errors)
	p.factor()
	for p.at("*", "/") {
		p.advance()
		p.factor()
	}
	return p.clean(mark)
}

func (p *parser) factor() bool {
	token, ok := p.current()
	if !ok {
		p.errorf("Expected Factor (Identifier, Constant, or '(' Expression ')').")
		return false
	}

	switch {
	case token.Type == IDENTIFIER_TOKEN, token.Type == INT_TOKEN, token.Type == FLOAT_TOKEN:
		p.advance()
		return true
	case token.Value == "(":
		p.enter(errExpressionTooDeep)
		defer p.leave()

		mark := len(p.errors)
		if !p.expect(PUNCTUATOR_TOKEN, "(") {
			return false
		}
		p.expression()
		p.expect(PUNCTUATOR_TOKEN, ")")
		return p.clean(mark)
	default:
		p.errorf("Expected Factor (Identifier, Constant, or '(' Expression ')').")
		return false
	}
}
