package frontend

import (
	"io"
	"iter"
	"regexp"

	"github.com/ian-shakespeare/minicc/pkg/iterator"
	"github.com/ian-shakespeare/minicc/pkg/runes"
)

type rule struct {
	tokenType TokenType
	pattern   *regexp.Regexp
}

// Tried in order; the first rule matching at the start of the remaining text
// wins. Keyword must precede Identifier, FloatConstant must precede
// IntConstant, and Operator must precede Punctuator so that a bare '<' or '>'
// is an operator.
var rules = []rule{
	{KEYWORD_TOKEN, anchored(`\b(?:int|float|double|char|return|if|else|for|while|namespace|template|include|define)\b`)},
	{IDENTIFIER_TOKEN, anchored(`\b[a-zA-Z_][a-zA-Z0-9_]*\b`)},
	{PREPROCESSOR_TOKEN, anchored(`#\s*(?:include|define)\b`)},
	{FLOAT_TOKEN, anchored(`\b\d+\.\d+\b`)},
	{INT_TOKEN, anchored(`\b\d+\b`)},
	{OPERATOR_TOKEN, anchored(`==|!=|<=|>=|\+\+|--|\+=|-=|\*=|/=|&&|\|\||<<|>>|[+\-*/=<>!&|%^~]`)},
	{PUNCTUATOR_TOKEN, anchored(`[{}();,<>]`)},
	{STRING_TOKEN, anchored(`"(?:\\.|[^"\\])*"`)},
}

var (
	blockComment = regexp.MustCompile(`/\*[\s\S]*?\*/`)
	lineComment  = regexp.MustCompile(`//.*`)
)

func anchored(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + pattern + `)`)
}

type scanner struct {
	input   string
	skipped []rune
}

func NewScanner(source string) *scanner {
	source = blockComment.ReplaceAllString(source, "")
	source = lineComment.ReplaceAllString(source, "")
	return &scanner{
		input: source,
	}
}

// Tokenize scans the whole source. Characters no rule accepts are dropped.
func Tokenize(source string) []Token {
	return iterator.Collect(NewScanner(source).Tokens())
}

func (s *scanner) NextToken() (Token, error) {
	for {
		s.input = runes.TrimLeftSpace(s.input)
		if s.input == "" {
			return Token{}, io.EOF
		}

		if token, ok := s.match(); ok {
			return token, nil
		}

		var char rune
		char, s.input = runes.Shift(s.input)
		s.skipped = append(s.skipped, char)
	}
}

func (s *scanner) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			token, err := s.NextToken()
			if err != nil {
				return
			}
			if !yield(token) {
				return
			}
		}
	}
}

// Skipped returns the runes discarded so far because no rule matched them.
func (s *scanner) Skipped() []rune {
	return s.skipped
}

func (s *scanner) match() (Token, bool) {
	for _, r := range rules {
		loc := r.pattern.FindStringIndex(s.input)
		if loc == nil || loc[1] == 0 {
			continue
		}
		value := s.input[:loc[1]]
		s.input = s.input[loc[1]:]
		return Token{Type: r.tokenType, Value: value}, true
	}
	return Token{}, false
}
