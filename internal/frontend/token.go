package frontend

import "fmt"

type TokenType int

const (
	UNKNOWN_TOKEN      TokenType = 0
	KEYWORD_TOKEN      TokenType = 1
	IDENTIFIER_TOKEN   TokenType = 2
	PREPROCESSOR_TOKEN TokenType = 3
	FLOAT_TOKEN        TokenType = 4
	INT_TOKEN          TokenType = 5
	OPERATOR_TOKEN     TokenType = 6
	PUNCTUATOR_TOKEN   TokenType = 7
	STRING_TOKEN       TokenType = 8
)

func (t TokenType) String() string {
	switch t {
	case KEYWORD_TOKEN:
		return "Keyword"
	case IDENTIFIER_TOKEN:
		return "Identifier"
	case PREPROCESSOR_TOKEN:
		return "Preprocessor"
	case FLOAT_TOKEN:
		return "FloatConstant"
	case INT_TOKEN:
		return "IntConstant"
	case OPERATOR_TOKEN:
		return "Operator"
	case PUNCTUATOR_TOKEN:
		return "Punctuator"
	case STRING_TOKEN:
		return "StringLiteral"
	default:
		return "Unknown"
	}
}

type Token struct {
	Type  TokenType
	Value string
}

func (t Token) Is(tokenType TokenType, value string) bool {
	return t.Type == tokenType && t.Value == value
}

func (t Token) String() string {
	return fmt.Sprintf("<%s, %s>", t.Type, t.Value)
}
