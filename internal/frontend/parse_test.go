package frontend_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/ian-shakespeare/minicc/internal/frontend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	valid := []struct {
		name   string
		source string
	}{
		{"return", "int main ( ) { return 0 ; }"},
		{"emptyBody", "char f ( ) { }"},
		{"ifElse", "int main ( ) { if ( a < b ) { return a ; } else { return b ; } }"},
		{"output", "int main ( ) { cout << x << endl ; return 0 ; }"},
		{"outputString", `int main ( ) { cout << "total: " << total << endl ; }`},
		{"declarations", "int main ( ) { int a , b , c ; float d ; double e ; char f ; }"},
		{"arithmetic", "float g ( ) { x = ( a + 2 ) * 3.5 / b - 1 ; return x * x ; }"},
		{"nestedIf", "int main ( ) { if ( a == 1 ) { if ( b != 2 ) { x = 1 ; } } else { x = 2 ; } return x ; }"},
		{"compareOps", "int main ( ) { if ( a <= b ) { } if ( a >= b ) { } if ( a > b ) { } }"},
		{"comments", "int main() { /* set */ x = 1; // done\n return x; }"},
	}

	for _, input := range valid {
		t.Run(input.name, func(t *testing.T) {
			t.Parallel()

			result := frontend.Parse(frontend.Tokenize(input.source))
			assert.True(t, result.Success())
			assert.Empty(t, result.Messages())
		})
	}

	invalid := []struct {
		name   string
		source string
		expect []string
	}{
		{
			"missingSemicolon",
			"int main ( ) { x = 5 }",
			[]string{"Syntax Error at token index 8: Expected Punctuator (;), but found <Punctuator, }>."},
		},
		{
			"trailingToken",
			"int main ( ) { return 0 ; } x",
			[]string{"Syntax Error at token index 9: Unexpected token <Identifier, x> after program end."},
		},
		{
			"missingCompareOp",
			"int main ( ) { if ( a + b ) { return a ; } }",
			[]string{
				"Syntax Error at token index 10: Expected a Comparison Operator (==, !=, <, >, <=, >=).",
				"Syntax Error at token index 10: Expected Factor (Identifier, Constant, or '(' Expression ')').",
			},
		},
		{
			"unrecognizedStatement",
			"int main ( ) { ; return 0 ; }",
			[]string{
				"Syntax Error at token index 5: Expected a valid Statement (Declaration, Assignment, If, Output, or Return).",
				"Syntax Error at token index 6: Expected Punctuator (}), but found <Keyword, return>.",
				"Syntax Error at token index 6: Unexpected token <Keyword, return> after program end.",
			},
		},
		{
			"identifierStatement",
			"int main ( ) { x + 1 ; }",
			[]string{
				"Syntax Error at token index 5: Expected AssignmentStatement or OutputStatement.",
				"Syntax Error at token index 5: Expected Punctuator (}), but found <Identifier, x>.",
				"Syntax Error at token index 5: Unexpected token <Identifier, x> after program end.",
			},
		},
		{
			"identifierAtEnd",
			"int main ( ) { x",
			[]string{
				"Syntax Error at token index 5: Expected AssignmentStatement or OutputStatement, but found end of file.",
				"Syntax Error at token index 5: Expected Punctuator (}), but found end of file.",
			},
		},
		{
			"badOutputItem",
			"int main ( ) { cout << 5 ; }",
			[]string{
				"Syntax Error at token index 7: Expected a String Literal, Identifier, or 'endl'.",
				"Syntax Error at token index 7: Expected Punctuator (;), but found <IntConstant, 5>.",
				"Syntax Error at token index 7: Expected Punctuator (}), but found <IntConstant, 5>.",
				"Syntax Error at token index 7: Unexpected token <IntConstant, 5> after program end.",
			},
		},
		{
			"badType",
			"void main ( ) { }",
			[]string{
				"Syntax Error at token index 0: Expected a Type (int, float, double, char).",
				"Syntax Error at token index 1: Expected Punctuator ((), but found <Identifier, main>.",
				"Syntax Error at token index 1: Expected Punctuator ()), but found <Identifier, main>.",
				"Syntax Error at token index 1: Expected Punctuator ({), but found <Identifier, main>.",
				"Syntax Error at token index 1: Expected AssignmentStatement or OutputStatement.",
				"Syntax Error at token index 1: Expected Punctuator (}), but found <Identifier, main>.",
				"Syntax Error at token index 1: Unexpected token <Identifier, main> after program end.",
			},
		},
		{
			"empty",
			"",
			[]string{
				"Syntax Error at token index 0: Expected a Type (int, float, double, char).",
				"Syntax Error at token index 0: Expected Identifier, but found end of file.",
				"Syntax Error at token index 0: Expected Punctuator ((), but found end of file.",
				"Syntax Error at token index 0: Expected Punctuator ()), but found end of file.",
				"Syntax Error at token index 0: Expected Punctuator ({), but found end of file.",
				"Syntax Error at token index 0: Expected Punctuator (}), but found end of file.",
			},
		},
		{
			"missingFactor",
			"int main ( ) { return ; }",
			[]string{"Syntax Error at token index 6: Expected Factor (Identifier, Constant, or '(' Expression ')')."},
		},
	}

	for _, input := range invalid {
		t.Run(input.name, func(t *testing.T) {
			t.Parallel()

			result := frontend.Parse(frontend.Tokenize(input.source))
			assert.False(t, result.Success())
			assert.Equal(t, input.expect, result.Messages())
			for _, err := range result.Errors {
				assert.Equal(t, frontend.SYNTAX_ERROR, err.Kind)
			}
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		for _, source := range []string{
			"int main ( ) { return 0 ; }",
			"int main ( ) { x = 5 }",
			"int main ( ) { ; return 0 ; }",
		} {
			tokens := frontend.Tokenize(source)
			first := frontend.Parse(tokens)
			second := frontend.Parse(tokens)
			assert.Equal(t, first.Success(), second.Success())
			assert.Equal(t, first.Messages(), second.Messages())
		}
	})

	t.Run("handBuiltTokens", func(t *testing.T) {
		t.Parallel()

		// Lexemes the scanner never gives these categories must not stall the walk.
		tokens := []frontend.Token{
			{Type: frontend.KEYWORD_TOKEN, Value: "int"},
			{Type: frontend.IDENTIFIER_TOKEN, Value: "main"},
			{Type: frontend.PUNCTUATOR_TOKEN, Value: "("},
			{Type: frontend.PUNCTUATOR_TOKEN, Value: ")"},
			{Type: frontend.PUNCTUATOR_TOKEN, Value: "{"},
			{Type: frontend.KEYWORD_TOKEN, Value: "return"},
			{Type: frontend.STRING_TOKEN, Value: "("},
			{Type: frontend.PUNCTUATOR_TOKEN, Value: ";"},
			{Type: frontend.PUNCTUATOR_TOKEN, Value: "}"},
		}

		result := frontend.Parse(tokens)
		assert.False(t, result.Success())
		require.NotEmpty(t, result.Messages())
		assert.Equal(t, "Syntax Error at token index 6: Expected Punctuator ((), but found <StringLiteral, (>.", result.Messages()[0])
	})
}

func TestParseWithOptions(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	result := frontend.ParseWithOptions(frontend.Tokenize("int main ( ) { x = 5 }"), frontend.Options{Logger: logger})
	assert.False(t, result.Success())

	out := buf.String()
	assert.Contains(t, out, "component=parser")
	assert.Contains(t, out, "parse started")
	assert.Contains(t, out, "syntax error")
	assert.Contains(t, out, "parse finished")
}

func TestSyntaxError(t *testing.T) {
	t.Parallel()

	err := frontend.NewSyntaxErrorf(3, "Expected %s.", "something")
	assert.Equal(t, frontend.SYNTAX_ERROR, err.Kind)
	assert.Equal(t, 3, err.Index)
	assert.EqualError(t, err, "Syntax Error at token index 3: Expected something.")
}
