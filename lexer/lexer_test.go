package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextToken_Symbols(t *testing.T) {
	input := `=+(){},;:[]`

	expected := []Token{
		New(ASSIGN, "="),
		New(PLUS, "+"),
		New(LPAREN, "("),
		New(RPAREN, ")"),
		New(LBRACE, "{"),
		New(RBRACE, "}"),
		New(COMMA, ","),
		New(SEMICOLON, ";"),
		New(COLON, ":"),
		New(LBRACKET, "["),
		New(RBRACKET, "]"),
		New(EOF, ""),
	}

	l := New(input)
	for i, want := range expected {
		got := l.NextToken()
		require.Equalf(t, want, got, "token %d", i)
	}
}

func TestNextToken_Program(t *testing.T) {
	input := `
let five = 5;
let ten = 10;

let add = fn(x, y) {
  x + y;
};

let result = add(five, ten);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
"foobar"
"foo bar"
[1, 2];
{"foo": "bar"}
`

	expected := []Token{
		New(LET, "let"), New(IDENT, "five"), New(ASSIGN, "="), New(INT, "5"), New(SEMICOLON, ";"),
		New(LET, "let"), New(IDENT, "ten"), New(ASSIGN, "="), New(INT, "10"), New(SEMICOLON, ";"),
		New(LET, "let"), New(IDENT, "add"), New(ASSIGN, "="), New(FUNCTION, "fn"),
		New(LPAREN, "("), New(IDENT, "x"), New(COMMA, ","), New(IDENT, "y"), New(RPAREN, ")"),
		New(LBRACE, "{"),
		New(IDENT, "x"), New(PLUS, "+"), New(IDENT, "y"), New(SEMICOLON, ";"),
		New(RBRACE, "}"), New(SEMICOLON, ";"),
		New(LET, "let"), New(IDENT, "result"), New(ASSIGN, "="), New(IDENT, "add"),
		New(LPAREN, "("), New(IDENT, "five"), New(COMMA, ","), New(IDENT, "ten"), New(RPAREN, ")"), New(SEMICOLON, ";"),
		New(BANG, "!"), New(MINUS, "-"), New(SLASH, "/"), New(ASTERISK, "*"), New(INT, "5"), New(SEMICOLON, ";"),
		New(INT, "5"), New(LT, "<"), New(INT, "10"), New(GT, ">"), New(INT, "5"), New(SEMICOLON, ";"),
		New(IF, "if"), New(LPAREN, "("), New(INT, "5"), New(LT, "<"), New(INT, "10"), New(RPAREN, ")"),
		New(LBRACE, "{"),
		New(RETURN, "return"), New(TRUE, "true"), New(SEMICOLON, ";"),
		New(RBRACE, "}"), New(ELSE, "else"), New(LBRACE, "{"),
		New(RETURN, "return"), New(FALSE, "false"), New(SEMICOLON, ";"),
		New(RBRACE, "}"),
		New(INT, "10"), New(EQ, "=="), New(INT, "10"), New(SEMICOLON, ";"),
		New(INT, "10"), New(NOT_EQ, "!="), New(INT, "9"), New(SEMICOLON, ";"),
		New(STRING, "foobar"),
		New(STRING, "foo bar"),
		New(LBRACKET, "["), New(INT, "1"), New(COMMA, ","), New(INT, "2"), New(RBRACKET, "]"), New(SEMICOLON, ";"),
		New(LBRACE, "{"), New(STRING, "foo"), New(COLON, ":"), New(STRING, "bar"), New(RBRACE, "}"),
		New(EOF, ""),
	}

	l := New(input)
	for i, want := range expected {
		got := l.NextToken()
		require.Equalf(t, want, got, "token %d", i)
	}
}

func TestNextToken_IllegalCharacter(t *testing.T) {
	l := New(`@`)
	tok := l.NextToken()
	assert.Equal(t, ILLEGAL, tok.Type)
	assert.Equal(t, "@", tok.Literal)
}

func TestNextToken_EOFIsSticky(t *testing.T) {
	l := New(``)
	assert.Equal(t, EOF, l.NextToken().Type)
	assert.Equal(t, EOF, l.NextToken().Type)
	assert.Equal(t, EOF, l.NextToken().Type)
}

func TestLookupIdent(t *testing.T) {
	assert.Equal(t, IF, LookupIdent("if"))
	assert.Equal(t, FUNCTION, LookupIdent("fn"))
	assert.Equal(t, RETURN, LookupIdent("return"))
	assert.Equal(t, IDENT, LookupIdent("myVar"))
}
