/*
File   : gomonkey/parser/parser_precedence.go
Package: parser

The precedence lattice driving the Pratt parser, lowest to highest, per
spec section 4.2: LOWEST < EQUALS < LESSGREATER < SUM < PRODUCT < PREFIX <
CALL < INDEX. All infix operators are left-associative; prefix operators
are right-associative at PREFIX.
*/
package parser

import "github.com/monkey-lang/gomonkey/lexer"

const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // > <
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x, !x
	CALL        // fn(x)
	INDEX       // arr[x]
)

// precedences maps each infix-capable token to its binding power. A token
// with no entry defaults to LOWEST, which halts expression parsing (see
// peekPrecedence).
var precedences = map[lexer.TokenType]int{
	lexer.EQ:       EQUALS,
	lexer.NOT_EQ:   EQUALS,
	lexer.LT:       LESSGREATER,
	lexer.GT:       LESSGREATER,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.SLASH:    PRODUCT,
	lexer.ASTERISK: PRODUCT,
	lexer.LPAREN:   CALL,
	lexer.LBRACKET: INDEX,
}

// prefixParseFn parses an expression that begins at the current token
// (literals, prefix operators, grouped expressions, and so on).
type prefixParseFn func() Expression

// infixParseFn parses the continuation of an expression given the
// already-parsed left operand (binary operators, call, index).
type infixParseFn func(Expression) Expression
