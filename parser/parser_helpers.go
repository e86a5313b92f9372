/*
File   : gomonkey/parser/parser_helpers.go
Package: parser

Token-lookahead and error-collection plumbing shared by every sub-parser:
advancing the two-token window, asserting the next token's kind, and
recording a human-readable error without ever panicking.
*/
package parser

import (
	"fmt"

	"github.com/monkey-lang/gomonkey/lexer"
)

// nextToken advances the two-token lookahead window: curToken becomes the
// old peekToken, and a fresh token is pulled from the lexer.
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t lexer.TokenType) bool {
	return p.peekToken.Type == t
}

// expectPeek asserts that peekToken has the given kind; on success it
// advances past it. On failure it records an error and leaves the parser
// positioned at the unexpected token, letting the caller return no
// expression without panicking.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t lexer.TokenType) {
	msg := fmt.Sprintf("Expected next token to be %s, got %s instead", t, p.peekToken.Type)
	p.errors = append(p.errors, msg)
}

func (p *Parser) noPrefixParseFnError(t lexer.TokenType) {
	msg := fmt.Sprintf("No prefix parser for %s function", t)
	p.errors = append(p.errors, msg)
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}
