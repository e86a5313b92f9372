/*
File   : gomonkey/evaluator/evaluator.go
Package: evaluator

Package evaluator walks a parsed Program against an object.Environment
and produces a runtime object.Object. Eval is the single dispatcher every
node type passes through. Statement handling stays in this file; the
remaining files split out the expression dispatch targets and the shared
helpers.
*/
package evaluator

import (
	"github.com/monkey-lang/gomonkey/object"
	"github.com/monkey-lang/gomonkey/parser"
)

// Eval walks node, evaluating it against env and returning the resulting
// Object. Errors never panic: they are returned as *object.Error values
// and propagate through the call chain like any other result, to be
// checked explicitly by every caller that combines sub-results.
func Eval(node parser.Node, env *object.Environment) object.Object {
	switch node := node.(type) {

	// Statements
	case *parser.Program:
		return evalProgram(node, env)
	case *parser.ExpressionStatement:
		return Eval(node.Expression, env)
	case *parser.BlockStatement:
		return evalBlockStatement(node, env)
	case *parser.ReturnStatement:
		val := Eval(node.ReturnValue, env)
		if isError(val) {
			return val
		}
		return &object.ReturnValue{Value: val}
	case *parser.LetStatement:
		val := Eval(node.Value, env)
		if isError(val) {
			return val
		}
		env.Set(node.Name.Value, val)
		return val

	// Expressions
	case *parser.IntegerLiteral:
		return &object.Integer{Value: node.Value}
	case *parser.StringLiteral:
		return &object.String{Value: node.Value}
	case *parser.Boolean:
		return nativeBoolToBooleanObject(node.Value)
	case *parser.PrefixExpression:
		right := Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return evalPrefixExpression(node.Operator, right)
	case *parser.InfixExpression:
		left := Eval(node.Left, env)
		if isError(left) {
			return left
		}
		right := Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return evalInfixExpression(node.Operator, left, right)
	case *parser.IfExpression:
		return evalIfExpression(node, env)
	case *parser.Identifier:
		return evalIdentifier(node, env)
	case *parser.FunctionLiteral:
		return &object.Function{Parameters: node.Parameters, Body: node.Body, Env: env}
	case *parser.CallExpression:
		function := Eval(node.Function, env)
		if isError(function) {
			return function
		}
		args := evalExpressions(node.Arguments, env)
		if len(args) == 1 && isError(args[0]) {
			return args[0]
		}
		return applyFunction(function, args)
	case *parser.ArrayLiteral:
		elements := evalExpressions(node.Elements, env)
		if len(elements) == 1 && isError(elements[0]) {
			return elements[0]
		}
		return &object.Array{Elements: elements}
	case *parser.IndexExpression:
		left := Eval(node.Left, env)
		if isError(left) {
			return left
		}
		index := Eval(node.Index, env)
		if isError(index) {
			return index
		}
		return evalIndexExpression(left, index)
	case *parser.HashLiteral:
		return evalHashLiteral(node, env)
	}

	return nil
}

// evalProgram evaluates each top-level statement in order. A ReturnValue
// or Error produced by any statement stops the program immediately; a
// ReturnValue is unwrapped to its inner value before being handed back to
// the host (REPL, benchmark, test harness).
func evalProgram(program *parser.Program, env *object.Environment) object.Object {
	var result object.Object

	for _, statement := range program.Statements {
		result = Eval(statement, env)

		switch result := result.(type) {
		case *object.ReturnValue:
			return result.Value
		case *object.Error:
			return result
		}
	}

	return result
}

// evalBlockStatement evaluates the statements of a block (function body,
// if/else branch) in order. Unlike evalProgram it does NOT unwrap a
// ReturnValue: the envelope must survive block nesting so that a return
// deep inside nested if-blocks still escapes every enclosing block and is
// only unwrapped once, at the function call boundary (see
// unwrapReturnValue in applyFunction).
func evalBlockStatement(block *parser.BlockStatement, env *object.Environment) object.Object {
	var result object.Object

	for _, statement := range block.Statements {
		result = Eval(statement, env)

		if result != nil {
			rt := result.Type()
			if rt == object.MReturnValue || rt == object.MError {
				return result
			}
		}
	}

	return result
}
