/*
File   : gomonkey/evaluator/evaluator_helpers.go
Package: evaluator

Small shared predicates and constructors used across the dispatcher and
its expression/statement handlers.
*/
package evaluator

import (
	"fmt"

	"github.com/monkey-lang/gomonkey/object"
)

func newError(format string, a ...interface{}) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, a...)}
}

func isError(obj object.Object) bool {
	if obj != nil {
		return obj.Type() == object.MError
	}
	return false
}

// isTruthy implements Monkey's truthiness rule: everything is truthy
// except FALSE and NULL, notably including the integer 0.
func isTruthy(obj object.Object) bool {
	switch obj {
	case object.NULL:
		return false
	case object.TRUE:
		return true
	case object.FALSE:
		return false
	default:
		return true
	}
}

func nativeBoolToBooleanObject(input bool) *object.Boolean {
	if input {
		return object.TRUE
	}
	return object.FALSE
}

func unwrapReturnValue(obj object.Object) object.Object {
	if returnValue, ok := obj.(*object.ReturnValue); ok {
		return returnValue.Value
	}
	return obj
}
