package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringHashKey(t *testing.T) {
	hello1 := &String{Value: "Hello World"}
	hello2 := &String{Value: "Hello World"}
	diff1 := &String{Value: "My name is johnny"}
	diff2 := &String{Value: "My name is johnny"}

	assert.Equal(t, hello1.HashKey(), hello2.HashKey())
	assert.Equal(t, diff1.HashKey(), diff2.HashKey())
	assert.NotEqual(t, hello1.HashKey(), diff1.HashKey())
}

func TestIntegerAndBooleanHashKey(t *testing.T) {
	assert.Equal(t, (&Integer{Value: 5}).HashKey(), (&Integer{Value: 5}).HashKey())
	assert.NotEqual(t, (&Integer{Value: 5}).HashKey(), (&Integer{Value: 6}).HashKey())
	assert.Equal(t, TRUE.HashKey(), (&Boolean{Value: true}).HashKey())
	assert.NotEqual(t, TRUE.HashKey(), FALSE.HashKey())
}

func TestObjectInspect(t *testing.T) {
	assert.Equal(t, "5", (&Integer{Value: 5}).Inspect())
	assert.Equal(t, "true", TRUE.Inspect())
	assert.Equal(t, "null", NULL.Inspect())
	assert.Equal(t, "hi", (&String{Value: "hi"}).Inspect())
	assert.Equal(t, "[1, 2]", (&Array{Elements: []Object{&Integer{Value: 1}, &Integer{Value: 2}}}).Inspect())
}

func TestEnvironmentGetSetAndEnclosing(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &Integer{Value: 1})

	inner := NewEnclosedEnvironment(outer)
	val, ok := inner.Get("x")
	assert.True(t, ok)
	assert.Equal(t, &Integer{Value: 1}, val)

	inner.Set("x", &Integer{Value: 2})
	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")
	assert.Equal(t, int64(2), innerVal.(*Integer).Value)
	assert.Equal(t, int64(1), outerVal.(*Integer).Value, "setting in the inner environment must not mutate the outer binding")

	_, ok = outer.Get("missing")
	assert.False(t, ok)
}

func TestBuiltinLenErrors(t *testing.T) {
	result := Builtins["len"].Fn(&Integer{Value: 1})
	err, ok := result.(*Error)
	assert.True(t, ok)
	assert.Equal(t, "argument to 'len' not supported, got INTEGER", err.Message)

	result = Builtins["len"].Fn()
	err, ok = result.(*Error)
	assert.True(t, ok)
	assert.Equal(t, "wrong number of arguments. got=0, want=1", err.Message)
}

func TestBuiltinPushIsNonMutating(t *testing.T) {
	original := &Array{Elements: []Object{&Integer{Value: 1}}}
	result := Builtins["push"].Fn(original, &Integer{Value: 2})

	pushed, ok := result.(*Array)
	assert.True(t, ok)
	assert.Len(t, pushed.Elements, 2)
	assert.Len(t, original.Elements, 1, "push must not mutate its argument")
}

func TestBuiltinFirstLastRestOnEmptyArray(t *testing.T) {
	empty := &Array{Elements: []Object{}}
	assert.Equal(t, NULL, Builtins["first"].Fn(empty))
	assert.Equal(t, NULL, Builtins["last"].Fn(empty))
	assert.Equal(t, NULL, Builtins["rest"].Fn(empty))
}
