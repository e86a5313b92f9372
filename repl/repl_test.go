package repl

import (
	"bytes"
	"testing"

	"github.com/monkey-lang/gomonkey/object"
	"github.com/stretchr/testify/assert"
)

func TestExecuteWithRecovery_PrintsResult(t *testing.T) {
	var buf bytes.Buffer
	r := New("monkey", "test", ">> ")
	env := object.NewEnvironment()

	r.executeWithRecovery(&buf, "let x = 5; x + 1;", env)

	assert.Contains(t, buf.String(), "6")
}

func TestExecuteWithRecovery_PersistsEnvironmentAcrossCalls(t *testing.T) {
	var buf bytes.Buffer
	r := New("monkey", "test", ">> ")
	env := object.NewEnvironment()

	r.executeWithRecovery(&buf, "let counter = 1;", env)
	buf.Reset()
	r.executeWithRecovery(&buf, "counter;", env)

	assert.Contains(t, buf.String(), "1")
}

func TestExecuteWithRecovery_ReportsParserErrors(t *testing.T) {
	var buf bytes.Buffer
	r := New("monkey", "test", ">> ")
	env := object.NewEnvironment()

	r.executeWithRecovery(&buf, "let x 5;", env)

	assert.Contains(t, buf.String(), "parser errors")
}

func TestExecuteWithRecovery_ReportsEvaluatorErrors(t *testing.T) {
	var buf bytes.Buffer
	r := New("monkey", "test", ">> ")
	env := object.NewEnvironment()

	r.executeWithRecovery(&buf, "5 + true;", env)

	assert.Contains(t, buf.String(), "type mismatch")
}
