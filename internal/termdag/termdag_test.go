package termdag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiteralHashConsing(t *testing.T) {
	d := New()
	a := d.Literal("5")
	b := d.Literal("5")
	assert.Same(t, a, b)
	assert.Equal(t, 1, d.Size())
}

func TestApplicationHashConsing(t *testing.T) {
	d := New()
	leaf := d.Literal("1")
	app1 := d.Application("Add", []*Term{leaf, leaf})
	app2 := d.Application("Add", []*Term{leaf, leaf})
	assert.Same(t, app1, app2)
	assert.Equal(t, 2, d.Size())
}

func TestDistinctChildrenProduceDistinctTerms(t *testing.T) {
	d := New()
	one := d.Literal("1")
	two := d.Literal("2")
	a := d.Application("Add", []*Term{one, two})
	b := d.Application("Add", []*Term{two, one})
	assert.NotSame(t, a, b)
}

func TestPrintNestedTerm(t *testing.T) {
	d := New()
	five := d.Literal("5")
	c := d.Application("Const", []*Term{five})
	program := d.Application("Program", []*Term{c})
	assert.Equal(t, "Program(Const(5))", Print(program))
}

func TestLiteralLexeme(t *testing.T) {
	text, ok := LiteralLexeme(`"hello"`)
	assert.True(t, ok)
	assert.Equal(t, "hello", text)

	text, ok = LiteralLexeme("42")
	assert.True(t, ok)
	assert.Equal(t, "42", text)

	_, ok = LiteralLexeme("Add")
	assert.False(t, ok)
}
