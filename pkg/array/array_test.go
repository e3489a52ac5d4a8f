package array_test

import (
	"strings"
	"testing"

	"github.com/ian-shakespeare/minicc/pkg/array"
	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	t.Parallel()

	ops := []string{"==", "!=", "<", ">", "<=", ">="}

	assert.Equal(t, 0, array.Index(ops, "=="))
	assert.Equal(t, 5, array.Index(ops, ">="))
	assert.Equal(t, -1, array.Index(ops, "<<"))
	assert.Equal(t, -1, array.Index([]string{}, "=="))
}

func TestContains(t *testing.T) {
	t.Parallel()

	types := []string{"int", "float", "double", "char"}

	assert.True(t, array.Contains(types, "char"))
	assert.False(t, array.Contains(types, "void"))
}

func TestMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"INT", "CHAR"}, array.Map([]string{"int", "char"}, strings.ToUpper))
	assert.Empty(t, array.Map([]string{}, strings.ToUpper))
}
