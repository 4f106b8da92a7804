package tp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypes(t *testing.T) {
	assert.Equal(t, 4, Int32.Size())
	assert.Equal(t, 0, Void{}.Size())

	assert.Equal(t, "int", Int32.String())
	assert.Equal(t, "unsigned int", Uint32.String())
	assert.Equal(t, "void", Void{}.String())

	f := Func{In: []Type{Int32, Uint32}, Out: Void{}}
	assert.Equal(t, "void(int, unsigned int)", f.String())
	assert.Equal(t, "int()", Func{Out: Int32}.String())
}
