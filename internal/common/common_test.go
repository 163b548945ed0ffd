package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	t.Run("int64", func(t *testing.T) {
		p := Ptr(int64(42))
		assert.Equal(t, int64(42), *p)
	})

	t.Run("string", func(t *testing.T) {
		p := Ptr("vent")
		assert.Equal(t, "vent", *p)
	})

	t.Run("independent-copies", func(t *testing.T) {
		v := 1
		p := Ptr(v)
		*p = 2
		assert.Equal(t, 1, v)
	})
}
