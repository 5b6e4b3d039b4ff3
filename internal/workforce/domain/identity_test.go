package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployeeIDGeneratorFormat(t *testing.T) {
	generator := NewEmployeeIDGenerator(nil)

	for i := 0; i < 1000; i++ {
		id := generator()
		require.Len(t, id, 10)
		assert.True(t, ValidEmployeeID(id), "generated id %q does not match the format", id)
	}
}

func TestNewEmployeeIDGeneratorSeededSource(t *testing.T) {
	newSeededIntN := func() func(n int) int {
		source := rand.New(rand.NewSource(42))
		return source.Intn
	}

	first := NewEmployeeIDGenerator(newSeededIntN())
	second := NewEmployeeIDGenerator(newSeededIntN())

	for i := 0; i < 100; i++ {
		assert.Equal(t, first(), second(), "same seed must yield the same sequence")
	}
}

func TestValidEmployeeID(t *testing.T) {
	testCases := []struct {
		name string
		id   string
		want bool
	}{
		{name: "uppercase letters", id: "UIABCDEFGH", want: true},
		{name: "digits", id: "UI01234567", want: true},
		{name: "mixed", id: "UIA1B2C3D4", want: true},
		{name: "missing prefix", id: "XXABCDEFGH", want: false},
		{name: "too short", id: "UIABCDEFG", want: false},
		{name: "too long", id: "UIABCDEFGHI", want: false},
		{name: "lowercase suffix", id: "UIabcdefgh", want: false},
		{name: "empty", id: "", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidEmployeeID(tc.id))
		})
	}
}
