//go:build unit
// +build unit

package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToInt(t *testing.T) {
	assert.Equal(t, 25, ConvertToInt("25"))
	assert.Equal(t, 0, ConvertToInt("0"))
	assert.Equal(t, -1, ConvertToInt("ten"))
	assert.Equal(t, -1, ConvertToInt(""))
}
