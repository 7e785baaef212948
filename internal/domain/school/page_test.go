package school

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageNormalize(t *testing.T) {
	assert.Equal(t, Page{Skip: 0, Limit: 100}, DefaultPage())
	assert.Equal(t, Page{Skip: 0, Limit: DefaultLimit}, Page{Skip: -3, Limit: -1}.Normalize())
	assert.Equal(t, Page{Skip: 5, Limit: MaxLimit}, Page{Skip: 5, Limit: 5000}.Normalize())
	assert.Equal(t, Page{Skip: 2, Limit: 0}, Page{Skip: 2, Limit: 0}.Normalize())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.com "))
	assert.Equal(t, "pending", string(InitialStatus()))
}
