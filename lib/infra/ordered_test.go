package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type weight float64

func least[E Ordered](i, j E) E {
	if j < i {
		return j
	}
	return i
}

func TestOrderedDefinedTypes(t *testing.T) {
	assert.Equal(t, weight(0.5), least(weight(0.5), weight(1.5)))
	assert.Equal(t, "avl", least("avl", "rb"))
	assert.Equal(t, uint8('a'), least(uint8('b'), uint8('a')))
}
