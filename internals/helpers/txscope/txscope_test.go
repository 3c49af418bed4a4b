package txscope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"schoolku_backend/internals/helpers/txscope"
)

func TestNone(t *testing.T) {
	fallback := &gorm.DB{}

	s := txscope.None()
	assert.False(t, s.InTransaction())
	assert.Same(t, fallback, s.DB(fallback))
}

func TestWithin(t *testing.T) {
	fallback := &gorm.DB{}
	tx := &gorm.DB{}

	s := txscope.Within(tx)
	assert.True(t, s.InTransaction())
	assert.Same(t, tx, s.DB(fallback))
}
