package helper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	helper "schoolku_backend/internals/helpers"
)

func TestBuildPagination(t *testing.T) {
	p := helper.BuildPagination(45, 2, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.EqualValues(t, 45, p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestBuildPagination_EmptyResult(t *testing.T) {
	p := helper.BuildPagination(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestBuildPagination_DefendsBadInput(t *testing.T) {
	p := helper.BuildPagination(10, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}
