package helper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	helper "schoolku_backend/internals/helpers"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "further-mathematics", helper.Slugify("Further Mathematics", 0))
	assert.Equal(t, "francais-avance", helper.Slugify("Français Avancé", 0))
	assert.Equal(t, "ict-lab-2", helper.Slugify("  ICT -- Lab (2) ", 0))
	assert.Equal(t, "item", helper.Slugify("***", 0))
	assert.Equal(t, "item", helper.Slugify("", 0))
}

func TestSlugify_MaxLen(t *testing.T) {
	got := helper.Slugify("a very long subject name indeed", 10)
	assert.LessOrEqual(t, len(got), 10)
	assert.NotEqual(t, "-", got[len(got)-1:])
}
