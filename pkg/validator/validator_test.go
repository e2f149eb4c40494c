package validator_test

import (
	"testing"

	"inventorytrack/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required"`
	Count *int   `validate:"omitempty,gte=0"`
}

func TestValidateStruct(t *testing.T) {
	assert.Empty(t, validator.ValidateStruct(&sample{Name: "ok"}))

	errs := validator.ValidateStruct(&sample{})
	require.Len(t, errs, 1)
	assert.Equal(t, "required", errs[0].Tag)
	assert.Equal(t, "Field 'Name' failed on rule 'required'", errs[0].Message())

	negative := -1
	errs = validator.ValidateStruct(&sample{Name: "ok", Count: &negative})
	require.Len(t, errs, 1)
	assert.Equal(t, "Field 'Count' failed on rule 'gte=0'", errs[0].Message())
}
