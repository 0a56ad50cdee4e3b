package serverutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `validate:"required,email"`
	Color string `validate:"omitempty,hexcolor"`
}

func TestValidateRequest_Valid(t *testing.T) {
	assert.NoError(t, ValidateRequest(sampleRequest{Email: "alice@x.com", Color: "#8B5A3C"}))
	assert.NoError(t, ValidateRequest(sampleRequest{Email: "alice@x.com"})) // optional color omitted
}

func TestValidateRequest_Invalid(t *testing.T) {
	err := ValidateRequest(sampleRequest{Email: "not-an-email", Color: "brown"})
	require.Error(t, err)

	appErr, ok := err.(*AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "Email")
	assert.Contains(t, appErr.Message, "Color")
}
