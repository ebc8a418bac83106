package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKWithData(t *testing.T) {
	resp := OKWithData(map[string]any{"id": 1})
	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.NotNil(t, resp.Data)
}

func TestError(t *testing.T) {
	resp := Error("something broke")
	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "something broke", resp.Error)
}

func TestValidationError(t *testing.T) {
	type payload struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}

	validate := validator.New()

	t.Run("required fields", func(t *testing.T) {
		err := validate.Struct(payload{})
		require.Error(t, err)

		resp := ValidationError(err.(validator.ValidationErrors))
		assert.Equal(t, StatusError, resp.Status)
		assert.Contains(t, resp.Error, "field Name is a required field")
		assert.Contains(t, resp.Error, "field Email is a required field")
	})

	t.Run("email format", func(t *testing.T) {
		err := validate.Struct(payload{Name: "Juan", Email: "not-an-email"})
		require.Error(t, err)

		resp := ValidationError(err.(validator.ValidationErrors))
		assert.Contains(t, resp.Error, "field Email must be a valid email address")
	})
}
