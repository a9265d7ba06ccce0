package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsClockTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "13:05", "23:59"}
	for _, s := range valid {
		assert.True(t, IsClockTime(s), s)
	}

	invalid := []string{"9:00", "24:00", "12:60", "12:5", "noon", "12:00:00", ""}
	for _, s := range invalid {
		assert.False(t, IsClockTime(s), s)
	}
}

func TestRegisteredClockTimeRule(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterRules(v))

	type payload struct {
		Start string `validate:"hhmm"`
	}

	assert.NoError(t, v.Struct(payload{Start: "08:15"}))
	assert.Error(t, v.Struct(payload{Start: "8:15"}))
}
