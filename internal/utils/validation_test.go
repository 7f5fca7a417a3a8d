package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateToolID(t *testing.T) {
	assert.NoError(t, ValidateToolID("math.add"))
	assert.NoError(t, ValidateToolID("math.weighted_mean"))
	assert.Error(t, ValidateToolID(""))
	assert.Error(t, ValidateToolID("math add"))
	assert.Error(t, ValidateToolID(strings.Repeat("a", MaxToolIDLength+1)))
	assert.Error(t, ValidateToolID("math.\x00"))
}

func TestValidateCategory(t *testing.T) {
	assert.NoError(t, ValidateCategory("", false))
	assert.NoError(t, ValidateCategory("math", true))
	assert.Error(t, ValidateCategory("", true))
	assert.Error(t, ValidateCategory("Math", false))
}

func TestValidateQuery(t *testing.T) {
	assert.NoError(t, ValidateQuery("uncertainty"))
	assert.Error(t, ValidateQuery(""))
	assert.Error(t, ValidateQuery(strings.Repeat("q", MaxQuerySize+1)))
}

func TestValidateParams(t *testing.T) {
	assert.NoError(t, ValidateParams(nil))
	assert.NoError(t, ValidateParams(map[string]interface{}{
		"numbers": []interface{}{1.0, "a", 2.5},
	}))

	var nested interface{} = 1.0
	for i := 0; i < MaxParamsDepth+2; i++ {
		nested = []interface{}{nested}
	}
	assert.Error(t, ValidateParams(map[string]interface{}{"x": nested}))

	big := map[string]interface{}{"s": strings.Repeat("x", MaxParamsSize)}
	assert.Error(t, ValidateParams(big))
}
