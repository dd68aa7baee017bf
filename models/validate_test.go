package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	req := &CreateDistrictRequest{Name: "   ", Region: "Central"}
	err := ValidateStruct(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is a required field")

	req = &CreateDistrictRequest{Name: "  Gulu ", Region: " Northern"}
	require.NoError(t, ValidateStruct(req))
	assert.Equal(t, "Gulu", req.Name)
	assert.Equal(t, "Northern", req.Region)
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("abc"))
	assert.NoError(t, ValidatePassword("secret1"))
}
