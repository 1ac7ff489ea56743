package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchworks/trim_inventory_app/internal/utils"
)

func TestHashAndCheckPasscode(t *testing.T) {
	hash, err := utils.HashPasscode("0420")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "0420", hash)

	assert.True(t, utils.CheckPasscodeHash("0420", hash))
	assert.False(t, utils.CheckPasscodeHash("0421", hash))
	assert.False(t, utils.CheckPasscodeHash("", hash))
}

func TestCheckPasscodeHash_InvalidHash(t *testing.T) {
	assert.False(t, utils.CheckPasscodeHash("0420", "not-a-bcrypt-hash"))
	assert.False(t, utils.CheckPasscodeHash("0420", ""))
}
