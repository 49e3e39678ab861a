package helper_util_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper_util "github.com/dev-mohitbeniwal/mobility/util/helper"
)

func TestNormalizePhoneNumber(t *testing.T) {
	assert.Equal(t, "+821012345678", helper_util.NormalizePhoneNumber("01012345678"))
	assert.Equal(t, "+821012345678", helper_util.NormalizePhoneNumber("010-1234-5678"))
	assert.Equal(t, "+821012345678", helper_util.NormalizePhoneNumber("+821012345678"))
	assert.Equal(t, "+15551234567", helper_util.NormalizePhoneNumber("15551234567"))
	assert.Equal(t, "", helper_util.NormalizePhoneNumber("  "))
}

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	newContext := func(query string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/?"+query, nil)
		return c
	}

	limit, offset, err := helper_util.GetPaginationParams(newContext(""))
	require.NoError(t, err)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)

	limit, offset, err = helper_util.GetPaginationParams(newContext("limit=5&offset=10"))
	require.NoError(t, err)
	assert.Equal(t, 5, limit)
	assert.Equal(t, 10, offset)

	_, _, err = helper_util.GetPaginationParams(newContext("limit=500"))
	assert.Error(t, err)
	_, _, err = helper_util.GetPaginationParams(newContext("offset=-1"))
	assert.Error(t, err)
	_, _, err = helper_util.GetPaginationParams(newContext("limit=abc"))
	assert.Error(t, err)
}

func TestParseNullableTime(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	parsed, err := helper_util.ParseNullableTime(now)
	require.NoError(t, err)
	assert.Equal(t, now, *parsed)

	parsed, err = helper_util.ParseNullableTime("2024-05-01T09:00:00Z")
	require.NoError(t, err)
	assert.True(t, now.Equal(*parsed))

	parsed, err = helper_util.ParseNullableTime(nil)
	require.NoError(t, err)
	assert.Nil(t, parsed)

	_, err = helper_util.ParseNullableTime(42)
	assert.Error(t, err)
}
