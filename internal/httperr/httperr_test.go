package httperr

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestBusinessErrorMatching(t *testing.T) {
	err := fmt.Errorf("registering: %w", ErrBusiness("class_not_found"))

	assert.True(t, IsBusiness(err, "class_not_found"))
	assert.False(t, IsBusiness(err, "other"))

	code, ok := BusinessCode(err)
	assert.True(t, ok)
	assert.Equal(t, "class_not_found", code)

	_, ok = BusinessCode(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestUnauthorizedSetsChallenge(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Unauthorized(c, "invalid_token", "Could not validate credentials.")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	assert.True(t, c.IsAborted())

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid_token", body.Code)
}
