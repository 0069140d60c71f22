package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDNS1123LabelValidation(t *testing.T) {
	require.NoError(t, RegisterValidation())
	gin.SetMode(gin.TestMode)

	type request struct {
		Name string `json:"name" binding:"required,dns1123label"`
	}

	bind := func(t *testing.T, body string) error {
		t.Helper()
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		req, err := http.NewRequest(http.MethodPost, "/some-path", strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		var r request
		return c.ShouldBind(&r)
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, bind(t, `{"name": "test-cluster-01"}`))
	})

	t.Run("InvalidUppercase", func(t *testing.T) {
		assert.Error(t, bind(t, `{"name": "Test-Cluster"}`))
	})

	t.Run("InvalidLeadingHyphen", func(t *testing.T) {
		assert.Error(t, bind(t, `{"name": "-cluster"}`))
	})

	t.Run("InvalidTooLong", func(t *testing.T) {
		assert.Error(t, bind(t, `{"name": "`+strings.Repeat("a", 64)+`"}`))
	})
}
