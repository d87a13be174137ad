package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fitlog/backend/internal/testhelpers"
	"github.com/pageza/fitlog/backend/internal/types"
)

const testToken = "test-token"

// newTestRouter returns a router and a validator that accepts testToken as userID
func newTestRouter(t *testing.T, userID uuid.UUID) (*gin.Engine, *testhelpers.MockAuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	types.RegisterValidators()

	validator := &testhelpers.MockAuthService{}
	validator.On("ValidateToken", testToken).Return(&types.TokenClaims{UserID: userID}, nil)
	return gin.New(), validator
}

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testToken)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func doUnauthenticated(t *testing.T, router http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(method, path, nil))
	return rr
}

// decode unmarshals the envelope and its data into data when non-nil
func decode(t *testing.T, rr *httptest.ResponseRecorder, data interface{}) types.Response {
	t.Helper()
	var raw struct {
		types.Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw), rr.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return raw.Response
}

var utc = time.UTC
