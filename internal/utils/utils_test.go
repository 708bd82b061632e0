package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/tienda/internal/models"
	"github.com/aaravmahajanofficial/tienda/internal/utils"
	"github.com/aaravmahajanofficial/tienda/internal/utils/response"
	"github.com/aaravmahajanofficial/tienda/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	return resp
}

func TestParseAndValidate(t *testing.T) {
	v := validation.New()

	t.Run("Valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"delta":-1}`))
		rr := httptest.NewRecorder()

		var dest models.ChangeQuantityRequest
		assert.True(t, utils.ParseAndValidate(req, rr, &dest, v))
		assert.Equal(t, -1, dest.Delta)
	})

	t.Run("Empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(""))
		rr := httptest.NewRecorder()

		var dest models.ChangeQuantityRequest
		assert.False(t, utils.ParseAndValidate(req, rr, &dest, v))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "BAD_REQUEST", decodeEnvelope(t, rr).Error.Code)
	})

	t.Run("Fails validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"delta":5}`))
		rr := httptest.NewRecorder()

		var dest models.ChangeQuantityRequest
		assert.False(t, utils.ParseAndValidate(req, rr, &dest, v))

		resp := decodeEnvelope(t, rr)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		assert.Equal(t, "warning", resp.Error.Level)
	})

	t.Run("No validator", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"delta":5}`))
		rr := httptest.NewRecorder()

		var dest models.ChangeQuantityRequest
		assert.True(t, utils.ParseAndValidate(req, rr, &dest, nil))
	})
}

func TestPathID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x/12", nil)
	req.SetPathValue("id", "12")

	id, err := utils.PathID(req, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, bad := range []string{"", "abc", "0", "-3"} {
		req.SetPathValue("id", bad)
		_, err := utils.PathID(req, "id")
		assert.Error(t, err, bad)
	}
}

func TestConfirmed(t *testing.T) {
	assert.True(t, utils.Confirmed(httptest.NewRequest(http.MethodDelete, "/x?confirm=true", nil)))
	assert.True(t, utils.Confirmed(httptest.NewRequest(http.MethodDelete, "/x?confirm=1", nil)))
	assert.False(t, utils.Confirmed(httptest.NewRequest(http.MethodDelete, "/x?confirm=no", nil)))
	assert.False(t, utils.Confirmed(httptest.NewRequest(http.MethodDelete, "/x", nil)))
}

func TestDecodeJSONBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		errText string
	}{
		{name: "Single document", body: `{"delta":1}`},
		{name: "Trailing whitespace", body: "{\"delta\":1}\n"},
		{name: "Empty", body: "", wantErr: utils.ErrEmptyBody},
		{name: "Malformed", body: `{"delta":`, errText: "invalid JSON format"},
		{name: "Two documents", body: `{"delta":1}{"delta":-1}`, errText: "unexpected data"},
		{name: "Too large", body: `{"pad":"` + strings.Repeat("x", 1<<20) + `"}`, wantErr: utils.ErrBodyTooLarge},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))

			var dest map[string]any
			err := utils.DecodeJSONBody(req, &dest)

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.errText != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errText)
			default:
				require.NoError(t, err)
				assert.Equal(t, float64(1), dest["delta"])
			}
		})
	}
}
