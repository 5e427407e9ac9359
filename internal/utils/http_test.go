package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{"map", map[string]string{"key": "value"}, http.StatusOK, `{"key":"value"}`},
		{"custom status", map[string]bool{"success": false}, http.StatusNotFound, `{"success":false}`},
		{"nil", nil, http.StatusOK, `null`},
		{"slice", []int{1, 2}, http.StatusCreated, `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestReadJSON(t *testing.T) {
	type payload struct {
		Email string `json:"email"`
	}

	tests := []struct {
		name      string
		body      string
		wantEmail string
		wantErr   error
		anyErr    bool
	}{
		{"valid", `{"email":"a@x.com"}`, "a@x.com", nil, false},
		{"unknown fields ignored", `{"email":"a@x.com","extra":1}`, "a@x.com", nil, false},
		{"empty", ``, "", ErrEmptyBody, true},
		{"malformed", `{"email":`, "", nil, true},
		{"trailing data", `{"email":"a@x.com"} {"email":"b@x.com"}`, "a@x.com", nil, true},
		{"too large", `{"email":"` + strings.Repeat("a", MaxJSONBodyBytes) + `"}`, "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var p payload
			err := ReadJSON(w, r, &p)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.anyErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, p.Email)
		})
	}
}
