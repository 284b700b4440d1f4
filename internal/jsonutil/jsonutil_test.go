package jsonutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadJSON(t *testing.T) {
	type payload struct {
		ShowId  int   `json:"showId"`
		SeatIds []int `json:"seatIds"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"showId": 1, "seatIds": [1, 2]}`},
		{name: "empty", body: ``, wantErr: "body must not be empty"},
		{name: "malformed", body: `{"showId": 1,`, wantErr: "body contains badly-formed JSON"},
		{name: "wrong type", body: `{"showId": "one"}`, wantErr: `body contains incorrect JSON type for field "showId"`},
		{name: "unknown field", body: `{"seats": []}`, wantErr: `body contains unknown key "seats"`},
		{name: "two values", body: `{"showId": 1}{"showId": 2}`, wantErr: "body must only contain a single JSON value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var dst payload
			err := ReadJSON(w, r, &dst)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				assert.Equal(t, payload{ShowId: 1, SeatIds: []int{1, 2}}, dst)
				return
			}

			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	err := WriteJSON(w, http.StatusCreated, map[string]int{"id": 3}, http.Header{"Location": []string{"/bookings/3"}})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "/bookings/3", w.Header().Get("Location"))
	assert.JSONEq(t, `{"id": 3}`, w.Body.String())
}
