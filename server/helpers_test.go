package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindErrorHidesDecoderText(t *testing.T) {
	var body struct {
		PositionID uint `json:"positionId"`
	}
	typeErr := json.Unmarshal([]byte(`{"positionId": "abc"}`), &body)
	syntaxErr := json.Unmarshal([]byte(`{"positionId":`), &body)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"type mismatch names the json field", typeErr, "invalid value for positionId"},
		{"malformed body", syntaxErr, "invalid request body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bindError(tt.err)
			assert.Equal(t, http.StatusBadRequest, got.Status)
			assert.Equal(t, tt.want, got.Message)
			assert.NotContains(t, got.Message, "Go struct")
		})
	}
}
