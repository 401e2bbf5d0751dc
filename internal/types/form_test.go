package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentForm_Decode(t *testing.T) {
	body := `{
		"id": 5, "isActive": "yes", "extra": {"a": 1},
		"name": "A", "mobile": 9876543210, "address": "x", "email": "a@a.com",
		"internshipDomain": "SE", "college": "X", "password": "p"
	}`

	var form StudentForm
	require.NoError(t, json.Unmarshal([]byte(body), &form))

	s := form.Record()
	assert.Equal(t, "9876543210", s.Mobile)
	assert.Equal(t, "SE", s.InternshipDomain)
	assert.Equal(t, "p", s.Password)
	assert.Empty(t, s.ID)
	assert.False(t, bool(s.IsActive))
}

func TestText_Decode(t *testing.T) {
	tests := []struct {
		in      string
		want    Text
		wantErr bool
	}{
		{in: `"abc"`, want: "abc"},
		{in: `42`, want: "42"},
		{in: `1.5e3`, want: "1.5e3"},
		{in: `true`, want: "true"},
		{in: `null`, want: ""},
		{in: `{"a":1}`, wantErr: true},
		{in: `[1]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var v Text
			err := json.Unmarshal([]byte(tt.in), &v)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}
