package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorText(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "error field", body: `{"error":"boom"}`, want: "boom"},
		{name: "message field", body: `{"success":false,"message":"nope"}`, want: "nope"},
		{name: "plain text", body: "  plain failure \n", want: "plain failure"},
		{name: "empty", body: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorText([]byte(tt.body)))
		})
	}
}

func TestUnsuccessful_DefaultMessage(t *testing.T) {
	err := unsuccessful("get users", "")
	assert.ErrorIs(t, err, ErrUnsuccessful)
	assert.Contains(t, err.Error(), "no details")
}
