package resperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusAndMessage(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"bad request", BadRequest("username_exist"), 400, "username_exist"},
		{"unauthorized", Unauthorized("username_password_is_wrong"), 401, "username_password_is_wrong"},
		{"not found", NotFound("contact_not_found"), 404, "contact_not_found"},
		{"wrapped", fmt.Errorf("usecase: %w", NotFound("Address not found")), 404, "Address not found"},
		{"plain error", errors.New("pq: connection refused"), 500, "internal_server_error"},
		{"nil", nil, 500, "internal_server_error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantStatus, Status(tc.err))
			assert.Equal(t, tc.wantMessage, Message(tc.err))
		})
	}
}
