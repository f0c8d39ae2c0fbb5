package registration

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&ValidationError{Message: "Field x is required"}, 400},
		{&NotFoundError{Resource: "Student"}, 404},
		{&ConflictError{Message: "duplicate"}, 409},
		{&AuthError{Message: "Invalid username or password"}, 401},
		{&AuthError{Message: "Your account is pending admin approval", Forbidden: true}, 403},
		{&StorageError{Op: "insert", Err: errors.New("boom")}, 500},
		{errors.New("anything else"), 500},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, HTTPStatus(c.err), c.err.Error())
	}
}
