package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&ValidationError{Field: "area", Reason: "must be positive"}, "invalid area: must be positive"},
		{&NotFoundError{Entity: "owner", Code: "AB12"}, `owner "AB12" not found`},
		{&DuplicateCodeError{Code: "AB12"}, `code "AB12" already exists`},
		{&CodeGenerationExhaustedError{Attempts: 25}, "code generation exhausted after 25 attempts"},
		{&ConstraintError{Entity: "owner", Code: "AB12", Reason: "still referenced"}, `owner "AB12": still referenced`},
		{&IOError{Op: "write", Path: "/p/x.jpg", Err: errors.New("disk full")}, "write /p/x.jpg: disk full"},
		{&RestoreError{Path: "/tmp/b.db", Reason: "not a SQLite database"}, "cannot restore /tmp/b.db: not a SQLite database"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.Error())
	}
}

func TestErrorsUnwrapThroughWrapping(t *testing.T) {
	inner := &NotFoundError{Entity: "property", Code: "A0011234"}
	wrapped := fmt.Errorf("get property: %w", inner)

	var nf *NotFoundError
	assert.True(t, errors.As(wrapped, &nf))
	assert.Equal(t, "A0011234", nf.Code)
}
