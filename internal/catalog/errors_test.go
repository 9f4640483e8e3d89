package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableLoadError_Error(t *testing.T) {
	err := &TableLoadError{Path: "data/job_roles.json", Message: "read failed"}

	assert.Equal(t, "failed to load reference table data/job_roles.json: read failed", err.Error())
}

func TestTableLoadError_Unwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := &TableLoadError{Path: "data/job_roles.json", Message: "read failed", Cause: cause}

	assert.Contains(t, err.Error(), "permission denied")
	assert.ErrorIs(t, err, cause)
}
