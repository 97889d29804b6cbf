package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavBuilderError_Error(t *testing.T) {
	e := New(CategoryConfig, SeverityFatal, "configuration file not found")
	assert.Equal(t, "config (fatal): configuration file not found", e.Error())

	wrapped := Wrap(fmt.Errorf("open config.yaml: no such file"), CategoryConfig, SeverityFatal, "load failed")
	assert.Contains(t, wrapped.Error(), "load failed")
	assert.Contains(t, wrapped.Error(), "no such file")
}

func TestNavBuilderError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	e := Wrap(cause, CategoryStore, SeverityError, "put failed")
	require.ErrorIs(t, e, cause)
}

func TestWithContext(t *testing.T) {
	e := StoreError("sqlite", fmt.Errorf("locked")).WithContext("key", "navigation")
	assert.Equal(t, "sqlite", e.Context["backend"])
	assert.Equal(t, "navigation", e.Context["key"])
}

func TestConstructorsCategories(t *testing.T) {
	assert.Equal(t, CategoryValidation, ValidationFailed("rootPath", "empty").Category)
	assert.Equal(t, CategoryContent, DiscoveryError(errors.New("walk")).Category)
	assert.Equal(t, CategoryGit, GitSourceError("docs", errors.New("clone")).Category)
	assert.Equal(t, CategoryBuild, BuildFailed(errors.New("x")).Category)
}
