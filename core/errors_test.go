package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.core")
	defer teardown()
	//
	err := Error(EOVERFLOW, "layout nesting exceeds %d", 8)
	assert.Equal(t, EOVERFLOW, Code(err))
	assert.Equal(t, "layout nesting exceeds 8", UserMessage(err))
	wrapped := fmt.Errorf("begin layout: %w", err)
	assert.Equal(t, EOVERFLOW, Code(wrapped), "code must survive wrapping")
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
}

func TestWrapNil(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.core")
	defer teardown()
	//
	err := ErrorWithCode(nil, EMISSING)
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "not found", UserMessage(err))
	err = WrapError(nil, EUNBALANCED, "layout depth %d", 2)
	assert.Contains(t, err.Error(), "unbalanced")
	assert.Contains(t, err.Error(), "layout depth 2")
}

func TestStackErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.core")
	defer teardown()
	//
	err := Overflow("layout", 32)
	assert.Equal(t, EOVERFLOW, Code(err))
	assert.Equal(t, "layout stack exceeds 32 levels", UserMessage(err))
	//
	assert.NoError(t, Unbalanced(StackDepth{"layout", 0}, StackDepth{"style", 0}))
	err = Unbalanced(StackDepth{"layout", 2}, StackDepth{"sizing", 0}, StackDepth{"style", 1})
	assert.Equal(t, EUNBALANCED, Code(err))
	assert.Equal(t, "unbalanced stacks at end of frame: layout=2, style=1", UserMessage(err))
}
