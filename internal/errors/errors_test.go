package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapPreservesCode(t *testing.T) {
	err := Wrap(DataUnavailable(), "analysis refused")
	assert.Equal(t, CodeDataUnavailable, GetCode(err))
	assert.Contains(t, err.Error(), "analysis refused")
}

func TestWrapNilIsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithCode(CodeNotFound, nil))
}

func TestUnwrapChain(t *testing.T) {
	root := stderrors.New("connection refused")
	err := ComputationFailed(root)
	assert.True(t, stderrors.Is(err, root))
	assert.Equal(t, CodeComputationFailed, GetCode(err))
}

func TestGetCodeOnForeignError(t *testing.T) {
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
	assert.False(t, IsAppError(stderrors.New("plain")))
	assert.True(t, IsAppError(NotFound("record")))
}
