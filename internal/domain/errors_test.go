package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	errSpecific := errors.New("usecase: check-out must be after check-in")

	marked := Validation(errSpecific)
	wrapped := fmt.Errorf("create: %w", marked)

	assert.Equal(t, KindValidation, KindOf(marked))
	assert.Equal(t, KindValidation, KindOf(wrapped))
	assert.True(t, errors.Is(wrapped, errSpecific), "specific sentinel stays reachable")
	assert.Equal(t, errSpecific.Error(), marked.Error(), "marking keeps the message")

	assert.Equal(t, KindAuthRequired, KindOf(AuthRequired(errors.New("x"))))
	assert.Equal(t, KindInvalidTransition, KindOf(InvalidTransition(errors.New("x"))))
	assert.Equal(t, KindRemoteFailure, KindOf(RemoteFailure(errors.New("x"))))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestMarks_DoNotLeakBetweenSentinels(t *testing.T) {
	errA := errors.New("a: first")
	errB := errors.New("b: second")

	err := Validation(errA)

	assert.True(t, errors.Is(err, errA))
	assert.False(t, errors.Is(err, errB))
}
