package workspace

import (
	"testing"
	"time"

	"github.com/cristianoliveira/notedeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecondToastReplacesFirstAndRestartsTimer(t *testing.T) {
	n := NewNotifier(time.Millisecond)

	first := n.Show("x", "y")
	second := n.Show("a", "b")
	require.NotNil(t, first)
	require.NotNil(t, second)

	assert.Equal(t, "a", n.Current().Message)
	assert.Equal(t, "b", n.Current().ActionLabel)

	firstTick, ok := first().(ToastExpiredMsg)
	require.True(t, ok)
	assert.False(t, n.Expire(firstTick), "the replaced toast's timer is ignored")
	assert.True(t, n.Current().Visible)
	assert.Equal(t, "a", n.Current().Message)

	secondTick := second().(ToastExpiredMsg)
	assert.True(t, n.Expire(secondTick))
	assert.False(t, n.Current().Visible)
}

func TestDismissCancelsPendingTimer(t *testing.T) {
	n := NewNotifier(time.Millisecond)
	cmd := n.Show("x", "")
	n.Dismiss()
	assert.False(t, n.Current().Visible)

	n.Show("later", "")
	assert.False(t, n.Expire(cmd().(ToastExpiredMsg)))
	assert.Equal(t, "later", n.Current().Message)
}

func TestHeadlessNotifierHasNoTimer(t *testing.T) {
	n := NewNotifier(0)
	n.SetHeadless(true)
	assert.Equal(t, DefaultToastDuration, n.Duration())
	assert.Nil(t, n.Show("x", ""))
	assert.True(t, n.Current().Visible)
}

func TestToastKinds(t *testing.T) {
	assert.False(t, ToastSuccess.IsError())
	assert.False(t, ToastInfo.IsError())
	assert.True(t, ToastPersistenceError.IsError())
	assert.True(t, ToastValidationError.IsError())
	assert.True(t, ToastAuthError.IsError())
	assert.True(t, Toast{Action: domain.RouteArchived}.HasAction())
	assert.False(t, Toast{}.HasAction())
}
