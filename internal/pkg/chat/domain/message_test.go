package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

func TestNewMessage(t *testing.T) {
	t.Run("happy path - content trimmed", func(t *testing.T) {
		m, err := NewMessage("conv-1", "alice", "  hello there  ")
		require.NoError(t, err)
		assert.Equal(t, "hello there", m.Content)
		assert.Equal(t, "conv-1", m.ConversationID)
		assert.Equal(t, "alice", m.AuthorID)
		assert.False(t, m.Edited)
	})

	t.Run("sad path - blank content", func(t *testing.T) {
		_, err := NewMessage("conv-1", "alice", "   \n\t ")
		assert.ErrorIs(t, err, apperrors.ErrEmptyMessageContent)
	})

	t.Run("sad path - missing ids", func(t *testing.T) {
		_, err := NewMessage("", "alice", "hello")
		assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))

		_, err = NewMessage("conv-1", "", "hello")
		assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
	})
}
