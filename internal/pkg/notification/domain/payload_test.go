package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePayload(t *testing.T) {
	t.Run("happy path - chat request with camelCase keys", func(t *testing.T) {
		raw, err := EncodePayload(ChatRequestPayload{
			FromUserID:    "alice",
			FromUserName:  "Alice",
			FromUserEmail: "alice@example.com",
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"fromUserId":"alice","fromUserName":"Alice","fromUserEmail":"alice@example.com"}`, string(raw))
	})

	t.Run("sad path - missing fromUserId", func(t *testing.T) {
		_, err := EncodePayload(ChatRequestPayload{FromUserName: "Alice"})
		assert.Error(t, err)
	})

	t.Run("sad path - deletion request without conversation", func(t *testing.T) {
		_, err := EncodePayload(ChatDeletionRequestPayload{FromUserID: "alice"})
		assert.Error(t, err)
	})

	t.Run("sad path - nil payload", func(t *testing.T) {
		_, err := EncodePayload(nil)
		assert.Error(t, err)
	})
}

func TestDecodePayload(t *testing.T) {
	t.Run("happy path - each type decodes into its variant", func(t *testing.T) {
		cases := []struct {
			typ  Type
			raw  string
			want Payload
		}{
			{
				TypeChatRequest,
				`{"fromUserId":"alice","fromUserName":"Alice"}`,
				ChatRequestPayload{FromUserID: "alice", FromUserName: "Alice"},
			},
			{
				TypeChatDeletionRequest,
				`{"conversationId":"c1","fromUserId":"alice"}`,
				ChatDeletionRequestPayload{ConversationID: "c1", FromUserID: "alice"},
			},
			{
				TypeChatDeletionRejected,
				`{"conversationId":"c1","fromUserId":"bob"}`,
				ChatDeletionRejectedPayload{ConversationID: "c1", FromUserID: "bob"},
			},
			{
				TypeGeneric,
				`{"text":"maintenance tonight"}`,
				GenericPayload{Text: "maintenance tonight"},
			},
		}
		for _, tc := range cases {
			got, err := DecodePayload(tc.typ, []byte(tc.raw))
			require.NoError(t, err, "type %s", tc.typ)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.typ, got.NotificationType())
		}
	})

	t.Run("sad path - unknown type", func(t *testing.T) {
		_, err := DecodePayload(Type("mystery"), []byte(`{}`))
		assert.Error(t, err)
	})

	t.Run("sad path - stored row missing required field", func(t *testing.T) {
		_, err := DecodePayload(TypeChatRequest, []byte(`{"fromUserName":"Alice"}`))
		assert.Error(t, err)
	})

	t.Run("empty raw treated as empty object", func(t *testing.T) {
		got, err := DecodePayload(TypeGeneric, nil)
		require.NoError(t, err)
		assert.Equal(t, GenericPayload{}, got)
	})
}

func TestTypeValid(t *testing.T) {
	for _, typ := range []Type{TypeChatRequest, TypeChatDeletionRequest, TypeChatDeletionRejected, TypeGeneric} {
		assert.True(t, typ.Valid(), "type %s", typ)
	}
	assert.False(t, Type("").Valid())
	assert.False(t, Type("mystery").Valid())
}
