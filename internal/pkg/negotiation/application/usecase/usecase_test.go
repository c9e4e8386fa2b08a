package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chat "github.com/luizfilipeschaeffer/omni/internal/pkg/chat/domain"
	notification "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/domain"
	user "github.com/luizfilipeschaeffer/omni/internal/pkg/user/domain"
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// fakeNotificationStore is an in-memory NotificationRepository covering the
// calls the negotiation use cases make.
type fakeNotificationStore struct {
	nextID int64
	rows   map[int64]notification.Notification
	fail   error
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{rows: make(map[int64]notification.Notification)}
}

func (s *fakeNotificationStore) Append(_ context.Context, n notification.Notification) (int64, error) {
	if s.fail != nil {
		return 0, s.fail
	}
	s.nextID++
	n.ID = s.nextID
	s.rows[n.ID] = n
	return n.ID, nil
}

func (s *fakeNotificationStore) GetByID(_ context.Context, id int64, userID string) (*notification.Notification, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	n, ok := s.rows[id]
	if !ok || n.UserID != userID {
		return nil, apperrors.ErrNotificationNotFound
	}
	return &n, nil
}

func (s *fakeNotificationStore) ListByTarget(context.Context, string, int) ([]notification.Notification, error) {
	return nil, nil
}

func (s *fakeNotificationStore) ListSentPending(context.Context, string, int) ([]notification.Notification, error) {
	return nil, nil
}

func (s *fakeNotificationStore) MarkRead(_ context.Context, id int64, userID string) error {
	n, ok := s.rows[id]
	if !ok || n.UserID != userID {
		return apperrors.ErrNotificationNotFound
	}
	n.Read = true
	s.rows[id] = n
	return nil
}

func (s *fakeNotificationStore) MarkAllRead(context.Context, string) error { return nil }

func (s *fakeNotificationStore) Delete(_ context.Context, id int64, userID string) error {
	n, ok := s.rows[id]
	if !ok || n.UserID != userID {
		return apperrors.ErrNotificationNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *fakeNotificationStore) DeleteRead(context.Context, string) (int64, error) { return 0, nil }

func (s *fakeNotificationStore) DeleteReadOlderThan(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (s *fakeNotificationStore) CountUnread(context.Context, string) (int64, error) { return 0, nil }

func (s *fakeNotificationStore) HasPendingChatRequest(_ context.Context, fromUserID, toUserID string) (bool, error) {
	if s.fail != nil {
		return false, s.fail
	}
	for _, n := range s.rows {
		if n.Read || n.Type != notification.TypeChatRequest || n.UserID != toUserID {
			continue
		}
		p, ok := n.Payload.(notification.ChatRequestPayload)
		if ok && p.FromUserID == fromUserID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeNotificationStore) HasPendingDeletionRequest(_ context.Context, conversationID string) (bool, error) {
	for _, n := range s.rows {
		if n.Read || n.Type != notification.TypeChatDeletionRequest {
			continue
		}
		p, ok := n.Payload.(notification.ChatDeletionRequestPayload)
		if ok && p.ConversationID == conversationID {
			return true, nil
		}
	}
	return false, nil
}

type fakeUserStore struct {
	users map[string]user.User
}

func (s *fakeUserStore) GetByID(_ context.Context, id string) (*user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	return &u, nil
}

func (s *fakeUserStore) Search(context.Context, string, int) ([]user.User, error) { return nil, nil }

type fakeChatStore struct {
	conv         *chat.Conversation
	participants []string
}

func (s *fakeChatStore) GetConversation(_ context.Context, id string) (*chat.Conversation, error) {
	if s.conv == nil || s.conv.ID != id {
		return nil, apperrors.ErrConversationNotFound
	}
	return s.conv, nil
}

func (s *fakeChatStore) ListConversationsByUser(context.Context, string) ([]chat.ConversationSummary, error) {
	return nil, nil
}

func (s *fakeChatStore) ListParticipantIDs(context.Context, string) ([]string, error) {
	return s.participants, nil
}

func (s *fakeChatStore) IsParticipant(_ context.Context, _ string, userID string) (bool, error) {
	for _, id := range s.participants {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeChatStore) OtherParticipant(_ context.Context, _ string, userID string) (string, error) {
	var others []string
	for _, id := range s.participants {
		if id != userID {
			others = append(others, id)
		}
	}
	if len(others) == 0 {
		return "", apperrors.ErrConversationNotFound
	}
	if len(others) > 1 {
		return "", apperrors.ErrNotTwoParty
	}
	return others[0], nil
}

func (s *fakeChatStore) SaveMessage(context.Context, chat.Message) (string, error) { return "", nil }

func (s *fakeChatStore) ListMessagesByConversation(context.Context, string) ([]chat.Message, error) {
	return nil, nil
}

func (s *fakeChatStore) UpdateMessageContent(context.Context, string, string, string, string) (*chat.Message, error) {
	return nil, nil
}

func (s *fakeChatStore) DeleteMessage(context.Context, string, string, string) error { return nil }

func (s *fakeChatStore) MarkMessageViewed(context.Context, string, string, string) error { return nil }

// recordingNotifier captures forwards so tests can assert on push behavior.
type recordingNotifier struct {
	targets []string
	frames  []notification.Notification
}

func (r *recordingNotifier) Forward(userID string, n notification.Notification) {
	r.targets = append(r.targets, userID)
	r.frames = append(r.frames, n)
}

func twoUsers() *fakeUserStore {
	return &fakeUserStore{users: map[string]user.User{
		"alice": {ID: "alice", Name: "Alice", Email: "alice@example.com"},
		"bob":   {ID: "bob", Name: "Bob", Email: "bob@example.com"},
	}}
}

func TestRequestChatUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path - request lands as unread notification", func(t *testing.T) {
		store := newFakeNotificationStore()
		notifier := &recordingNotifier{}
		uc := NewRequestChatUseCase(store, twoUsers(), notifier)

		n, err := uc.Execute(ctx, RequestChatInput{InitiatorID: "alice", TargetID: "bob"})
		require.NoError(t, err)
		require.NotNil(t, n)

		assert.Equal(t, "bob", n.UserID)
		assert.Equal(t, notification.TypeChatRequest, n.Type)
		assert.False(t, n.Read)

		p, ok := n.Payload.(notification.ChatRequestPayload)
		require.True(t, ok)
		assert.Equal(t, "alice", p.FromUserID)
		assert.Equal(t, "Alice", p.FromUserName)
		assert.Equal(t, "alice@example.com", p.FromUserEmail)

		require.Len(t, notifier.targets, 1)
		assert.Equal(t, "bob", notifier.targets[0])
		assert.Equal(t, n.ID, notifier.frames[0].ID)
	})

	t.Run("sad path - self request", func(t *testing.T) {
		uc := NewRequestChatUseCase(newFakeNotificationStore(), twoUsers(), nil)

		_, err := uc.Execute(ctx, RequestChatInput{InitiatorID: "alice", TargetID: "alice"})
		assert.ErrorIs(t, err, apperrors.ErrSelfRequest)
	})

	t.Run("sad path - unknown target", func(t *testing.T) {
		uc := NewRequestChatUseCase(newFakeNotificationStore(), twoUsers(), nil)

		_, err := uc.Execute(ctx, RequestChatInput{InitiatorID: "alice", TargetID: "ghost"})
		assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	})

	t.Run("sad path - duplicate while pending", func(t *testing.T) {
		store := newFakeNotificationStore()
		uc := NewRequestChatUseCase(store, twoUsers(), nil)

		_, err := uc.Execute(ctx, RequestChatInput{InitiatorID: "alice", TargetID: "bob"})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, RequestChatInput{InitiatorID: "alice", TargetID: "bob"})
		assert.ErrorIs(t, err, apperrors.ErrRequestAlreadyPending)
		assert.Equal(t, apperrors.CodeAlreadyExists, apperrors.CodeOf(err))

		// The reverse direction is a distinct pair and stays allowed.
		_, err = uc.Execute(ctx, RequestChatInput{InitiatorID: "bob", TargetID: "alice"})
		assert.NoError(t, err)
	})

	t.Run("duplicate pair frees up after reject", func(t *testing.T) {
		store := newFakeNotificationStore()
		requestUC := NewRequestChatUseCase(store, twoUsers(), nil)
		rejectUC := NewRejectChatUseCase(store)

		n, err := requestUC.Execute(ctx, RequestChatInput{InitiatorID: "alice", TargetID: "bob"})
		require.NoError(t, err)

		require.NoError(t, rejectUC.Execute(ctx, RejectChatInput{TargetID: "bob", NotificationID: n.ID}))

		_, err = requestUC.Execute(ctx, RequestChatInput{InitiatorID: "alice", TargetID: "bob"})
		assert.NoError(t, err)
	})

	t.Run("sad path - store failure surfaces as internal", func(t *testing.T) {
		store := newFakeNotificationStore()
		store.fail = errors.New("connection refused")
		uc := NewRequestChatUseCase(store, twoUsers(), nil)

		_, err := uc.Execute(ctx, RequestChatInput{InitiatorID: "alice", TargetID: "bob"})
		assert.Equal(t, apperrors.CodeInternal, apperrors.CodeOf(err))
	})
}

func TestRejectChatUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path - request row removed", func(t *testing.T) {
		store := newFakeNotificationStore()
		requestUC := NewRequestChatUseCase(store, twoUsers(), nil)
		uc := NewRejectChatUseCase(store)

		n, err := requestUC.Execute(ctx, RequestChatInput{InitiatorID: "alice", TargetID: "bob"})
		require.NoError(t, err)

		require.NoError(t, uc.Execute(ctx, RejectChatInput{TargetID: "bob", NotificationID: n.ID}))
		_, err = store.GetByID(ctx, n.ID, "bob")
		assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
	})

	t.Run("sad path - someone else's notification", func(t *testing.T) {
		store := newFakeNotificationStore()
		requestUC := NewRequestChatUseCase(store, twoUsers(), nil)
		uc := NewRejectChatUseCase(store)

		n, err := requestUC.Execute(ctx, RequestChatInput{InitiatorID: "alice", TargetID: "bob"})
		require.NoError(t, err)

		err = uc.Execute(ctx, RejectChatInput{TargetID: "alice", NotificationID: n.ID})
		assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	})

	t.Run("sad path - wrong notification type", func(t *testing.T) {
		store := newFakeNotificationStore()
		id, err := store.Append(ctx, notification.Notification{
			UserID: "bob",
			Type:   notification.TypeGeneric,
			Payload: notification.GenericPayload{
				Text: "welcome",
			},
		})
		require.NoError(t, err)

		uc := NewRejectChatUseCase(store)
		err = uc.Execute(ctx, RejectChatInput{TargetID: "bob", NotificationID: id})
		assert.ErrorIs(t, err, apperrors.ErrWrongNotificationType)
	})
}

func TestRequestDeletionUseCase(t *testing.T) {
	ctx := context.Background()
	convName := "plans"
	conv := &chat.Conversation{ID: "conv-1", Name: &convName}

	t.Run("happy path - request addressed to the other participant", func(t *testing.T) {
		store := newFakeNotificationStore()
		chats := &fakeChatStore{conv: conv, participants: []string{"alice", "bob"}}
		notifier := &recordingNotifier{}
		uc := NewRequestDeletionUseCase(chats, store, twoUsers(), notifier)

		n, err := uc.Execute(ctx, RequestDeletionInput{RequesterID: "alice", ConversationID: "conv-1"})
		require.NoError(t, err)

		assert.Equal(t, "bob", n.UserID)
		assert.Equal(t, notification.TypeChatDeletionRequest, n.Type)

		p, ok := n.Payload.(notification.ChatDeletionRequestPayload)
		require.True(t, ok)
		assert.Equal(t, "conv-1", p.ConversationID)
		assert.Equal(t, "plans", p.ConversationName)
		assert.Equal(t, "alice", p.FromUserID)

		require.Len(t, notifier.targets, 1)
		assert.Equal(t, "bob", notifier.targets[0])
	})

	t.Run("sad path - requester is not a participant", func(t *testing.T) {
		store := newFakeNotificationStore()
		chats := &fakeChatStore{conv: conv, participants: []string{"bob", "carol"}}
		uc := NewRequestDeletionUseCase(chats, store, twoUsers(), nil)

		_, err := uc.Execute(ctx, RequestDeletionInput{RequesterID: "alice", ConversationID: "conv-1"})
		assert.ErrorIs(t, err, apperrors.ErrNotParticipant)
		assert.Equal(t, apperrors.CodePermissionDenied, apperrors.CodeOf(err))
	})

	t.Run("sad path - unknown conversation", func(t *testing.T) {
		store := newFakeNotificationStore()
		chats := &fakeChatStore{conv: conv, participants: []string{"alice", "bob"}}
		uc := NewRequestDeletionUseCase(chats, store, twoUsers(), nil)

		_, err := uc.Execute(ctx, RequestDeletionInput{RequesterID: "alice", ConversationID: "conv-9"})
		assert.ErrorIs(t, err, apperrors.ErrConversationNotFound)
	})

	t.Run("sad path - duplicate while pending", func(t *testing.T) {
		store := newFakeNotificationStore()
		chats := &fakeChatStore{conv: conv, participants: []string{"alice", "bob"}}
		uc := NewRequestDeletionUseCase(chats, store, twoUsers(), nil)

		_, err := uc.Execute(ctx, RequestDeletionInput{RequesterID: "alice", ConversationID: "conv-1"})
		require.NoError(t, err)

		// Either participant re-requesting hits the same pending row.
		_, err = uc.Execute(ctx, RequestDeletionInput{RequesterID: "bob", ConversationID: "conv-1"})
		assert.ErrorIs(t, err, apperrors.ErrDeletionAlreadyPending)
	})
}

// fakeNegotiationStore stands in for the transactional repository.
type fakeNegotiationStore struct {
	conv     *chat.Conversation
	rejected *notification.Notification
	err      error

	gotUser string
	gotID   int64
}

func (s *fakeNegotiationStore) AcceptChatRequest(_ context.Context, targetUserID string, notificationID int64, _ *string) (*chat.Conversation, error) {
	s.gotUser, s.gotID = targetUserID, notificationID
	return s.conv, s.err
}

func (s *fakeNegotiationStore) ApproveDeletion(_ context.Context, approverUserID string, notificationID int64) (string, error) {
	s.gotUser, s.gotID = approverUserID, notificationID
	if s.err != nil {
		return "", s.err
	}
	return s.conv.ID, nil
}

func (s *fakeNegotiationStore) RejectDeletion(_ context.Context, approverUserID string, notificationID int64) (*notification.Notification, error) {
	s.gotUser, s.gotID = approverUserID, notificationID
	return s.rejected, s.err
}

func TestAcceptChatUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path - conversation returned", func(t *testing.T) {
		repo := &fakeNegotiationStore{conv: &chat.Conversation{ID: "conv-1"}}
		uc := NewAcceptChatUseCase(repo)

		conv, err := uc.Execute(ctx, AcceptChatInput{TargetID: "bob", NotificationID: 7})
		require.NoError(t, err)
		assert.Equal(t, "conv-1", conv.ID)
		assert.Equal(t, "bob", repo.gotUser)
		assert.Equal(t, int64(7), repo.gotID)
	})

	t.Run("sad path - lost race surfaces as not found", func(t *testing.T) {
		repo := &fakeNegotiationStore{err: apperrors.ErrNotificationNotFound}
		uc := NewAcceptChatUseCase(repo)

		_, err := uc.Execute(ctx, AcceptChatInput{TargetID: "bob", NotificationID: 7})
		assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
	})

	t.Run("sad path - missing input", func(t *testing.T) {
		uc := NewAcceptChatUseCase(&fakeNegotiationStore{})

		_, err := uc.Execute(ctx, AcceptChatInput{TargetID: "", NotificationID: 7})
		assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
	})
}

func TestApproveDeletionUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path - conversation id returned", func(t *testing.T) {
		repo := &fakeNegotiationStore{conv: &chat.Conversation{ID: "conv-1"}}
		uc := NewApproveDeletionUseCase(repo)

		convID, err := uc.Execute(ctx, ApproveDeletionInput{ApproverID: "bob", NotificationID: 3})
		require.NoError(t, err)
		assert.Equal(t, "conv-1", convID)
	})

	t.Run("sad path - raw store failure wrapped as internal", func(t *testing.T) {
		repo := &fakeNegotiationStore{err: errors.New("deadlock detected")}
		uc := NewApproveDeletionUseCase(repo)

		_, err := uc.Execute(ctx, ApproveDeletionInput{ApproverID: "bob", NotificationID: 3})
		assert.Equal(t, apperrors.CodeInternal, apperrors.CodeOf(err))
	})
}

func TestRejectDeletionUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path - rejection forwarded to requester", func(t *testing.T) {
		rejected := &notification.Notification{
			ID:     42,
			UserID: "alice",
			Type:   notification.TypeChatDeletionRejected,
			Payload: notification.ChatDeletionRejectedPayload{
				ConversationID:   "conv-1",
				ConversationName: "plans",
				FromUserID:       "bob",
			},
		}
		repo := &fakeNegotiationStore{rejected: rejected}
		notifier := &recordingNotifier{}
		uc := NewRejectDeletionUseCase(repo, notifier)

		got, err := uc.Execute(ctx, RejectDeletionInput{ApproverID: "bob", NotificationID: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(42), got.ID)

		require.Len(t, notifier.targets, 1)
		assert.Equal(t, "alice", notifier.targets[0])
	})

	t.Run("sad path - nothing forwarded on failure", func(t *testing.T) {
		repo := &fakeNegotiationStore{err: apperrors.ErrNotificationNotFound}
		notifier := &recordingNotifier{}
		uc := NewRejectDeletionUseCase(repo, notifier)

		_, err := uc.Execute(ctx, RejectDeletionInput{ApproverID: "bob", NotificationID: 3})
		assert.Error(t, err)
		assert.Empty(t, notifier.targets)
	})
}
