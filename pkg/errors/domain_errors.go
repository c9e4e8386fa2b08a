package errors

var (
	// Sentinels shared by the use case and repository layers.
	ErrSelfRequest            = InvalidArg("cannot open a chat with yourself")
	ErrRequestAlreadyPending  = AlreadyExists("a chat request for this user is already pending")
	ErrDeletionAlreadyPending = AlreadyExists("a deletion request for this conversation is already pending")
	ErrNotificationNotFound   = NotFound("notification not found")
	ErrConversationNotFound   = NotFound("conversation not found")
	ErrMessageNotFound        = NotFound("message not found")
	ErrNotParticipant         = Forbidden("user is not a participant in this conversation")
	ErrNotAuthor              = Forbidden("only the author may modify this message")
	ErrNotTwoParty            = InvalidArg("conversation does not have exactly one other participant")
	ErrWrongNotificationType  = InvalidArg("notification is not of the expected type")
	ErrEmptyMessageContent    = InvalidArg("message content cannot be empty")
)

func ErrStore(cause error) error {
	return Wrap(CodeInternal, "store operation failed", cause)
}
