package notification

import (
	"encoding/json"
	"fmt"
)

// Payload is the typed content of a notification. One variant exists per Type
// with a fixed field set; raw JSON is decoded into a variant at the store
// boundary so downstream code never inspects untyped maps.
type Payload interface {
	NotificationType() Type
	validate() error
}

// ChatRequestPayload asks the addressed user to open a conversation with the
// initiator. FromUserID doubles as the duplicate-suppression key for the
// (initiator, target) pair.
type ChatRequestPayload struct {
	FromUserID    string `json:"fromUserId"`
	FromUserName  string `json:"fromUserName,omitempty"`
	FromUserEmail string `json:"fromUserEmail,omitempty"`
}

func (ChatRequestPayload) NotificationType() Type { return TypeChatRequest }

func (p ChatRequestPayload) validate() error {
	if p.FromUserID == "" {
		return fmt.Errorf("chat_request payload: fromUserId is required")
	}
	return nil
}

// ChatDeletionRequestPayload asks the other participant to approve removing a
// conversation. The conversation name travels along so the client can render a
// precise prompt without a second fetch.
type ChatDeletionRequestPayload struct {
	ConversationID   string `json:"conversationId"`
	ConversationName string `json:"conversationName,omitempty"`
	FromUserID       string `json:"fromUserId"`
	FromUserName     string `json:"fromUserName,omitempty"`
}

func (ChatDeletionRequestPayload) NotificationType() Type { return TypeChatDeletionRequest }

func (p ChatDeletionRequestPayload) validate() error {
	if p.ConversationID == "" {
		return fmt.Errorf("chat_deletion_request payload: conversationId is required")
	}
	if p.FromUserID == "" {
		return fmt.Errorf("chat_deletion_request payload: fromUserId is required")
	}
	return nil
}

// ChatDeletionRejectedPayload informs the original requester that the other
// side declined; the conversation stays active.
type ChatDeletionRejectedPayload struct {
	ConversationID   string `json:"conversationId"`
	ConversationName string `json:"conversationName,omitempty"`
	FromUserID       string `json:"fromUserId"`
}

func (ChatDeletionRejectedPayload) NotificationType() Type { return TypeChatDeletionRejected }

func (p ChatDeletionRejectedPayload) validate() error {
	if p.ConversationID == "" {
		return fmt.Errorf("chat_deletion_rejected payload: conversationId is required")
	}
	return nil
}

// GenericPayload carries free-form announcement text.
type GenericPayload struct {
	Text string `json:"text"`
}

func (GenericPayload) NotificationType() Type { return TypeGeneric }

func (p GenericPayload) validate() error { return nil }

// EncodePayload serializes a payload for storage, validating its fixed field
// set first.
func EncodePayload(p Payload) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("notification: nil payload")
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return json.Marshal(p)
}

// DecodePayload deserializes raw JSON into the variant matching t. Unknown
// types and missing required fields are rejected here, at the store boundary.
func DecodePayload(t Type, raw []byte) (Payload, error) {
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	var p Payload
	switch t {
	case TypeChatRequest:
		var v ChatRequestPayload
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		p = v
	case TypeChatDeletionRequest:
		var v ChatDeletionRequestPayload
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		p = v
	case TypeChatDeletionRejected:
		var v ChatDeletionRejectedPayload
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		p = v
	case TypeGeneric:
		var v GenericPayload
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		p = v
	default:
		return nil, fmt.Errorf("notification: unknown type %q", t)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}
