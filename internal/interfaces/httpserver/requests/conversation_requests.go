package requests

// CreateConversationRequest represents the request to create a conversation
type CreateConversationRequest struct {
	Title *string `json:"title,omitempty"`
}

// CreateMessageRequest represents the request to append a message. The
// conversationId field is accepted for schema compatibility but the path
// parameter is authoritative.
type CreateMessageRequest struct {
	Content        string `json:"content"`
	Role           string `json:"role,omitempty"`
	ConversationID string `json:"conversationId,omitempty"`
}
