// Package conversationhandler serves the conversation and message endpoints.
package conversationhandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aura-server/internal/domain/conversation"
	"aura-server/internal/infrastructure/metrics"
	"aura-server/internal/interfaces/httpserver/middlewares"
	"aura-server/internal/interfaces/httpserver/requests"
	"aura-server/internal/interfaces/httpserver/responses"
	"aura-server/internal/utils/platformerrors"
)

// ConversationHandler invokes conversation domain logic for the routes.
type ConversationHandler struct {
	conversations *conversation.ConversationService
}

// NewConversationHandler wires dependencies for the conversation routes.
func NewConversationHandler(conversations *conversation.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversations: conversations}
}

// CreateConversation godoc
// @Summary Create a conversation
// @Tags Conversations API
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body requests.CreateConversationRequest true "Conversation payload"
// @Success 201 {object} responses.ConversationResponse "Created conversation"
// @Failure 401 {object} responses.ErrorResponse "Could not validate credentials"
// @Failure 403 {object} responses.ErrorResponse "Not authenticated"
// @Failure 422 {object} responses.ErrorResponse "Invalid title"
// @Router /api/conversations [post]
func (h *ConversationHandler) CreateConversation(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	acct, ok := middlewares.GetAccountFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized,
			"authentication required", "3f7b1d5e-0a2c-4b4d-8e6f-7a9b1c3d5e0f")
		return
	}

	var req requests.CreateConversationRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeInvalidRequest,
			"invalid request body", "4a8c2e6f-1b3d-4c5e-9f7a-8b0c2d4e6f1a")
		return
	}

	conv, err := h.conversations.CreateConversation(ctx, conversation.CreateConversationInput{
		UserID: acct.ID,
		Title:  req.Title,
	})
	if err != nil {
		responses.HandleError(reqCtx, err)
		return
	}

	metrics.ConversationsCreatedTotal.Inc()

	reqCtx.JSON(http.StatusCreated, responses.NewConversationResponse(conv, acct.PublicID))
}

// ListConversations godoc
// @Summary List the account's conversations
// @Description Conversations are ordered most recently updated first.
// @Tags Conversations API
// @Security BearerAuth
// @Produce json
// @Success 200 {array} responses.ConversationResponse "Conversations owned by the account"
// @Failure 401 {object} responses.ErrorResponse "Could not validate credentials"
// @Failure 403 {object} responses.ErrorResponse "Not authenticated"
// @Router /api/conversations [get]
func (h *ConversationHandler) ListConversations(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	acct, ok := middlewares.GetAccountFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized,
			"authentication required", "5b9d3f7a-2c4e-4d6f-0a8b-9c1d3e5f7a2b")
		return
	}

	convs, err := h.conversations.ListConversations(ctx, acct.ID)
	if err != nil {
		responses.HandleError(reqCtx, err)
		return
	}

	reqCtx.JSON(http.StatusOK, responses.NewConversationListResponse(convs, acct.PublicID))
}

// GetConversation godoc
// @Summary Get one conversation
// @Description A conversation owned by someone else is indistinguishable from a missing one.
// @Tags Conversations API
// @Security BearerAuth
// @Produce json
// @Param conversation_id path string true "Conversation public ID"
// @Success 200 {object} responses.ConversationResponse "The conversation"
// @Failure 401 {object} responses.ErrorResponse "Could not validate credentials"
// @Failure 403 {object} responses.ErrorResponse "Not authenticated"
// @Failure 404 {object} responses.ErrorResponse "Conversation not found"
// @Router /api/conversations/{conversation_id} [get]
func (h *ConversationHandler) GetConversation(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	acct, ok := middlewares.GetAccountFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized,
			"authentication required", "6c0e4a8b-3d5f-4e7a-1b9c-0d2e4f6a8b3c")
		return
	}

	conv, err := h.conversations.GetConversationByPublicIDAndUserID(ctx, reqCtx.Param("conversation_id"), acct.ID)
	if err != nil {
		responses.HandleError(reqCtx, err)
		return
	}

	reqCtx.JSON(http.StatusOK, responses.NewConversationResponse(conv, acct.PublicID))
}

// CreateMessage godoc
// @Summary Append a message to a conversation
// @Description The role defaults to "user" when omitted.
// @Tags Conversations API
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param conversation_id path string true "Conversation public ID"
// @Param request body requests.CreateMessageRequest true "Message payload"
// @Success 201 {object} responses.MessageResponse "Created message"
// @Failure 401 {object} responses.ErrorResponse "Could not validate credentials"
// @Failure 403 {object} responses.ErrorResponse "Not authenticated"
// @Failure 404 {object} responses.ErrorResponse "Conversation not found"
// @Failure 422 {object} responses.ErrorResponse "Empty content or unknown role"
// @Router /api/conversations/{conversation_id}/messages [post]
func (h *ConversationHandler) CreateMessage(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	acct, ok := middlewares.GetAccountFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized,
			"authentication required", "7d1f5b9c-4e6a-4f8b-2c0d-1e3f5a7b9c4d")
		return
	}

	var req requests.CreateMessageRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeInvalidRequest,
			"invalid request body", "8e2a6c0d-5f7b-4a9c-3d1e-2f4a6b8c0d5e")
		return
	}

	conversationID := reqCtx.Param("conversation_id")

	msg, err := h.conversations.CreateMessage(ctx, conversation.CreateMessageInput{
		UserID:               acct.ID,
		ConversationPublicID: conversationID,
		Content:              req.Content,
		Role:                 conversation.MessageRole(req.Role),
	})
	if err != nil {
		responses.HandleError(reqCtx, err)
		return
	}

	metrics.MessagesCreatedTotal.Inc()

	reqCtx.JSON(http.StatusCreated, responses.NewMessageResponse(msg, conversationID, acct.PublicID))
}

// ListMessages godoc
// @Summary List a conversation's messages
// @Description Messages are ordered oldest first.
// @Tags Conversations API
// @Security BearerAuth
// @Produce json
// @Param conversation_id path string true "Conversation public ID"
// @Success 200 {array} responses.MessageResponse "Messages in the conversation"
// @Failure 401 {object} responses.ErrorResponse "Could not validate credentials"
// @Failure 403 {object} responses.ErrorResponse "Not authenticated"
// @Failure 404 {object} responses.ErrorResponse "Conversation not found"
// @Router /api/conversations/{conversation_id}/messages [get]
func (h *ConversationHandler) ListMessages(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	acct, ok := middlewares.GetAccountFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized,
			"authentication required", "9f3b7d1e-6a8c-4b0d-4e2f-3a5b7c9d1e6f")
		return
	}

	conversationID := reqCtx.Param("conversation_id")

	msgs, err := h.conversations.ListMessages(ctx, acct.ID, conversationID)
	if err != nil {
		responses.HandleError(reqCtx, err)
		return
	}

	reqCtx.JSON(http.StatusOK, responses.NewMessageListResponse(msgs, conversationID, acct.PublicID))
}
