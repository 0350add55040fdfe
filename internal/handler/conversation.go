// Package handler provides HTTP handlers for the bridge server.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/voicebotics/lex-bridge/internal/middleware"
	"github.com/voicebotics/lex-bridge/internal/model"
	"github.com/voicebotics/lex-bridge/internal/node"
	"github.com/voicebotics/lex-bridge/pkg/logger"
)

// ConversationHandler handles the conversation endpoint.
type ConversationHandler struct {
	node   *node.Node
	logger *logger.Logger
}

// NewConversationHandler creates a new conversation handler.
func NewConversationHandler(n *node.Node, log *logger.Logger) *ConversationHandler {
	return &ConversationHandler{
		node:   n,
		logger: log,
	}
}

// Post handles POST /api/v1/conversation
func (h *ConversationHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req model.ConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateConversationRequest(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var resp model.ConversationResponse
	if !h.node.PostContent(r.Context(), &req, &resp) {
		writeError(w, http.StatusBadGateway, "conversation call failed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
