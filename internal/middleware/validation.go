package middleware

import (
	"errors"
	"unicode/utf8"

	"github.com/voicebotics/lex-bridge/internal/model"
)

// maxAudioRequestBytes bounds inbound audio; Lex caps PostContent input well
// below this anyway.
const maxAudioRequestBytes = 10 * 1024 * 1024

// ValidateConversationRequest validates an inbound conversation request
// before it reaches the node.
func ValidateConversationRequest(req *model.ConversationRequest) error {
	if req == nil {
		return errors.New("request cannot be nil")
	}
	if req.ContentType == "" {
		return errors.New("content_type is required")
	}
	if req.AcceptType == "" {
		return errors.New("accept_type is required")
	}
	if req.TextRequest == "" && len(req.AudioRequest) == 0 {
		return errors.New("one of text_request or audio_request is required")
	}
	if req.TextRequest != "" && !utf8.ValidString(req.TextRequest) {
		return errors.New("text_request must be valid UTF-8")
	}
	if len(req.AudioRequest) > maxAudioRequestBytes {
		return errors.New("audio_request exceeds maximum size")
	}
	return nil
}
