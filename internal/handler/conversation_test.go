package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimeservice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicebotics/lex-bridge/internal/lex"
	"github.com/voicebotics/lex-bridge/internal/model"
	"github.com/voicebotics/lex-bridge/internal/node"
	"github.com/voicebotics/lex-bridge/internal/params"
	"github.com/voicebotics/lex-bridge/pkg/logger"
)

type stubLexClient struct {
	succeed bool
}

func (c *stubLexClient) PostContent(ctx context.Context, in *lexruntimeservice.PostContentInput, optFns ...func(*lexruntimeservice.Options)) (*lexruntimeservice.PostContentOutput, error) {
	if !c.succeed {
		return nil, errors.New("remote error")
	}
	return &lexruntimeservice.PostContentOutput{
		Message:     aws.String("test_message"),
		IntentName:  aws.String("test_intent_name"),
		AudioStream: io.NopCloser(strings.NewReader("blah blah blah")),
	}, nil
}

func newTestHandler(t *testing.T, succeed bool) *ConversationHandler {
	t.Helper()

	p := params.StaticReader{
		Strings: map[string]string{
			lex.UserIDKey:   "test_user",
			lex.BotNameKey:  "test_bot",
			lex.BotAliasKey: "superbot",
		},
	}
	n, err := node.BuildNode(p, &stubLexClient{succeed: succeed}, logger.NewNop())
	require.NoError(t, err)
	return NewConversationHandler(n, logger.NewNop())
}

func postConversation(h *ConversationHandler, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conversation", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Post(rec, req)
	return rec
}

func TestConversationPost(t *testing.T) {
	h := newTestHandler(t, true)

	body, err := json.Marshal(model.ConversationRequest{
		ContentType: "text/plain; charset=utf-8",
		AcceptType:  "text/plain; charset=utf-8",
		TextRequest: "make a reservation",
	})
	require.NoError(t, err)

	rec := postConversation(h, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.ConversationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "test_message", resp.TextResponse)
	assert.Equal(t, "test_intent_name", resp.IntentName)
	assert.Equal(t, []byte("blah blah blah"), resp.AudioResponse)
}

func TestConversationPostRemoteFailure(t *testing.T) {
	h := newTestHandler(t, false)

	body, err := json.Marshal(model.ConversationRequest{
		ContentType: "text/plain; charset=utf-8",
		AcceptType:  "text/plain; charset=utf-8",
		TextRequest: "make a reservation",
	})
	require.NoError(t, err)

	rec := postConversation(h, body)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestConversationPostInvalidBody(t *testing.T) {
	h := newTestHandler(t, true)

	rec := postConversation(h, []byte("not json"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConversationPostMissingFields(t *testing.T) {
	h := newTestHandler(t, true)

	body, err := json.Marshal(model.ConversationRequest{TextRequest: "hello"})
	require.NoError(t, err)

	rec := postConversation(h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
