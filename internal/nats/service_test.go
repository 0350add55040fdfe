package nats

import (
	"context"
	"encoding/json"
	"errors"
	"io"
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

func newTestService(t *testing.T, succeed bool) *ConversationService {
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
	return NewConversationService(n, logger.NewNop())
}

func TestHandleSuccess(t *testing.T) {
	svc := newTestService(t, true)

	data, err := json.Marshal(model.ConversationRequest{
		ContentType: "text/plain; charset=utf-8",
		AcceptType:  "text/plain; charset=utf-8",
		TextRequest: "make a reservation",
	})
	require.NoError(t, err)

	reply := svc.Handle(context.Background(), data)
	assert.True(t, reply.Success)
	assert.Equal(t, "test_message", reply.Response.TextResponse)
	assert.Equal(t, "test_intent_name", reply.Response.IntentName)
	assert.Equal(t, []byte("blah blah blah"), reply.Response.AudioResponse)
}

func TestHandleRemoteFailure(t *testing.T) {
	svc := newTestService(t, false)

	data, err := json.Marshal(model.ConversationRequest{
		ContentType: "text/plain; charset=utf-8",
		AcceptType:  "text/plain; charset=utf-8",
		TextRequest: "make a reservation",
	})
	require.NoError(t, err)

	reply := svc.Handle(context.Background(), data)
	assert.False(t, reply.Success)
	assert.Equal(t, model.ConversationResponse{}, reply.Response,
		"failed turns reply with a default response")
}

func TestHandleMalformedPayload(t *testing.T) {
	svc := newTestService(t, true)

	reply := svc.Handle(context.Background(), []byte("not json"))
	assert.False(t, reply.Success)
	assert.Equal(t, model.ConversationResponse{}, reply.Response)
}

func TestStopBeforeStart(t *testing.T) {
	svc := newTestService(t, true)
	svc.Stop()
}
