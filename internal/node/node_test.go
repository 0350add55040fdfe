package node

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimeservice"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimeservice/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicebotics/lex-bridge/internal/lex"
	"github.com/voicebotics/lex-bridge/internal/model"
	"github.com/voicebotics/lex-bridge/internal/params"
	"github.com/voicebotics/lex-bridge/pkg/logger"
)

// mockLexClient mirrors the runtime: a successful double answers every turn
// with a fixed rich result, a failing one always errors.
type mockLexClient struct {
	succeed bool
}

func (c *mockLexClient) PostContent(ctx context.Context, in *lexruntimeservice.PostContentInput, optFns ...func(*lexruntimeservice.Options)) (*lexruntimeservice.PostContentOutput, error) {
	if !c.succeed {
		return nil, errors.New("remote error")
	}

	slotJSON := `{"test_slots_key1": "test_slots_value1", "test_slots_key2": "test_slots_value2"}`
	return &lexruntimeservice.PostContentOutput{
		ContentType:       aws.String("test_content_type"),
		IntentName:        aws.String("test_intent_name"),
		Slots:             aws.String(base64.StdEncoding.EncodeToString([]byte(slotJSON))),
		SessionAttributes: aws.String("test_session_attributes"),
		Message:           aws.String("test_message"),
		MessageFormat:     types.MessageFormatTypeCustomPayload,
		DialogState:       types.DialogStateFailed,
		SlotToElicit:      aws.String("test_active_slot"),
		AudioStream:       io.NopCloser(strings.NewReader("blah blah blah")),
	}, nil
}

// testParams mirrors the deployed parameter set for the test bot.
func testParams() params.StaticReader {
	return params.StaticReader{
		Strings: map[string]string{
			lex.UserIDKey:   "test_user",
			lex.BotNameKey:  "test_bot",
			lex.BotAliasKey: "superbot",
			lex.RegionKey:   "us-west-2",
		},
		Ints: map[string]int{
			lex.ConnectTimeoutMsKey: 9000,
			lex.RequestTimeoutMsKey: 9000,
		},
	}
}

func testRequest() *model.ConversationRequest {
	return &model.ConversationRequest{
		ContentType: "text/plain; charset=utf-8",
		AcceptType:  "text/plain; charset=utf-8",
		TextRequest: "make a reservation",
	}
}

func TestBuildNodeWithEmptyParams(t *testing.T) {
	n, err := BuildNode(params.StaticReader{}, &mockLexClient{}, logger.NewNop())
	assert.ErrorIs(t, err, lex.ErrInvalidConfiguration)
	assert.Nil(t, n)
}

func TestInitWithNilInteractor(t *testing.T) {
	n := New(logger.NewNop())
	err := n.Init(nil)
	assert.ErrorIs(t, err, lex.ErrInvalidArgument)
}

func TestPostContentFail(t *testing.T) {
	n, err := BuildNode(testParams(), &mockLexClient{succeed: false}, logger.NewNop())
	require.NoError(t, err)

	var response model.ConversationResponse
	success := n.PostContent(context.Background(), testRequest(), &response)
	assert.False(t, success)

	// The response must not have been filled on a failed call.
	assert.Empty(t, response.TextResponse)
	assert.Empty(t, response.AudioResponse)
	assert.Empty(t, response.Slots)
	assert.Empty(t, response.IntentName)
	assert.Empty(t, response.MessageFormatType)
	assert.Empty(t, response.DialogState)
}

func TestPostContentSucceed(t *testing.T) {
	n, err := BuildNode(testParams(), &mockLexClient{succeed: true}, logger.NewNop())
	require.NoError(t, err)

	var response model.ConversationResponse
	success := n.PostContent(context.Background(), testRequest(), &response)
	require.True(t, success)

	assert.Equal(t, "test_message", response.TextResponse)
	require.GreaterOrEqual(t, len(response.AudioResponse), 14)
	assert.Equal(t, []byte("blah blah blah"), response.AudioResponse[:14])
	require.Len(t, response.Slots, 2)
	assert.Equal(t, "test_slots_key1", response.Slots[0].Key)
	assert.Equal(t, "test_slots_value1", response.Slots[0].Value)
	assert.Equal(t, "test_slots_key2", response.Slots[1].Key)
	assert.Equal(t, "test_slots_value2", response.Slots[1].Value)
	assert.Equal(t, "test_intent_name", response.IntentName)
	assert.Equal(t, "CustomPayload", response.MessageFormatType)
	assert.Equal(t, "Failed", response.DialogState)
}

func TestPostContentOnUnbuiltNode(t *testing.T) {
	n := New(logger.NewNop())

	var response model.ConversationResponse
	success := n.PostContent(context.Background(), testRequest(), &response)
	assert.False(t, success)
	assert.Equal(t, model.ConversationResponse{}, response)
}
