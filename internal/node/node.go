// Package node glues configuration, interactor and decoder into the
// caller-facing conversation bridge.
package node

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/voicebotics/lex-bridge/internal/lex"
	"github.com/voicebotics/lex-bridge/internal/model"
	"github.com/voicebotics/lex-bridge/internal/params"
	"github.com/voicebotics/lex-bridge/pkg/logger"
	"github.com/voicebotics/lex-bridge/pkg/metrics"
)

// Node bridges the local conversation interface to the Lex runtime. A node
// starts unbuilt; a successful build binds it to its interactor for the rest
// of the process lifetime. PostContent is only meaningful once built.
type Node struct {
	interactor *lex.Interactor
	log        *logger.Logger
}

// New creates an unbuilt node.
func New(log *logger.Logger) *Node {
	return &Node{log: log}
}

// Init binds the node to its interactor. The interactor owns the Lex
// conversation session, so it must come from exactly one build.
func (n *Node) Init(interactor *lex.Interactor) error {
	if interactor == nil {
		return fmt.Errorf("%w: nil interactor", lex.ErrInvalidArgument)
	}
	n.interactor = interactor
	return nil
}

// BuildNode reads the bot configuration from the parameter source and
// returns a node bound to a fresh interactor over client. Invalid
// configuration leaves no interactor bound.
func BuildNode(p params.Reader, client lex.RuntimeClient, log *logger.Logger) (*Node, error) {
	interactor, err := lex.BuildInteractor(p, client)
	if err != nil {
		return nil, err
	}

	n := New(log)
	if err := n.Init(interactor); err != nil {
		return nil, err
	}

	cfg := interactor.Configuration()
	n.log = log.WithBot(cfg.UserID, cfg.BotName, cfg.BotAlias)
	return n, nil
}

// PostContent runs one conversation turn. It returns true only when the
// remote call and the result decode both succeed; on any failure resp is
// left exactly as passed in, so a non-default response implies success.
func (n *Node) PostContent(ctx context.Context, req *model.ConversationRequest, resp *model.ConversationResponse) bool {
	start := time.Now()

	if n.interactor == nil {
		n.log.Error("post content called on unbuilt node")
		metrics.RecordPostContent("unbuilt", time.Since(start).Seconds())
		return false
	}

	out, err := n.interactor.PostContent(ctx, req)
	if err != nil {
		n.log.Error("lex post content failed", zap.Error(err))
		metrics.RemoteCallFailures.Inc()
		metrics.RecordPostContent("remote_error", time.Since(start).Seconds())
		return false
	}

	if err := lex.DecodeResponse(out, resp); err != nil {
		n.log.Error("failed to decode lex result", zap.Error(err))
		metrics.DecodeFailures.Inc()
		metrics.RecordPostContent("decode_error", time.Since(start).Seconds())
		return false
	}

	n.log.Debug("conversation turn completed",
		zap.String("intent", resp.IntentName),
		zap.String("dialog_state", resp.DialogState),
		zap.Int("audio_bytes", len(resp.AudioResponse)),
		zap.Int("slots", len(resp.Slots)),
	)
	metrics.RecordPostContent("success", time.Since(start).Seconds())
	return true
}
