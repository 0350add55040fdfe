package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/voicebotics/lex-bridge/internal/model"
	"github.com/voicebotics/lex-bridge/internal/node"
	"github.com/voicebotics/lex-bridge/pkg/logger"
	"github.com/voicebotics/lex-bridge/pkg/metrics"
)

const (
	// ConversationSubject is the default request/reply subject for
	// conversation turns.
	ConversationSubject = "lex.conversation.post"

	// ConversationQueue groups bridge instances so exactly one answers
	// each request.
	ConversationQueue = "lex-bridge"
)

// ConversationReply is the wire envelope for a conversation reply. Success
// mirrors the node's boolean contract: when false, Response carries only
// default values.
type ConversationReply struct {
	Success  bool                       `json:"success"`
	Response model.ConversationResponse `json:"response"`
}

// ConversationService answers conversation requests from the message bus.
type ConversationService struct {
	node *node.Node
	log  *logger.Logger
	sub  *nats.Subscription
}

// NewConversationService creates a conversation service over a built node.
func NewConversationService(n *node.Node, log *logger.Logger) *ConversationService {
	return &ConversationService{node: n, log: log}
}

// Start subscribes the service on subject with queue-group semantics.
func (s *ConversationService) Start(client *Client, subject, queue string) error {
	if subject == "" {
		subject = ConversationSubject
	}
	if queue == "" {
		queue = ConversationQueue
	}

	sub, err := client.Conn().QueueSubscribe(subject, queue, func(msg *nats.Msg) {
		reply := s.Handle(context.Background(), msg.Data)

		data, err := json.Marshal(reply)
		if err != nil {
			s.log.Error("failed to marshal conversation reply", zap.Error(err))
			return
		}
		if err := msg.Respond(data); err != nil {
			s.log.Error("failed to respond to conversation request", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe on %s: %w", subject, err)
	}

	s.sub = sub
	s.log.Info("conversation service listening",
		zap.String("subject", subject),
		zap.String("queue", queue),
	)
	return nil
}

// Handle decodes one request payload and runs it through the node. It is
// split from the subscription callback so it can be exercised without a
// broker.
func (s *ConversationService) Handle(ctx context.Context, data []byte) ConversationReply {
	var req model.ConversationRequest
	if err := json.Unmarshal(data, &req); err != nil {
		s.log.Warn("malformed conversation request", zap.Error(err))
		metrics.BusRequestsTotal.WithLabelValues("bad_request").Inc()
		return ConversationReply{}
	}

	var reply ConversationReply
	reply.Success = s.node.PostContent(ctx, &req, &reply.Response)
	if reply.Success {
		metrics.BusRequestsTotal.WithLabelValues("success").Inc()
	} else {
		metrics.BusRequestsTotal.WithLabelValues("failure").Inc()
	}
	return reply
}

// Stop unsubscribes the service. Safe to call before Start.
func (s *ConversationService) Stop() {
	if s.sub != nil {
		if err := s.sub.Unsubscribe(); err != nil {
			s.log.Warn("failed to unsubscribe conversation service", zap.Error(err))
		}
		s.sub = nil
	}
}
