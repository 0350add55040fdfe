package lex

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimeservice"

	"github.com/voicebotics/lex-bridge/internal/model"
	"github.com/voicebotics/lex-bridge/internal/params"
)

// Interactor mediates all traffic for one conversation session. Lex keeps
// per-session dialog state keyed by (user, bot, alias), so an interactor is
// the single point of entry for its session: the mutex is held across the
// remote call, and overlapping callers queue rather than race.
type Interactor struct {
	cfg    Configuration
	client RuntimeClient

	mu sync.Mutex
}

// NewInteractor binds a validated configuration to a runtime client.
func NewInteractor(cfg Configuration, client RuntimeClient) (*Interactor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("%w: nil runtime client", ErrInvalidArgument)
	}
	return &Interactor{cfg: cfg, client: client}, nil
}

// BuildInteractor reads the bot configuration from the parameter source and
// constructs an interactor over client. Invalid configuration produces no
// interactor.
func BuildInteractor(p params.Reader, client RuntimeClient) (*Interactor, error) {
	cfg, err := LoadConfiguration(p)
	if err != nil {
		return nil, err
	}
	return NewInteractor(cfg, client)
}

// Configuration returns the bound bot configuration.
func (i *Interactor) Configuration() Configuration {
	return i.cfg
}

// PostContent posts one conversation turn to the Lex runtime and returns the
// raw result. The remote service is invoked exactly once; retries are the
// caller's concern. Any remote failure is reported as ErrRemoteCallFailed.
func (i *Interactor) PostContent(ctx context.Context, req *model.ConversationRequest) (*lexruntimeservice.PostContentOutput, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil conversation request", ErrInvalidArgument)
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	input := &lexruntimeservice.PostContentInput{
		BotAlias:    aws.String(i.cfg.BotAlias),
		BotName:     aws.String(i.cfg.BotName),
		UserId:      aws.String(i.cfg.UserID),
		ContentType: aws.String(req.ContentType),
		Accept:      aws.String(req.AcceptType),
	}
	if len(req.AudioRequest) > 0 {
		input.InputStream = bytes.NewReader(req.AudioRequest)
	} else {
		input.InputStream = strings.NewReader(req.TextRequest)
	}

	out, err := i.client.PostContent(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteCallFailed, err)
	}
	return out, nil
}
