package lex

import (
	"fmt"

	"github.com/voicebotics/lex-bridge/internal/params"
)

// Parameter keys read by the bridge. The aws_client_configuration keys are
// passed through to the AWS client untouched.
const (
	UserIDKey     = "lex_configuration.user_id"
	BotNameKey    = "lex_configuration.bot_name"
	BotAliasKey   = "lex_configuration.bot_alias"
	AcceptTypeKey = "lex_configuration.accept_type"
)

// ContentType selects how bot replies should be delivered.
type ContentType string

const (
	ContentTypeText  ContentType = "text"
	ContentTypeAudio ContentType = "audio"
)

// Configuration identifies the bot and conversation session. It is built
// once at startup and immutable afterwards; the (UserID, BotName, BotAlias)
// triple keys the remote conversation session.
type Configuration struct {
	UserID     string
	BotName    string
	BotAlias   string
	AcceptType ContentType
}

// Validate checks that the configuration can identify a session. All three
// identity fields are required.
func (c Configuration) Validate() error {
	if c.UserID == "" || c.BotName == "" || c.BotAlias == "" {
		return fmt.Errorf("%w: user_id, bot_name and bot_alias must all be set", ErrInvalidConfiguration)
	}
	switch c.AcceptType {
	case ContentTypeText, ContentTypeAudio:
	default:
		return fmt.Errorf("%w: accept_type must be %q or %q, got %q",
			ErrInvalidConfiguration, ContentTypeText, ContentTypeAudio, c.AcceptType)
	}
	return nil
}

// LoadConfiguration reads the bot configuration from the parameter source
// and validates it. The accept type defaults to text when absent.
func LoadConfiguration(p params.Reader) (Configuration, error) {
	var cfg Configuration
	cfg.UserID, _ = p.ReadString(UserIDKey)
	cfg.BotName, _ = p.ReadString(BotNameKey)
	cfg.BotAlias, _ = p.ReadString(BotAliasKey)

	cfg.AcceptType = ContentTypeText
	if v, ok := p.ReadString(AcceptTypeKey); ok {
		cfg.AcceptType = ContentType(v)
	}

	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}
