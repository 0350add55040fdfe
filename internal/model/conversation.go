// Package model defines the local conversation message types carried over
// the bridge's NATS and HTTP transports.
package model

// Slot is one named piece of information the conversational engine has
// extracted from the dialog (a date, a quantity, ...).
type Slot struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ConversationRequest is one conversation turn from the local caller.
// TextRequest and AudioRequest are alternatives; ContentType says which one
// carries the input and AcceptType says how the reply should come back.
type ConversationRequest struct {
	ContentType  string `json:"content_type"`
	AcceptType   string `json:"accept_type"`
	TextRequest  string `json:"text_request,omitempty"`
	AudioRequest []byte `json:"audio_request,omitempty"`
}

// ConversationResponse is the decoded reply for one conversation turn.
// A non-default response is only ever produced by a successful call; every
// failure path leaves the response exactly as the caller constructed it.
type ConversationResponse struct {
	TextResponse      string `json:"text_response"`
	AudioResponse     []byte `json:"audio_response,omitempty"`
	Slots             []Slot `json:"slots,omitempty"`
	IntentName        string `json:"intent_name"`
	MessageFormatType string `json:"message_format_type"`
	DialogState       string `json:"dialog_state"`
	SlotToElicit      string `json:"slot_to_elicit,omitempty"`
}
