package lex

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimeservice"

	"github.com/voicebotics/lex-bridge/internal/model"
)

// DecodeResponse converts a raw PostContent result into the local response.
// The decode is all-or-nothing: resp is written only after every field has
// decoded, so on failure resp is left exactly as the caller passed it in.
// Absent result fields map to empty values, never to errors.
func DecodeResponse(out *lexruntimeservice.PostContentOutput, resp *model.ConversationResponse) error {
	if out == nil || resp == nil {
		return fmt.Errorf("%w: nil result or response", ErrInvalidArgument)
	}

	var decoded model.ConversationResponse
	decoded.TextResponse = aws.ToString(out.Message)
	decoded.IntentName = aws.ToString(out.IntentName)
	decoded.MessageFormatType = string(out.MessageFormat)
	decoded.DialogState = string(out.DialogState)
	decoded.SlotToElicit = aws.ToString(out.SlotToElicit)

	if out.AudioStream != nil {
		audio, err := io.ReadAll(out.AudioStream)
		if err != nil {
			return fmt.Errorf("%w: reading audio stream: %v", ErrDecodeFailure, err)
		}
		decoded.AudioResponse = audio
	}

	slots, err := DecodeSlots(aws.ToString(out.Slots))
	if err != nil {
		return err
	}
	decoded.Slots = slots

	*resp = decoded
	return nil
}

// DecodeSlots decodes the doubly-encoded slot payload: base64 text wrapping
// a JSON object with string values. Slots keep the order their keys appear
// in the document. An empty payload yields no slots.
func DecodeSlots(encoded string) ([]model.Slot, error) {
	if encoded == "" {
		return nil, nil
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: slot payload is not valid base64: %v", ErrDecodeFailure, err)
	}

	// encoding/json unmarshals objects into maps, which lose key order.
	// Walk the tokens instead so slots come out in document order.
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: slot payload is not valid JSON: %v", ErrDecodeFailure, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: slot payload is not a JSON object", ErrDecodeFailure)
	}

	var slots []model.Slot
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: reading slot key: %v", ErrDecodeFailure, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: slot key is not a string", ErrDecodeFailure)
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: slot %q value is not a string: %v", ErrDecodeFailure, key, err)
		}
		slots = append(slots, model.Slot{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: slot payload is truncated: %v", ErrDecodeFailure, err)
	}
	return slots, nil
}
