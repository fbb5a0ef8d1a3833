package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/aws/aws-lambda-go/events"
)

const (
	keyOriginationNumber = "originationNumber"
	keyMessageBody       = "messageBody"
)

var (
	ErrNoRecords        = errors.New("sns event contains no records")
	ErrMalformedMessage = errors.New("malformed embedded message")
	ErrMissingKey       = errors.New("missing key in embedded message")
)

type EmbeddedMessage struct {
	OriginationNumber string
	MessageBody       string
}

// ParseEmbeddedMessage decodes the message of the first record. Keys are
// matched exactly, case included.
func ParseEmbeddedMessage(event events.SNSEvent) (EmbeddedMessage, error) {
	if len(event.Records) == 0 {
		return EmbeddedMessage{}, ErrNoRecords
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal([]byte(event.Records[0].SNS.Message), &fields); err != nil {
		return EmbeddedMessage{}, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}

	number, err := lookupString(fields, keyOriginationNumber)
	if err != nil {
		return EmbeddedMessage{}, err
	}

	body, err := lookupString(fields, keyMessageBody)
	if err != nil {
		return EmbeddedMessage{}, err
	}

	return EmbeddedMessage{
		OriginationNumber: number,
		MessageBody:       body,
	}, nil
}

func lookupString(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return "", fmt.Errorf("%w: %q", ErrMissingKey, key)
	}

	var val string
	if err := json.Unmarshal(raw, &val); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrMalformedMessage, key, err)
	}

	return val, nil
}
