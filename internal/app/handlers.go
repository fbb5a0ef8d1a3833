package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/pmatra/Lambda-How-to-send-SMS/constants"
	"github.com/pmatra/Lambda-How-to-send-SMS/internal/messaging"
	log "github.com/sirupsen/logrus"
	"strings"
	"unicode/utf16"
)

type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// FormatReply renders the two-line reply text and returns it as a JSON
// string. Output is pure ASCII: non-ASCII runes are written as \uXXXX
// escapes, with surrogate pairs above U+FFFF.
func FormatReply(message EmbeddedMessage) (string, error) {
	text := fmt.Sprintf(constants.ReplyTemplate, message.OriginationNumber, message.MessageBody)

	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(text); err != nil {
		return "", err
	}

	return escapeNonASCII(string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))), nil
}

func escapeNonASCII(s string) string {
	b := strings.Builder{}
	for _, r := range s {
		switch {
		case r < 0x80:
			b.WriteRune(r)
		case r > 0xFFFF:
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&b, "\\u%04x\\u%04x", r1, r2)
		default:
			fmt.Fprintf(&b, "\\u%04x", r)
		}
	}
	return b.String()
}

func (f *formatter) Handle() (Response, error) {
	message, err := ParseEmbeddedMessage(f.event)
	if err != nil {
		f.logger.WithError(err).Error("Failed to parse SNS event")
		return Response{}, err
	}

	body, err := FormatReply(message)
	if err != nil {
		f.logger.WithError(err).Error("Failed to encode reply")
		return Response{}, err
	}

	f.logger.WithField("origination_number", message.OriginationNumber).Info("Formatted inbound SMS")
	return Response{StatusCode: constants.StatusOK, Body: body}, nil
}

func (r *responder) Handle() error {
	message, err := ParseEmbeddedMessage(r.event)
	if err != nil {
		r.logger.WithError(err).Error("Failed to parse SNS event")
		return err
	}

	logger := r.logger.WithField("origination_number", message.OriginationNumber)

	messageID, err := r.sender.SendSMS(r.ctx, messaging.SMS{
		To:   message.OriginationNumber,
		Body: message.MessageBody,
	})
	if err != nil {
		logger.WithError(err).Error("Failed to relay SMS")
		return err
	}

	logger.WithFields(log.Fields{"message_id": messageID}).Info("Relayed SMS to sender")
	return nil
}
