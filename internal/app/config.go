package app

import (
	"context"
	"github.com/aws/aws-lambda-go/events"
	"github.com/pmatra/Lambda-How-to-send-SMS/internal/logging"
	"github.com/pmatra/Lambda-How-to-send-SMS/internal/messaging"
	log "github.com/sirupsen/logrus"
)

type Formatter interface {
	Handle() (Response, error)
}

type Responder interface {
	Handle() error
}

// invocation is the per-event state shared by both handlers. It lives for a
// single Lambda invocation.
type invocation struct {
	ctx    context.Context
	event  events.SNSEvent
	logger *log.Entry
}

type formatter struct {
	invocation
}

type responder struct {
	invocation
	sender messaging.Sender
}

func newInvocation(ctx context.Context, event events.SNSEvent) invocation {
	return invocation{
		ctx:    ctx,
		event:  event,
		logger: logging.FromContext(ctx),
	}
}

func NewFormatter(ctx context.Context, event events.SNSEvent) Formatter {
	return &formatter{
		invocation: newInvocation(ctx, event),
	}
}

func NewResponder(ctx context.Context, event events.SNSEvent, sender messaging.Sender) Responder {
	return &responder{
		invocation: newInvocation(ctx, event),
		sender:     sender,
	}
}
