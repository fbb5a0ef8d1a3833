package main

import (
	"context"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/pmatra/Lambda-How-to-send-SMS/internal/app"
	"github.com/pmatra/Lambda-How-to-send-SMS/internal/config"
	"github.com/pmatra/Lambda-How-to-send-SMS/internal/logging"
	"github.com/pmatra/Lambda-How-to-send-SMS/internal/messaging"
	log "github.com/sirupsen/logrus"
)

type handler struct {
	sender messaging.Sender
}

func (h *handler) HandleLambdaEvent(ctx context.Context, event events.SNSEvent) error {
	return app.NewResponder(ctx, event, h.sender).Handle()
}

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatal(err)
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatal(err)
	}

	sender, err := messaging.Shared(context.Background(), cfg.Messaging)
	if err != nil {
		log.Fatal(err)
	}

	h := &handler{sender: sender}
	lambda.Start(h.HandleLambdaEvent)
}
