package main

import (
	"context"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/pmatra/Lambda-How-to-send-SMS/internal/app"
	"github.com/pmatra/Lambda-How-to-send-SMS/internal/config"
	"github.com/pmatra/Lambda-How-to-send-SMS/internal/logging"
	log "github.com/sirupsen/logrus"
)

func HandleLambdaEvent(ctx context.Context, event events.SNSEvent) (app.Response, error) {
	return app.NewFormatter(ctx, event).Handle()
}

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatal(err)
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatal(err)
	}

	lambda.Start(HandleLambdaEvent)
}
