package logging

import (
	"context"
	"fmt"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/pmatra/Lambda-How-to-send-SMS/constants"
	log "github.com/sirupsen/logrus"
	"strings"
)

func Setup(level, format string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "json":
		log.SetFormatter(&log.JSONFormatter{
			TimestampFormat: constants.TimestampFormat,
		})
	case "", "text":
		log.SetFormatter(&log.TextFormatter{
			TimestampFormat: constants.TimestampFormat,
			FullTimestamp:   true,
		})
	default:
		return fmt.Errorf("invalid log format %q", format)
	}

	return nil
}

// FromContext returns an entry tagged with the Lambda request id and
// function name, when ctx carries them.
func FromContext(ctx context.Context) *log.Entry {
	entry := log.NewEntry(log.StandardLogger())
	if ctx == nil {
		return entry
	}

	if lc, ok := lambdacontext.FromContext(ctx); ok {
		entry = entry.WithField("aws_request_id", lc.AwsRequestID)
	}
	if lambdacontext.FunctionName != "" {
		entry = entry.WithField("function", lambdacontext.FunctionName)
	}

	return entry
}
