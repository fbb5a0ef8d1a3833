package messaging

import (
	"context"
	"errors"
	"fmt"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/pinpoint"
	pinpointtypes "github.com/aws/aws-sdk-go-v2/service/pinpoint/types"
	"github.com/google/uuid"
	"github.com/pmatra/Lambda-How-to-send-SMS/constants"
	"github.com/pmatra/Lambda-How-to-send-SMS/internal/config"
	"github.com/pmatra/Lambda-How-to-send-SMS/internal/logging"
	log "github.com/sirupsen/logrus"
	"sync"
)

var ErrSendFailed = errors.New("pinpoint send failed")

type SMS struct {
	To   string
	Body string
}

type Sender interface {
	SendSMS(ctx context.Context, sms SMS) (string, error)
}

type PinpointAPI interface {
	SendMessages(ctx context.Context, params *pinpoint.SendMessagesInput, optFns ...func(*pinpoint.Options)) (*pinpoint.SendMessagesOutput, error)
}

// PinpointSender is safe for concurrent use.
type PinpointSender struct {
	api           PinpointAPI
	applicationID string
}

var (
	sharedOnce   sync.Once
	sharedSender *PinpointSender
	sharedErr    error
)

// Shared returns the process-wide sender, building it on first use. Later
// calls return the same sender (or error) regardless of their arguments.
func Shared(ctx context.Context, cfg config.Messaging) (*PinpointSender, error) {
	sharedOnce.Do(func() {
		sharedSender, sharedErr = NewPinpointSender(ctx, cfg)
	})
	return sharedSender, sharedErr
}

func NewPinpointSender(ctx context.Context, cfg config.Messaging) (*PinpointSender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := pinpoint.NewFromConfig(awsCfg, func(o *pinpoint.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
		}
	})

	return NewPinpointSenderWithAPI(client, cfg.ApplicationID), nil
}

func NewPinpointSenderWithAPI(api PinpointAPI, applicationID string) *PinpointSender {
	return &PinpointSender{
		api:           api,
		applicationID: applicationID,
	}
}

// SendSMS issues a single SendMessages request addressed to sms.To. It does
// not retry. The returned id is Pinpoint's message id for the address, if
// any.
func (p *PinpointSender) SendSMS(ctx context.Context, sms SMS) (string, error) {
	input := &pinpoint.SendMessagesInput{
		ApplicationId: aws.String(p.applicationID),
		MessageRequest: &pinpointtypes.MessageRequest{
			Addresses: map[string]pinpointtypes.AddressConfiguration{
				sms.To: {ChannelType: pinpointtypes.ChannelType(constants.ChannelType)},
			},
			MessageConfiguration: &pinpointtypes.DirectMessageConfiguration{
				SMSMessage: &pinpointtypes.SMSMessage{
					Body:        aws.String(sms.Body),
					MessageType: pinpointtypes.MessageType(constants.MessageType),
				},
			},
			TraceId: aws.String(traceID(ctx)),
		},
	}

	out, err := p.api.SendMessages(ctx, input)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	if out == nil || out.MessageResponse == nil {
		return "", nil
	}

	result, ok := out.MessageResponse.Result[sms.To]
	if !ok {
		return "", nil
	}

	entry := logging.FromContext(ctx).WithFields(log.Fields{
		"delivery_status": result.DeliveryStatus,
		"status_code":     aws.ToInt32(result.StatusCode),
	})
	if result.DeliveryStatus != pinpointtypes.DeliveryStatusSuccessful {
		entry.WithField("status_message", aws.ToString(result.StatusMessage)).Warn("Pinpoint did not accept message for address")
	} else {
		entry.Debug("Pinpoint accepted message")
	}

	return aws.ToString(result.MessageId), nil
}

func traceID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.NewString()
}
