package constants

const (
	ReplyTemplate = "Phone number: %s\nMessage Text: %s"
	StatusOK      = 200

	ChannelType = "SMS"
	MessageType = "PROMOTIONAL"

	ConfigFileEnv     = "SMS_CONFIG_FILE"
	DefaultConfigFile = "config.yaml"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
	TimestampFormat   = "02-01-2006 15:04:05"
)
