package errs

import "errors"

const (
	MessageCredentialNotSet = "configuration error: credential not set"
	MessageMalformedOutput  = "response parsing failure: malformed model output"
	MessageUnknown          = "unknown fact-check failure"
	providerMessagePrefix   = "provider call failure: "
)

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type ValidationError struct {
	ErrorMessage
}

// ConfigurationError means the provider credential is missing.
type ConfigurationError struct {
	ErrorMessage
}

// ParseError covers non-JSON provider output and output missing required fields.
type ParseError struct {
	ErrorMessage
	Err error
}

func (e *ParseError) Unwrap() error { return e.Err }

// ProviderError wraps a network or service failure from the AI provider.
type ProviderError struct {
	ErrorMessage
	Err error
}

func (e *ProviderError) Unwrap() error { return e.Err }

type UnknownError struct {
	ErrorMessage
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewConfigurationError() *ConfigurationError {
	return &ConfigurationError{
		ErrorMessage: ErrorMessage{Message: MessageCredentialNotSet},
	}
}

func NewParseError(cause error) *ParseError {
	return &ParseError{
		ErrorMessage: ErrorMessage{Message: MessageMalformedOutput},
		Err:          cause,
	}
}

func NewProviderError(cause error) *ProviderError {
	msg := "unknown error"
	if cause != nil {
		msg = cause.Error()
	}
	return &ProviderError{
		ErrorMessage: ErrorMessage{Message: providerMessagePrefix + msg},
		Err:          cause,
	}
}

func NewUnknownError() *UnknownError {
	return &UnknownError{
		ErrorMessage: ErrorMessage{Message: MessageUnknown},
	}
}

// Describe returns the human-readable message shown to the user. Errors outside
// the fact-check taxonomy collapse to the generic unknown message.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	switch Code(err) {
	case CodeInternal:
		return MessageUnknown
	default:
		return err.Error()
	}
}

const (
	CodeSuccess       = "success"
	CodeInvalidInput  = "invalid_input"
	CodeConfiguration = "configuration_error"
	CodeParse         = "parse_error"
	CodeProvider      = "provider_error"
	CodeUnknown       = "unknown_error"
	CodeInternal      = "internal_error"
)

// Code classifies err into a stable identifier used for responses and metrics.
func Code(err error) string {
	if err == nil {
		return CodeSuccess
	}

	var (
		validation *ValidationError
		config     *ConfigurationError
		parse      *ParseError
		provider   *ProviderError
		unknown    *UnknownError
	)
	switch {
	case errors.As(err, &validation):
		return CodeInvalidInput
	case errors.As(err, &config):
		return CodeConfiguration
	case errors.As(err, &parse):
		return CodeParse
	case errors.As(err, &provider):
		return CodeProvider
	case errors.As(err, &unknown):
		return CodeUnknown
	default:
		return CodeInternal
	}
}
