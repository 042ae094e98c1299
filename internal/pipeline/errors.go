package pipeline

import (
	"context"
	"errors"

	"github.com/theirongolddev/tripbook/internal/contract"
	"github.com/theirongolddev/tripbook/internal/gemini"
	"github.com/theirongolddev/tripbook/internal/source"
)

// ErrorKind groups failures by how the user should respond to them.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindFileDecode
	KindMalformedResponse
	KindExternalCall
	KindTimeout
	KindCanceled
	KindEmptyInput
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindFileDecode:
		return "file_decode"
	case KindMalformedResponse:
		return "malformed_response"
	case KindExternalCall:
		return "external_call"
	case KindTimeout:
		return "timeout"
	case KindCanceled:
		return "canceled"
	case KindEmptyInput:
		return "empty_input"
	default:
		return "unknown"
	}
}

// Classify maps err onto an ErrorKind.
func Classify(err error) ErrorKind {
	var decErr *source.FileDecodeError
	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &decErr):
		return KindFileDecode
	case errors.Is(err, ErrEmptyInput):
		return KindEmptyInput
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, contract.ErrMalformedResponse):
		return KindMalformedResponse
	case errors.Is(err, gemini.ErrExternalCall):
		return KindExternalCall
	default:
		return KindUnknown
	}
}

// UserMessage returns a short message suitable for the input screen.
// Every message describes a condition the user can retry from.
func UserMessage(err error) string {
	switch Classify(err) {
	case KindNone:
		return ""
	case KindFileDecode:
		var decErr *source.FileDecodeError
		if errors.As(err, &decErr) && errors.Is(err, source.ErrUnsupportedFormat) {
			return "Unsupported file type. Please upload a .csv, .xlsx or .xls file."
		}
		return "Failed to read file. Please check the format and try again."
	case KindEmptyInput:
		return "Please upload a file or paste itinerary data first."
	case KindTimeout:
		return "Generating the booklet took too long. Please try again."
	case KindCanceled:
		return "Generation canceled."
	case KindExternalCall:
		if errors.Is(err, gemini.ErrUnauthorized) {
			return "The interpretation service rejected the API key. Run `tripbook setup` to configure it."
		}
		if errors.Is(err, gemini.ErrRateLimited) {
			return "The interpretation service is busy. Please wait a moment and try again."
		}
		return "Failed to parse itinerary. Please check your input and try again."
	default:
		return "Failed to parse itinerary. Please check your input and try again."
	}
}
