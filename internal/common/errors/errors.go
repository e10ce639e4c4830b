// Package errors provides the standardized error taxonomy for the
// fetch/generate pipeline.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeURLMissing    ErrorCode = "URL_MISSING"
	ErrCodeURLInvalid    ErrorCode = "URL_INVALID"
	ErrCodeRequestFailed ErrorCode = "REQUEST_FAILED"
	ErrCodeBatchFailed   ErrorCode = "BATCH_FAILED"
	ErrCodeSchemaInvalid ErrorCode = "SCHEMA_INVALID"
	ErrCodeCompileFailed ErrorCode = "COMPILE_FAILED"
	ErrCodeInternal      ErrorCode = "INTERNAL"
)

// User-visible messages. These exact strings are part of the CLI contract;
// everything richer belongs in the structured log.
const (
	MsgURLMissing    = "Url not specified"
	MsgURLInvalid    = "Invalid URL format"
	MsgRequestFailed = "Request failed"
	MsgBatchFailed   = "Some requests failed"
	MsgSchemaError   = "Schema error"
)

// PipelineError is the standard error carried out of the pipeline. Message is
// the string shown to the user; Err holds the underlying cause for logs.
type PipelineError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	return e.Message
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func NewRequestFailedError(err error) *PipelineError {
	return &PipelineError{Code: ErrCodeRequestFailed, Message: MsgRequestFailed, Err: err}
}

func NewBatchFailedError(err error) *PipelineError {
	return &PipelineError{Code: ErrCodeBatchFailed, Message: MsgBatchFailed, Err: err}
}

func NewSchemaError(err error) *PipelineError {
	return &PipelineError{Code: ErrCodeSchemaInvalid, Message: MsgSchemaError, Err: err}
}

func NewCompileFailedError(name string, err error) *PipelineError {
	return &PipelineError{
		Code:    ErrCodeCompileFailed,
		Message: fmt.Sprintf("compile %s: %v", name, err),
		Err:     err,
	}
}

// UserMessage maps any error to the string printed on stderr. Pipeline errors
// carry their fixed message; everything else is printed raw.
func UserMessage(err error) string {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Message
	}
	return err.Error()
}

// CodeOf extracts the error code, or ErrCodeInternal for foreign errors.
func CodeOf(err error) ErrorCode {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ErrCodeInternal
}
