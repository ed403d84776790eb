package core

// error_messages.go turns internal errors into caller-facing messages.
//
// Codes are grouped for support lookups:
//
//	AUTH001-AUTH099  authentication
//	RES001-RES099    missing or inaccessible records
//	VAL001-VAL099    request validation
//	FILE001-FILE099  uploaded CSV files
//	IMP001-IMP099    the import process
//	AI001-AI099      the AI advisor
//	DB001-DB099      database failures
//	ERR000           anything else (check the logs)
//
// A DomainError keeps its own message and gets the code for its kind.
// Known sentinels map through sentinelMessages. Everything else is matched
// case-insensitively against errorPatterns; the first match wins.

import (
	"errors"
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

var kindMessages = []struct {
	kind error
	msg  UserMessage
}{
	{ErrUnauthorized, UserMessage{Action: "Sign in again", Code: "AUTH001"}},
	{ErrNotFound, UserMessage{Action: "Check the identifier and try again", Code: "RES001"}},
	{ErrForbidden, UserMessage{Action: "Ask the household owner for access", Code: "RES002"}},
	{ErrConflict, UserMessage{Action: "Use a different value", Code: "RES003"}},
	{ErrInvalidInput, UserMessage{Action: "Correct the request and try again", Code: "VAL001"}},
	{ErrUpstream, UserMessage{Action: "Please try again later", Code: "AI002"}},
}

var sentinelMessages = []struct {
	err error
	msg UserMessage
}{
	{ErrNotCSV, UserMessage{
		Message: "File must be a CSV",
		Action:  "Export the statement as .csv and upload it again",
		Code:    "FILE001",
	}},
	{ErrFileTooLarge, UserMessage{
		Message: "File exceeds the maximum upload size",
		Action:  "Split the file into smaller chunks",
		Code:    "FILE002",
	}},
	{ErrDecode, UserMessage{
		Message: "Could not decode file. Please use UTF-8 encoding.",
		Action:  "Save the file as UTF-8 (readable encodings: " + strings.Join(SupportedEncodings(), ", ") + ")",
		Code:    "FILE003",
	}},
	{ErrNoColumnsDetected, UserMessage{
		Message: "Could not detect CSV columns",
		Action:  "Make sure the first line holds the column names",
		Code:    "FILE004",
	}},
	{ErrInvalidCSV, UserMessage{
		Message: "CSV parsing error",
		Action:  "Check the file for broken quoting",
		Code:    "FILE005",
	}},
	{ErrTooManyImports, UserMessage{
		Message: "System is busy processing other imports",
		Action:  "Please wait a moment and try again",
		Code:    "IMP001",
	}},
	{ErrAIUnavailable, UserMessage{
		Message: "AI features are not configured. Please set GEMINI_API_KEY.",
		Action:  "Ask the administrator to enable the AI advisor",
		Code:    "AI001",
	}},
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns catches driver and transport errors that carry no sentinel.
// Specific patterns come before general ones.
var errorPatterns = []errorPattern{
	{
		pattern: "duplicate key",
		msg: UserMessage{
			Message: "A record with this value already exists",
			Action:  "Use a different value",
			Code:    "DB001",
		},
	},
	{
		pattern: "violates foreign key",
		msg: UserMessage{
			Message: "Referenced record does not exist",
			Action:  "Check that the category still exists",
			Code:    "DB002",
		},
	},
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to database",
			Action:  "Please try again in a few moments",
			Code:    "DB003",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "Database connection was interrupted",
			Action:  "Please try again",
			Code:    "DB004",
		},
	},
	{
		pattern: "deadlock",
		msg: UserMessage{
			Message: "Database was busy with conflicting operations",
			Action:  "Please try again",
			Code:    "DB005",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "IMP002",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Try a smaller file or try again later",
			Code:    "IMP003",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is the ERR000 fallback.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts an error to the message shown to the caller.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var ue *UserError
	if errors.As(err, &ue) {
		return ue.User
	}

	var de *DomainError
	if errors.As(err, &de) {
		for _, km := range kindMessages {
			if errors.Is(de.Kind, km.kind) {
				msg := km.msg
				msg.Message = de.Msg
				return msg
			}
		}
	}

	for _, sm := range sentinelMessages {
		if errors.Is(err, sm.err) {
			return sm.msg
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError renders "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to something other than ERR000.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError carries a fixed user message alongside the technical cause.
type UserError struct {
	Technical error
	User      UserMessage
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err once and keeps the cause for logging. It returns
// nil for a nil err.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
