package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// OutputFormatter prints command results as JSON, as a bare id (quiet), or
// for a terminal. Quiet wins over JSON.
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// IDGetter is implemented by results that have a single id to print in quiet mode
type IDGetter interface {
	GetID() string
}

// HumanReadable is implemented by results that render themselves for a terminal
type HumanReadable interface {
	Human() string
}

type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w io.Writer, v envelope) error {
	return json.NewEncoder(w).Encode(v)
}

// Success prints a command result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if g, ok := data.(IDGetter); ok {
			_, err := fmt.Fprintln(os.Stdout, g.GetID())
			return err
		}
	}
	if f.JSON {
		return writeJSON(os.Stdout, envelope{Success: true, Data: data})
	}
	if h, ok := data.(HumanReadable); ok {
		_, err := fmt.Fprintln(os.Stdout, h.Human())
		return err
	}
	_, err := fmt.Fprintf(os.Stdout, "%+v\n", data)
	return err
}

// Fail reports err in the selected mode and returns it unchanged, so a
// command can end with `return formatter.Fail(err)`
func (f *OutputFormatter) Fail(err error) error {
	if err == nil {
		return nil
	}
	if werr := f.ErrorWithSuggestion(ErrorCode(err), err.Error(), Suggestion(err)); werr != nil {
		slog.Warn("failed to print error", "error", werr)
	}
	return err
}

// Error prints an error without a suggestion
func (f *OutputFormatter) Error(code, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion prints an error. JSON goes to stdout so agents read a
// single stream; human output goes to stderr.
func (f *OutputFormatter) ErrorWithSuggestion(code, message, suggestion string) error {
	if f.JSON {
		return writeJSON(os.Stdout, envelope{Error: &errorBody{Code: code, Message: message, Suggestion: suggestion}})
	}
	if _, err := fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message); err != nil {
		return err
	}
	if suggestion != "" {
		_, err := fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
		return err
	}
	return nil
}
