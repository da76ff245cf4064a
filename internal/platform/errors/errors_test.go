package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorMessageIncludesCause(t *testing.T) {
	err := WrapWithMetadata(CodeWrite, "write fr.json", nil, fs.ErrPermission)
	if got := err.Error(); got != "write fr.json: permission denied" {
		t.Fatalf("unexpected message %q", got)
	}
	if !stderrors.Is(err, fs.ErrPermission) {
		t.Fatal("expected cause to be reachable through Unwrap")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("patch: %w", New(CodeParse, "bad json"))
	if !stderrors.Is(err, New(CodeParse, "")) {
		t.Fatal("expected errors.Is to match by code")
	}
	if stderrors.Is(err, New(CodeWrite, "")) {
		t.Fatal("expected different codes not to match")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{name: "domain", err: New(CodeNotFound, "missing"), want: CodeNotFound},
		{name: "wrapped", err: fmt.Errorf("fr.json: %w", New(CodeNotObject, "profile")), want: CodeNotObject},
		{name: "plain", err: stderrors.New("boom"), want: CodeUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := GetCode(tc.err); got != tc.want {
				t.Fatalf("GetCode = %q, want %q", got, tc.want)
			}
			if !IsCode(tc.err, tc.want) {
				t.Fatalf("IsCode(%q) = false", tc.want)
			}
		})
	}
}

func TestGetMetadata(t *testing.T) {
	err := WithMetadata(CodeNotFound, "missing", map[string]string{"Path": "en.json"})
	if got := GetMetadata(err)["Path"]; got != "en.json" {
		t.Fatalf("expected path metadata, got %q", got)
	}
	if GetMetadata(stderrors.New("plain")) != nil {
		t.Fatal("expected nil metadata for plain error")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: nil, want: ExitOK},
		{err: New(CodeNotFound, ""), want: ExitNotFound},
		{err: New(CodeParse, ""), want: ExitInvalid},
		{err: New(CodeNotObject, ""), want: ExitInvalid},
		{err: New(CodeRead, ""), want: ExitIO},
		{err: New(CodeWrite, ""), want: ExitIO},
		{err: stderrors.New("boom"), want: ExitUnknown},
	}
	for _, tc := range tests {
		if got := ExitCode(tc.err); got != tc.want {
			t.Fatalf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestUserMessage(t *testing.T) {
	err := WrapWithMetadata(CodeParse, "parse", map[string]string{"Path": "fr.json"}, stderrors.New("eof"))
	if got := UserMessage(err, ""); got != "translation file fr.json is not valid JSON" {
		t.Fatalf("unexpected default message %q", got)
	}
	if got := UserMessage(err, "fr"); got != "le fichier de traduction fr.json n'est pas un JSON valide" {
		t.Fatalf("unexpected french message %q", got)
	}
	if got := UserMessage(stderrors.New("boom"), "en-US"); got != "boom" {
		t.Fatalf("expected plain error text, got %q", got)
	}
	if got := UserMessage(nil, "en-US"); got != "" {
		t.Fatalf("expected empty message for nil, got %q", got)
	}
}
