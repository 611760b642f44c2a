package remotex_test

import (
	"errors"
	"testing"

	"github.com/PaackEng/paack-remotedata/pkg/remotex"
)

// --- ErrorKind tests ---

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind remotex.ErrorKind
		want string
	}{
		{remotex.ErrorKindTransport, "transport"},
		{remotex.ErrorKindCustom, "custom"},
		{remotex.ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

// --- Error tests ---

func TestTransportError_Variant(t *testing.T) {
	e := remotex.TransportError[string, int]("timeout")

	if e.Kind() != remotex.ErrorKindTransport {
		t.Fatalf("expected transport kind, got %s", e.Kind())
	}
	if !e.IsTransport() || e.IsCustom() {
		t.Fatal("predicates disagree with the transport variant")
	}

	cause, ok := e.Transport()
	if !ok || cause != "timeout" {
		t.Fatalf("Transport() = (%q, %v), want (\"timeout\", true)", cause, ok)
	}
	if c, ok := e.Custom(); ok || c != 0 {
		t.Fatalf("Custom() on a transport error = (%d, %v), want (0, false)", c, ok)
	}
}

func TestCustomError_Variant(t *testing.T) {
	e := remotex.CustomError[string, int](404)

	if e.Kind() != remotex.ErrorKindCustom {
		t.Fatalf("expected custom kind, got %s", e.Kind())
	}
	if !e.IsCustom() || e.IsTransport() {
		t.Fatal("predicates disagree with the custom variant")
	}

	cause, ok := e.Custom()
	if !ok || cause != 404 {
		t.Fatalf("Custom() = (%d, %v), want (404, true)", cause, ok)
	}
	if tr, ok := e.Transport(); ok || tr != "" {
		t.Fatalf("Transport() on a custom error = (%q, %v), want (\"\", false)", tr, ok)
	}
}

func TestError_ErrorString(t *testing.T) {
	tr := remotex.TransportError[string, string]("connection refused")
	if got := tr.Error(); got != "transport: connection refused" {
		t.Errorf("transport Error() = %q", got)
	}

	cu := remotex.CustomError[string, string]("quota exceeded")
	if got := cu.Error(); got != "custom: quota exceeded" {
		t.Errorf("custom Error() = %q", got)
	}
}

func TestError_SatisfiesBuiltinError(t *testing.T) {
	var err error = remotex.TransportError[error, string](errors.New("dial tcp: timeout"))
	if err.Error() != "transport: dial tcp: timeout" {
		t.Fatalf("unexpected rendering: %q", err.Error())
	}
}
