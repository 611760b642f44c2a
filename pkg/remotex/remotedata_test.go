package remotex_test

import (
	"strconv"
	"testing"

	"github.com/PaackEng/paack-remotedata/pkg/remotex"
)

// --- Status tests ---

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status remotex.Status
		want   string
	}{
		{remotex.StatusNotAsked, "not_asked"},
		{remotex.StatusLoading, "loading"},
		{remotex.StatusFailure, "failure"},
		{remotex.StatusSuccess, "success"},
		{remotex.Status(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

// --- Constructor tests ---

func TestData_ZeroValueIsNotAsked(t *testing.T) {
	var d remotex.Data[string, string, int]
	if d != remotex.NotAsked[string, string, int]() {
		t.Fatal("zero value differs from NotAsked()")
	}
	if !d.IsNotAsked() {
		t.Fatal("zero value does not report NotAsked")
	}
}

func TestDataFromResponse(t *testing.T) {
	ok := remotex.DataFromResponse(remotex.Success[string, string](42))
	if !ok.IsSuccess() {
		t.Fatalf("success response mapped to %s", ok.Status())
	}
	if v, _ := ok.Value(); v != 42 {
		t.Fatalf("Value() = %d, want 42", v)
	}

	fail := remotex.DataFromResponse(remotex.TransportFailure[string, string, int]("timeout"))
	if !fail.IsError() {
		t.Fatalf("failed response mapped to %s", fail.Status())
	}
	if e, _ := fail.Err(); !e.IsTransport() {
		t.Fatal("failure lost its error classification")
	}
}

// --- Predicate tests ---

func TestData_Predicates(t *testing.T) {
	tests := []struct {
		name        string
		d           remotex.Data[string, string, int]
		notAsked    bool
		loading     bool
		success     bool
		isError     bool
		isTransport bool
		isCustom    bool
	}{
		{"not asked", remotex.NotAsked[string, string, int](), true, false, false, false, false, false},
		{"loading", remotex.Loading[string, string, int](), false, true, false, false, false, false},
		{"transport failure", remotex.DataFromResponse(remotex.TransportFailure[string, string, int]("t")), false, false, false, true, true, false},
		{"custom failure", remotex.DataFromResponse(remotex.CustomFailure[string, string, int]("c")), false, false, false, true, false, true},
		{"success", remotex.DataFromResponse(remotex.Success[string, string](1)), false, false, true, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.IsNotAsked(); got != tt.notAsked {
				t.Errorf("IsNotAsked() = %v, want %v", got, tt.notAsked)
			}
			if got := tt.d.IsLoading(); got != tt.loading {
				t.Errorf("IsLoading() = %v, want %v", got, tt.loading)
			}
			if got := tt.d.IsSuccess(); got != tt.success {
				t.Errorf("IsSuccess() = %v, want %v", got, tt.success)
			}
			if got := tt.d.IsError(); got != tt.isError {
				t.Errorf("IsError() = %v, want %v", got, tt.isError)
			}
			if got := tt.d.IsTransportError(); got != tt.isTransport {
				t.Errorf("IsTransportError() = %v, want %v", got, tt.isTransport)
			}
			if got := tt.d.IsCustomError(); got != tt.isCustom {
				t.Errorf("IsCustomError() = %v, want %v", got, tt.isCustom)
			}
			// IsError is the union of the two sub-kind predicates.
			if tt.d.IsError() != (tt.d.IsTransportError() || tt.d.IsCustomError()) {
				t.Error("IsError disagrees with the union of its sub-kinds")
			}
		})
	}
}

// --- Projection tests ---

func TestData_Projections(t *testing.T) {
	success := remotex.DataFromResponse(remotex.Success[string, string](7))
	if v, ok := success.Value(); !ok || v != 7 {
		t.Fatalf("Value() on success = (%d, %v)", v, ok)
	}
	if got := success.WithDefault(0); got != 7 {
		t.Fatalf("WithDefault() on success = %d", got)
	}

	for _, d := range []remotex.Data[string, string, int]{
		remotex.NotAsked[string, string, int](),
		remotex.Loading[string, string, int](),
		remotex.DataFromResponse(remotex.CustomFailure[string, string, int]("c")),
	} {
		if _, ok := d.Value(); ok {
			t.Errorf("Value() reports a value in state %s", d.Status())
		}
		if got := d.WithDefault(-1); got != -1 {
			t.Errorf("WithDefault() in state %s = %d, want -1", d.Status(), got)
		}
	}

	if _, ok := remotex.Loading[string, string, int]().Err(); ok {
		t.Fatal("Err() reports an error while loading")
	}
	fail := remotex.DataFromResponse(remotex.CustomFailure[string, string, int]("denied"))
	if e, ok := fail.Err(); !ok || !e.IsCustom() {
		t.Fatal("Err() on failure did not return the custom error")
	}
}

// --- Transformation tests ---

func TestMapData_AllStates(t *testing.T) {
	render := strconv.Itoa

	tests := []struct {
		name       string
		in         remotex.Data[string, string, int]
		wantStatus remotex.Status
		wantValue  string
	}{
		{"not asked", remotex.NotAsked[string, string, int](), remotex.StatusNotAsked, ""},
		{"loading", remotex.Loading[string, string, int](), remotex.StatusLoading, ""},
		{"failure", remotex.DataFromResponse(remotex.TransportFailure[string, string, int]("t")), remotex.StatusFailure, ""},
		{"success", remotex.DataFromResponse(remotex.Success[string, string](42)), remotex.StatusSuccess, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := remotex.MapData(tt.in, render)
			if got.Status() != tt.wantStatus {
				t.Fatalf("status = %s, want %s", got.Status(), tt.wantStatus)
			}
			if v, _ := got.Value(); v != tt.wantValue {
				t.Fatalf("value = %q, want %q", v, tt.wantValue)
			}
		})
	}
}

func TestMapDataErrorAxes(t *testing.T) {
	wrap := func(s string) string { return "[" + s + "]" }

	transport := remotex.DataFromResponse(remotex.TransportFailure[string, string, int]("timeout"))
	custom := remotex.DataFromResponse(remotex.CustomFailure[string, string, int]("denied"))

	e, _ := remotex.MapDataTransport(transport, wrap).Err()
	if cause, _ := e.Transport(); cause != "[timeout]" {
		t.Errorf("transport axis not mapped, cause = %q", cause)
	}
	e, _ = remotex.MapDataTransport(custom, wrap).Err()
	if cause, _ := e.Custom(); cause != "denied" {
		t.Errorf("custom payload changed by the transport map, cause = %q", cause)
	}

	e, _ = remotex.MapDataCustom(custom, wrap).Err()
	if cause, _ := e.Custom(); cause != "[denied]" {
		t.Errorf("custom axis not mapped, cause = %q", cause)
	}

	swap := func(err remotex.Error[string, string]) remotex.Error[string, string] {
		if cause, ok := err.Transport(); ok {
			return remotex.CustomError[string, string](cause)
		}
		return err
	}
	if got := remotex.MapDataErrors(transport, swap); !got.IsCustomError() {
		t.Error("MapDataErrors did not reclassify the failure")
	}
	if got := remotex.MapDataErrors(remotex.Loading[string, string, int](), swap); !got.IsLoading() {
		t.Error("MapDataErrors touched a loading state")
	}
}

func TestCollapseData(t *testing.T) {
	tests := []struct {
		name string
		d    remotex.Data[string, string, string]
		want string
	}{
		{"not asked", remotex.NotAsked[string, string, string](), "fallback"},
		{"loading", remotex.Loading[string, string, string](), "fallback"},
		{"transport failure", remotex.DataFromResponse(remotex.TransportFailure[string, string, string]("timeout")), "timeout"},
		{"custom failure", remotex.DataFromResponse(remotex.CustomFailure[string, string, string]("denied")), "denied"},
		{"success", remotex.DataFromResponse(remotex.Success[string, string]("value")), "value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := remotex.CollapseData(tt.d, "fallback"); got != tt.want {
				t.Errorf("CollapseData() = %q, want %q", got, tt.want)
			}
		})
	}
}
