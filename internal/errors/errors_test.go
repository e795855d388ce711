package errors

import (
	"errors"
	"testing"
)

func TestWrap_PreservesSentinelChain(t *testing.T) {
	sentinel := errors.New("underlying condition")

	wrapped := Wrap(sentinel, "loading failed")
	if !errors.Is(wrapped, sentinel) {
		t.Error("Wrap must keep the original error reachable via errors.Is")
	}

	twice := Wrapf(wrapped, "run %s failed", "abc")
	if !errors.Is(twice, sentinel) {
		t.Error("nested wrapping must keep the original error reachable")
	}
}

func TestWrap_NilPassthrough(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("wrapping nil must return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("wrapping nil must return nil")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(ConfigInvalid("bad value")); got != CodeConfigInvalid {
		t.Errorf("expected %s, got %s", CodeConfigInvalid, got)
	}
	if got := GetCode(errors.New("plain")); got != "UNKNOWN" {
		t.Errorf("expected UNKNOWN, got %s", got)
	}

	// Wrap keeps the code of an already coded error
	err := Wrap(RenderFailed("age3", errors.New("disk full")), "run aborted")
	if got := GetCode(err); got != CodeRenderFailed {
		t.Errorf("expected %s, got %s", CodeRenderFailed, got)
	}
}

func TestRenderFailed_MessageAndCause(t *testing.T) {
	cause := errors.New("disk full")
	err := RenderFailed("age3", cause)

	if err.Error() != "chart age3 failed: disk full" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("cause must be reachable via errors.Is")
	}
}
