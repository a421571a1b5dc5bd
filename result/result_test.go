package result

import (
	"errors"
	"strings"
	"testing"
)

type kindedError struct {
	kind string
	msg  string
}

func (e *kindedError) Error() string     { return e.msg }
func (e *kindedError) ErrorKind() string { return e.kind }

func TestOK(t *testing.T) {
	r := OK(42)

	if !r.IsOK() {
		t.Fatal("expected success")
	}
	if r.Describe() != "" {
		t.Errorf("expected empty description, got %q", r.Describe())
	}

	v, err := r.Unwrap()
	if err != nil || v != 42 {
		t.Errorf("unexpected unwrap: %d, %v", v, err)
	}
}

func TestFailCarriesFallback(t *testing.T) {
	r := Fail("partial", errors.New("boom"))

	if r.IsOK() {
		t.Fatal("expected failure")
	}
	if r.Value() != "partial" {
		t.Errorf("fallback value lost: %q", r.Value())
	}

	_, err := r.Unwrap()
	if err == nil || err.Error() != "boom" {
		t.Errorf("unwrap must surface the error, got %v", err)
	}
}

func TestDescribeIncludesKind(t *testing.T) {
	r := Fail(0, &kindedError{kind: "some-kind", msg: "boom"})
	if r.Describe() != "boom (some-kind)" {
		t.Errorf("wrong description: %q", r.Describe())
	}

	r = Fail(0, &kindedError{kind: "some-kind"})
	if r.Describe() != "some-kind" {
		t.Errorf("empty message must fall back to the kind name, got %q", r.Describe())
	}

	r = Fail(0, errors.New("plain"))
	if r.Describe() != "plain" {
		t.Errorf("wrong description for plain error: %q", r.Describe())
	}
}

func TestGuard(t *testing.T) {
	r := Guard(0, func() (int, error) { return 7, nil })
	if !r.IsOK() || r.Value() != 7 {
		t.Errorf("unexpected result: %+v", r)
	}

	r = Guard(-1, func() (int, error) { return 0, errors.New("boom") })
	if r.IsOK() || r.Value() != -1 {
		t.Errorf("expected failure with fallback, got %+v", r)
	}

	r = Guard(-1, func() (int, error) { panic("unexpected") })
	if r.IsOK() {
		t.Fatal("expected panic to become a failure")
	}
	if r.Value() != -1 {
		t.Errorf("fallback value lost: %d", r.Value())
	}
	if !strings.Contains(r.Describe(), "recovered") || !strings.Contains(r.Describe(), "unexpected") {
		t.Errorf("wrong description: %q", r.Describe())
	}
}
