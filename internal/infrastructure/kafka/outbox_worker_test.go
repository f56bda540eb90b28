package kafka

import (
	"errors"
	"testing"
)

func TestIsRetryableError(t *testing.T) {
	retryable := []string{
		"dial tcp 127.0.0.1:9092: connection refused",
		"read tcp: i/o timeout",
		"kafka: Broker Not Available",
		"write: broken pipe",
		"lookup kafka: no such host",
	}
	for _, msg := range retryable {
		if !isRetryableError(errors.New(msg)) {
			t.Fatalf("isRetryableError(%q) = false, want true", msg)
		}
	}

	permanent := []string{
		"invalid message format",
		"unknown topic or partition",
	}
	for _, msg := range permanent {
		if isRetryableError(errors.New(msg)) {
			t.Fatalf("isRetryableError(%q) = true, want false", msg)
		}
	}

	if isRetryableError(nil) {
		t.Fatalf("isRetryableError(nil) = true, want false")
	}
}
