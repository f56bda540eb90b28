package infrastructure

import (
	"errors"
	"testing"

	"github.com/DRSN-tech/vendor-onboarding/pkg/e"
)

func TestGetExtensionFromMIME(t *testing.T) {
	cases := []struct {
		mime string
		want string
	}{
		{"text/csv", "csv"},
		{"application/csv", "csv"},
		{"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx"},
		{"application/json", "json"},
	}
	for _, tc := range cases {
		got, err := GetExtensionFromMIME(tc.mime)
		if err != nil {
			t.Fatalf("GetExtensionFromMIME(%q) error = %v", tc.mime, err)
		}
		if got != tc.want {
			t.Fatalf("GetExtensionFromMIME(%q) = %q, want %q", tc.mime, got, tc.want)
		}
	}

	if _, err := GetExtensionFromMIME("application/pdf"); !errors.Is(err, e.ErrUnsupportedMediaType) {
		t.Fatalf("GetExtensionFromMIME(pdf) error = %v, want ErrUnsupportedMediaType", err)
	}
}
