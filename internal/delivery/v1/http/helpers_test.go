package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/DRSN-tech/vendor-onboarding/pkg/e"
)

func TestParsePriceToCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"599.99", 59999},
		{"600", 60000},
		{"0.01", 1},
		{"12.5", 1250},
		{"1000000000", 100000000000},
	}
	for _, tc := range cases {
		got, err := parsePriceToCents(tc.in)
		if err != nil {
			t.Fatalf("parsePriceToCents(%q) error = %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parsePriceToCents(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParsePriceToCentsRejects(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", e.ErrInvalidPrice},
		{"  ", e.ErrInvalidPrice},
		{"abc", e.ErrInvalidPrice},
		{"1000000000.01", e.ErrInvalidPrice},
		{"0", e.ErrPriceMustBePositive},
		{"-5", e.ErrPriceMustBePositive},
		{"1.999", e.ErrPricePrecision},
	}
	for _, tc := range cases {
		if _, err := parsePriceToCents(tc.in); !errors.Is(err, tc.want) {
			t.Fatalf("parsePriceToCents(%q) error = %v, want %v", tc.in, err, tc.want)
		}
	}
}

func TestToHTTPResponse(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{e.ErrMissingFields, http.StatusBadRequest},
		{e.ErrRecordCountMismatch, http.StatusBadRequest},
		{e.ErrUniqueViolation, http.StatusConflict},
		{e.ErrForeignKeyViolation, http.StatusConflict},
		{e.ErrRestrictViolation, http.StatusConflict},
		{e.ErrCheckViolation, http.StatusUnprocessableEntity},
		{e.ErrVendorNotFound, http.StatusNotFound},
		{e.ErrUploadNotFound, http.StatusNotFound},
		{e.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{e.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
	}
	for _, tc := range cases {
		code, _ := ToHTTPResponse(tc.err)
		if code != tc.code {
			t.Fatalf("ToHTTPResponse(%v) = %d, want %d", tc.err, code, tc.code)
		}
	}
}

func TestToHTTPResponseWrapped(t *testing.T) {
	wrapped := e.Wrap("IngestUseCase.AddProduct", e.Wrap("products_sku_key", e.ErrUniqueViolation))
	code, msg := ToHTTPResponse(wrapped)
	if code != http.StatusConflict {
		t.Fatalf("ToHTTPResponse(wrapped unique) = %d, want %d", code, http.StatusConflict)
	}
	if msg != e.ErrUniqueViolation.Error() {
		t.Fatalf("ToHTTPResponse(wrapped unique) message = %q", msg)
	}
}

func TestToHTTPResponseUnknownError(t *testing.T) {
	code, msg := ToHTTPResponse(errors.New("connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Fatalf("ToHTTPResponse(unknown) = %d, want %d", code, http.StatusInternalServerError)
	}
	// Внутренние детали наружу не отдаются
	if msg != e.ErrInternalServerError.Error() {
		t.Fatalf("ToHTTPResponse(unknown) message = %q", msg)
	}
}
