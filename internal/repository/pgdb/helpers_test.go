package pgdb

import (
	"errors"
	"strings"
	"testing"

	"github.com/DRSN-tech/vendor-onboarding/pkg/e"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestConstraintErrClassification(t *testing.T) {
	cases := []struct {
		code       string
		constraint string
		want       error
	}{
		{"23505", "products_sku_key", e.ErrUniqueViolation},
		{"23514", "products_positive_price", e.ErrCheckViolation},
		{"23503", "products_vendor_id_fkey", e.ErrForeignKeyViolation},
	}

	for _, tc := range cases {
		pgErr := &pgconn.PgError{Code: tc.code, ConstraintName: tc.constraint}
		got := constraintErr(pgErr)
		if !errors.Is(got, tc.want) {
			t.Fatalf("constraintErr(%s) = %v, want %v", tc.code, got, tc.want)
		}
		if !strings.Contains(got.Error(), tc.constraint) {
			t.Fatalf("constraintErr(%s) = %q, missing constraint name %q", tc.code, got, tc.constraint)
		}
	}
}

func TestConstraintErrPassthrough(t *testing.T) {
	serialization := &pgconn.PgError{Code: "40001"}
	if got := constraintErr(serialization); got != serialization {
		t.Fatalf("constraintErr(40001) = %v, want original error", got)
	}

	plain := errors.New("dial tcp: connection refused")
	if got := constraintErr(plain); got != plain {
		t.Fatalf("constraintErr(plain) = %v, want original error", got)
	}
}

func TestPostgresDuplicate(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "outbox_events_event_id_key"}
	if !postgresDuplicate(dup) {
		t.Fatalf("postgresDuplicate(23505) = false, want true")
	}
	if postgresDuplicate(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("postgresDuplicate(23503) = true, want false")
	}
	if postgresDuplicate(errors.New("not a pg error")) {
		t.Fatalf("postgresDuplicate(plain) = true, want false")
	}
}
