package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapError(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "no rows", in: pgx.ErrNoRows, want: ErrNotFound},
		{name: "wrapped no rows", in: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: ErrNotFound},
		{name: "unique violation", in: &pgconn.PgError{Code: "23505"}, want: ErrDuplicate},
		{name: "other pg error", in: &pgconn.PgError{Code: "23503"}},
		{name: "passthrough", in: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.in)
			if tt.want == nil {
				if tt.in == nil && got != nil {
					t.Fatalf("mapError(nil) = %v", got)
				}
				if tt.in != nil && (errors.Is(got, ErrNotFound) || errors.Is(got, ErrDuplicate)) {
					t.Fatalf("unexpected mapping to %v", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Fatalf("mapError = %v, want %v", got, tt.want)
			}
		})
	}
}
