package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness(CodeTimeConflict)

	if !IsBusiness(err, CodeTimeConflict) {
		t.Fatal("expected code match")
	}
	if IsBusiness(err, CodePastTime) {
		t.Fatal("unexpected code match")
	}
	if IsBusiness(errors.New("boom"), CodeTimeConflict) {
		t.Fatal("plain errors are not business errors")
	}
}

func TestIsBusinessWrapped(t *testing.T) {
	err := fmt.Errorf("create appointment: %w", ErrStaffUnavailable())
	if !IsBusiness(err, CodeStaffUnavailable) {
		t.Fatal("expected wrapped business error to match")
	}
}

func TestBusinessErrorMessage(t *testing.T) {
	err := ErrDurationMismatch(30, 45)
	be, ok := AsBusiness(err)
	if !ok {
		t.Fatal("expected a business error")
	}
	if be.Code != CodeDurationMismatch {
		t.Fatalf("unexpected code %s", be.Code)
	}
	if be.Message == "" || be.Error() != be.Message {
		t.Fatalf("expected message to drive Error(), got %q", be.Error())
	}

	bare := BusinessError{Code: CodeTimeConflict}
	if bare.Error() != CodeTimeConflict {
		t.Fatalf("code-only errors print their code, got %q", bare.Error())
	}
}

func TestIsExclusionConflict(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23P01"}
	if !IsExclusionConflict(fmt.Errorf("insert: %w", pgErr)) {
		t.Fatal("expected 23P01 to be detected through wrapping")
	}

	if IsExclusionConflict(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("unique violations are not exclusion conflicts")
	}
	if IsExclusionConflict(errors.New("boom")) {
		t.Fatal("plain errors are not exclusion conflicts")
	}
}
