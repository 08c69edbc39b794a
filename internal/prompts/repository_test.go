package prompts_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/taskpoint/assist/internal/prompts"
	"github.com/taskpoint/assist/pkg/pagination"
)

func newRepo(t *testing.T) (prompts.System, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return prompts.New(db, logger, pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}), mock
}

func promptColumns() []string {
	return []string{"id", "name", "stage", "instructions", "description", "active"}
}

func TestInstructionsOverride(t *testing.T) {
	t.Run("active override wins", func(t *testing.T) {
		sys, mock := newRepo(t)

		mock.ExpectQuery(`FROM public.prompts p WHERE p.stage = \$1 AND p.active = \$2`).
			WithArgs("classify", true).
			WillReturnRows(sqlmock.NewRows(promptColumns()).AddRow(
				uuid.New().String(), "tuned-classify", "classify", "Tuned instructions.", nil, true,
			))

		got, err := sys.Instructions(context.Background(), prompts.StageClassify)
		if err != nil {
			t.Fatalf("Instructions error: %v", err)
		}
		if got != "Tuned instructions." {
			t.Errorf("instructions = %q, want override", got)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectations: %v", err)
		}
	})

	t.Run("falls back to default when no override is active", func(t *testing.T) {
		sys, mock := newRepo(t)

		mock.ExpectQuery(`FROM public.prompts p WHERE p.stage = \$1 AND p.active = \$2`).
			WithArgs("respond", true).
			WillReturnRows(sqlmock.NewRows(promptColumns()))

		got, err := sys.Instructions(context.Background(), prompts.StageRespond)
		if err != nil {
			t.Fatalf("Instructions error: %v", err)
		}

		want, _ := prompts.Instructions(prompts.StageRespond)
		if got != want {
			t.Errorf("instructions = %q, want hardcoded default", got)
		}
	})

	t.Run("invalid stage rejected without a query", func(t *testing.T) {
		sys, mock := newRepo(t)

		_, err := sys.Instructions(context.Background(), prompts.Stage("finalize"))
		if !errors.Is(err, prompts.ErrInvalidStage) {
			t.Fatalf("error = %v, want ErrInvalidStage", err)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unexpected query executed: %v", err)
		}
	})
}

func TestSpecIsImmutable(t *testing.T) {
	sys, mock := newRepo(t)

	got, err := sys.Spec(context.Background(), prompts.StageClassify)
	if err != nil {
		t.Fatalf("Spec error: %v", err)
	}

	want, _ := prompts.Specs(prompts.StageClassify)
	if got != want {
		t.Error("Spec should return the hardcoded specification")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected query executed: %v", err)
	}
}
