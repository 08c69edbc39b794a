package employees_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/taskpoint/assist/internal/employees"
	"github.com/taskpoint/assist/pkg/pagination"
)

func newRepo(t *testing.T) (employees.System, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return employees.New(db, logger, pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}), mock
}

func employeeColumns() []string {
	return []string{
		"id", "full_name", "active", "hired_on",
		"terminated_on", "schedule_template_id", "created_at", "updated_at",
	}
}

func TestFindByName(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	now := time.Now()

	t.Run("exact match resolves", func(t *testing.T) {
		sys, mock := newRepo(t)

		mock.ExpectQuery(`WHERE e.full_name = \$1 LIMIT 1`).
			WithArgs("Maria Souza").
			WillReturnRows(sqlmock.NewRows(employeeColumns()).AddRow(
				id.String(), "Maria Souza", true, nil, nil, nil, now, now,
			))

		got, err := sys.FindByName(context.Background(), "Maria Souza")
		if err != nil {
			t.Fatalf("FindByName error: %v", err)
		}
		if got.ID != id {
			t.Errorf("id = %v, want %v", got.ID, id)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectations: %v", err)
		}
	})

	t.Run("no match is not found", func(t *testing.T) {
		sys, mock := newRepo(t)

		mock.ExpectQuery(`WHERE e.full_name = \$1 LIMIT 1`).
			WithArgs("maria souza").
			WillReturnRows(sqlmock.NewRows(employeeColumns()))

		_, err := sys.FindByName(context.Background(), "maria souza")
		if !errors.Is(err, employees.ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	})
}
