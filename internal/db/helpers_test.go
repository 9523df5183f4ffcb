package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestHasTable(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("airports").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("airports"))
	mock.ExpectQuery("information_schema\\.tables").WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectQuery("information_schema\\.tables").WithArgs("broken").
		WillReturnError(errors.New("connection reset"))

	ctx := context.Background()

	ok, err := HasTable(ctx, conn, "airports")
	if err != nil || !ok {
		t.Fatalf("expected airports table to exist, got ok=%v err=%v", ok, err)
	}

	ok, err = HasTable(ctx, conn, "missing")
	if err != nil || ok {
		t.Fatalf("expected missing table to be absent without error, got ok=%v err=%v", ok, err)
	}

	ok, err = HasTable(ctx, conn, "broken")
	if err == nil {
		t.Fatalf("expected lookup error to be returned")
	}
	if ok {
		t.Fatalf("failed lookup must not report the table as present")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
