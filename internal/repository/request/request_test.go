package requestRepo

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/TATR0/bot-service/internal/domain"
	"github.com/TATR0/bot-service/internal/repository/repotest"
	"github.com/google/uuid"
)

func TestCreate_SetsStatusNewAndCreatedAt(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	db := repotest.NewFakeDB()
	db.GetFn = func(dest interface{}, _ string, _ ...interface{}) error {
		*dest.(*time.Time) = created
		return nil
	}
	repo := New(db, repotest.Logger())

	req := &domain.Request{ClientName: "Иван", ClientID: 7, Status: domain.RequestStatusAccepted}
	if err := repo.Create(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.ID == uuid.Nil {
		t.Error("id must be assigned")
	}
	if req.Status != domain.RequestStatusNew {
		t.Errorf("status must be new, got %s", req.Status)
	}
	if !req.CreatedAt.Equal(created) {
		t.Errorf("created_at must come from storage, got %v", req.CreatedAt)
	}
	call := db.LastCall()
	if !strings.HasSuffix(call.Query, "RETURNING created_at") {
		t.Errorf("unexpected query %s", call.Query)
	}
	if len(call.Args) != 12 {
		t.Errorf("expected 12 args, got %d", len(call.Args))
	}
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "updated", affected: 1},
		{name: "not found", affected: 0, wantErr: domain.ErrRequestNotFound},
		{name: "storage failure", execErr: errors.New("timeout")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := repotest.NewFakeDB()
			db.ExecFn = func(string, ...interface{}) (int64, error) { return tt.affected, tt.execErr }
			repo := New(db, repotest.Logger())

			err := repo.UpdateStatus(context.Background(), uuid.New(), domain.RequestStatusCalled)
			switch {
			case tt.execErr != nil:
				if err == nil || errors.Is(err, domain.ErrRequestNotFound) {
					t.Fatalf("expected storage error, got %v", err)
				}
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}

			call := db.LastCall()
			if call.Query != "UPDATE requests SET status = $1 WHERE id = $2" {
				t.Errorf("unexpected query %s", call.Query)
			}
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db := repotest.NewFakeDB()
	db.GetFn = func(interface{}, string, ...interface{}) error { return sql.ErrNoRows }
	repo := New(db, repotest.Logger())

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestGetByServiceID_NewestFirstWithLimit(t *testing.T) {
	db := repotest.NewFakeDB()
	repo := New(db, repotest.Logger())

	requests, err := repo.GetByServiceID(context.Background(), uuid.New(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requests == nil {
		t.Error("result must not be nil")
	}
	call := db.LastCall()
	if !strings.HasSuffix(call.Query, "ORDER BY created_at DESC LIMIT $2") {
		t.Errorf("unexpected query %s", call.Query)
	}
	if call.Args[1] != 5 {
		t.Errorf("unexpected limit arg %v", call.Args[1])
	}
}
