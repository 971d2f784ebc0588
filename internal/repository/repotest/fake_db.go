// Package repotest содержит fake persistence для тестов репозиториев
package repotest

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/TATR0/bot-service/internal/ports/persistence"
)

type Call struct {
	Method string
	Query  string
	Args   []interface{}
	InTx   bool
}

// FakeDB записывает запросы и отдаёт заранее заданные ответы
type FakeDB struct {
	mu    sync.Mutex
	Calls []Call

	GetFn    func(dest interface{}, query string, args ...interface{}) error
	SelectFn func(dest interface{}, query string, args ...interface{}) error
	ExecFn   func(query string, args ...interface{}) (int64, error)

	BeginErr  error
	CommitErr error
	Commits   int
	Rollbacks int
}

var _ persistence.Persistence = (*FakeDB)(nil)

func NewFakeDB() *FakeDB {
	return &FakeDB{}
}

// Logger логгер, который ничего не пишет
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (f *FakeDB) record(method string, inTx bool, query string, args []interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, Call{Method: method, Query: query, Args: args, InTx: inTx})
}

// LastCall последний записанный запрос
func (f *FakeDB) LastCall() Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Calls) == 0 {
		return Call{}
	}
	return f.Calls[len(f.Calls)-1]
}

func (f *FakeDB) get(inTx bool, dest interface{}, query string, args []interface{}) error {
	f.record("Get", inTx, query, args)
	if f.GetFn == nil {
		return nil
	}
	return f.GetFn(dest, query, args...)
}

func (f *FakeDB) sel(inTx bool, dest interface{}, query string, args []interface{}) error {
	f.record("Select", inTx, query, args)
	if f.SelectFn == nil {
		return nil
	}
	return f.SelectFn(dest, query, args...)
}

func (f *FakeDB) exec(inTx bool, query string, args []interface{}) (int64, error) {
	f.record("Exec", inTx, query, args)
	if f.ExecFn == nil {
		return 1, nil
	}
	return f.ExecFn(query, args...)
}

func (f *FakeDB) Get(_ context.Context, dest interface{}, query string, args ...interface{}) error {
	return f.get(false, dest, query, args)
}

func (f *FakeDB) Select(_ context.Context, dest interface{}, query string, args ...interface{}) error {
	return f.sel(false, dest, query, args)
}

func (f *FakeDB) Exec(_ context.Context, query string, args ...interface{}) error {
	_, err := f.exec(false, query, args)
	return err
}

func (f *FakeDB) ExecWithResult(_ context.Context, query string, args ...interface{}) (int64, error) {
	return f.exec(false, query, args)
}

func (f *FakeDB) BeginTx(_ context.Context) (persistence.Transaction, error) {
	if f.BeginErr != nil {
		return nil, f.BeginErr
	}
	return &FakeTx{db: f}, nil
}

func (f *FakeDB) WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error {
	tx, err := f.BeginTx(ctx)
	if err != nil {
		return err
	}
	if err := fn(ctx, tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// FakeTx транзакция поверх FakeDB
type FakeTx struct {
	db *FakeDB
}

func (t *FakeTx) Get(_ context.Context, dest interface{}, query string, args ...interface{}) error {
	return t.db.get(true, dest, query, args)
}

func (t *FakeTx) Select(_ context.Context, dest interface{}, query string, args ...interface{}) error {
	return t.db.sel(true, dest, query, args)
}

func (t *FakeTx) Exec(_ context.Context, query string, args ...interface{}) error {
	_, err := t.db.exec(true, query, args)
	return err
}

func (t *FakeTx) ExecWithResult(_ context.Context, query string, args ...interface{}) (int64, error) {
	return t.db.exec(true, query, args)
}

func (t *FakeTx) Commit() error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	if t.db.CommitErr != nil {
		return t.db.CommitErr
	}
	t.db.Commits++
	return nil
}

func (t *FakeTx) Rollback() error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	t.db.Rollbacks++
	return nil
}
