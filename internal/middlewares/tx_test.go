package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestTxMiddleware_CommitsOnSuccess(t *testing.T) {
	log := zap.NewNop().Sugar()
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	var txSeen bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		txSeen = GetTxFromContext(r.Context()) != nil
		w.WriteHeader(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	TxMiddleware(db, log)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/sleeps", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, txSeen, "handler should see the transaction in context")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddleware_BeginFailure(t *testing.T) {
	log := zap.NewNop().Sugar()
	db, mock := newMockDB(t)

	mock.ExpectBegin().WillReturnError(assert.AnError)

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	rec := httptest.NewRecorder()
	TxMiddleware(db, log)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/sleeps", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, nextCalled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddleware_RollsBackOnPanic(t *testing.T) {
	log := zap.NewNop().Sugar()
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	assert.Panics(t, func() {
		TxMiddleware(db, log)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/sleeps", nil))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTxFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetTxFromContext(req.Context()))
}
