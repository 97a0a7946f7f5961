package session

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/pkg/apperrors"
)

type fakeRow struct {
	values []interface{}
	err    error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		v := reflect.ValueOf(r.values[i])
		if !v.IsValid() {
			continue
		}
		reflect.ValueOf(d).Elem().Set(v)
	}
	return nil
}

type fakeDB struct {
	sql  string
	args []interface{}
	row  fakeRow
	tag  string
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql, f.args = sql, args
	return pgconn.NewCommandTag(f.tag), nil
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.sql, f.args = sql, args
	return f.row
}

func TestPostgresStoreGet(t *testing.T) {
	now := time.Now()
	school := "s1"
	db := &fakeDB{row: fakeRow{values: []interface{}{
		"id1", "tok", "u1", "a@school.com", "principal", &school,
		(*string)(nil), (*string)(nil), (*time.Time)(nil),
		now, now.Add(time.Hour),
	}}}
	store := NewPostgresStore(db)

	s, err := store.Get(context.Background(), "id1")
	require.NoError(t, err)
	assert.Contains(t, db.sql, "FROM dashboard_sessions WHERE id = $1 AND expires_at > $2")
	assert.Equal(t, models.RolePrincipal, s.User.Role)
	assert.Equal(t, "s1", s.User.SchoolID)
	assert.Nil(t, s.Flash)
}

func TestPostgresStoreGetMissing(t *testing.T) {
	store := NewPostgresStore(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}})
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestPostgresStoreSaveUpserts(t *testing.T) {
	db := &fakeDB{tag: "INSERT 0 1"}
	store := NewPostgresStore(db)
	s := &Session{
		ID:        "id1",
		Token:     "tok",
		User:      models.User{ID: "u1", Email: "a@school.com", Role: models.RoleSuperAdmin},
		Flash:     &Flash{Kind: FlashSuccess, Message: "Saved", ExpiresAt: time.Now()},
		ExpiresAt: time.Now().Add(time.Hour),
	}

	require.NoError(t, store.Save(context.Background(), s))
	assert.Contains(t, db.sql, "INSERT INTO dashboard_sessions")
	assert.Contains(t, db.sql, "ON CONFLICT (id) DO UPDATE SET")
	require.Len(t, db.args, len(sessionColumns))
	assert.Nil(t, db.args[5], "super admins have no school")
	assert.Equal(t, "Saved", *(db.args[7].(*string)))
}

func TestPostgresStoreDeleteExpired(t *testing.T) {
	db := &fakeDB{tag: "DELETE 3"}
	store := NewPostgresStore(db)

	n, err := store.DeleteExpired(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Contains(t, db.sql, "DELETE FROM dashboard_sessions WHERE expires_at <= $1")
}
