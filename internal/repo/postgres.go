package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"
	_ "github.com/lib/pq"

	"github.com/AstroBookings/api-system/internal/model"
	"github.com/AstroBookings/api-system/internal/pkg/apperr"
	"github.com/AstroBookings/api-system/internal/pkg/dbutil"
)

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	role          TEXT NOT NULL,
	password_hash TEXT NOT NULL
)`

var userColumns = []string{"id", "name", "email", "role", "password_hash"}

// PostgresUserRepository stores user records in a postgres table. The
// UNIQUE constraint on email makes duplicate detection in Save atomic.
type PostgresUserRepository struct {
	db *sql.DB
}

// OpenPostgres connects, verifies the connection and ensures the users
// table exists.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresUserRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, usersSchema); err != nil {
		return nil, err
	}
	return &PostgresUserRepository{db: db}, nil
}

func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, map[string]interface{}{"email": email})
}

func (r *PostgresUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, map[string]interface{}{"id": id})
}

func (r *PostgresUserRepository) Save(ctx context.Context, user *model.User) error {
	data := map[string]interface{}{
		"id":            user.ID,
		"name":          user.Name,
		"email":         user.Email,
		"role":          user.Role,
		"password_hash": user.PasswordHash,
	}
	sqlStr, args, err := builder.BuildInsert("users", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		if dbutil.IsConflict(err) {
			return apperr.ErrConflict
		}
		return err
	}
	return nil
}

func (r *PostgresUserRepository) Delete(ctx context.Context, id string) error {
	sqlStr, args, err := builder.BuildDelete("users", map[string]interface{}{"id": id})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) findOne(ctx context.Context, where map[string]interface{}) (*model.User, error) {
	sqlStr, args, err := builder.BuildSelect("users", where, userColumns)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		return nil, apperr.ErrNotFound
	}
	var user model.User
	if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.PasswordHash); err != nil {
		return nil, err
	}
	return &user, nil
}
