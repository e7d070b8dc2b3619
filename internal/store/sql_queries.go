package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const usersTable = "users"

var userColumns = []string{"user_id", "username", "password_hash", "email", "created_at", "updated_at"}

var returningUser = "RETURNING " + strings.Join(userColumns, ", ")

// buildCreateUserQuery builds the INSERT of a new user returning the stored row.
// Uniqueness of username is enforced by the users_username_key index.
func buildCreateUserQuery(b sq.StatementBuilderType, username, passwordHash, email string, now time.Time) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "password_hash", "email", "created_at", "updated_at").
		Values(username, passwordHash, email, now, now).
		Suffix(returningUser).
		ToSql()
}

// buildFindUserQuery builds a SELECT of a single user filtered by where
// (either user_id or username).
func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

func buildUpdateEmailQuery(b sq.StatementBuilderType, id int64, email string, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("email", email).
		Set("updated_at", now).
		Where(sq.Eq{"user_id": id}).
		Suffix(returningUser).
		ToSql()
}

func buildSetPasswordHashQuery(b sq.StatementBuilderType, id int64, passwordHash string, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("password_hash", passwordHash).
		Set("updated_at", now).
		Where(sq.Eq{"user_id": id}).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{"user_id": id}).
		ToSql()
}
