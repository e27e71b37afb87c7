package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-secure-api/models"
)

// userColumns is the projection of every user lookup, in scan order.
var userColumns = []string{"id", "name", "email", "created_at"}

// buildFindUserByIDQuery returns a parameterized SELECT for a single user.
// The identifier is always a bind argument, never part of the SQL text.
func buildFindUserByIDQuery(id int64, placeholder sq.PlaceholderFormat) (string, []any, error) {
	query, args, err := sq.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		Limit(1).
		PlaceholderFormat(placeholder).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
