package implementation

import (
	"context"
	"strings"

	"pix-logview-be/internal/model"

	"gorm.io/gorm"
)

// queryResultSet runs one parameterized query on a scoped rows handle
// and formats the result. The handle is closed on every exit path so a
// failed query never leaves an open cursor on the shared connection.
func queryResultSet(ctx context.Context, db *gorm.DB, query string, args ...interface{}) (model.ResultSet, error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return model.ResultSet{}, err
	}
	defer rows.Close()

	return model.FormatRows(rows)
}

// inPlaceholders builds "?, ?, ?" for n list elements.
func inPlaceholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// likeContains wraps a term for a substring LIKE match.
func likeContains(term string) string {
	return "%" + term + "%"
}
