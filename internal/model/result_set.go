package model

import "database/sql"

// Row is one result row keyed by column name. Values keep whatever type
// the driver returned, except []byte which is normalized to string so
// rows survive JSON encoding.
type Row map[string]interface{}

// ResultSet is a raw tabular query result. Columns preserves the SELECT
// order because Row alone cannot (Go maps are unordered).
type ResultSet struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Empty reports whether the result set has no rows.
func (rs ResultSet) Empty() bool {
	return len(rs.Rows) == 0
}

// Without returns a copy of the result set with the given columns
// removed from the column list. Row maps are shared, not copied; the
// hidden values stay reachable for detail rendering.
func (rs ResultSet) Without(columns ...string) ResultSet {
	hidden := make(map[string]bool, len(columns))
	for _, c := range columns {
		hidden[c] = true
	}

	out := ResultSet{Rows: rs.Rows}
	for _, c := range rs.Columns {
		if !hidden[c] {
			out.Columns = append(out.Columns, c)
		}
	}
	return out
}

// FormatRows converts a live sql.Rows handle into a ResultSet,
// preserving column order and row order. The caller keeps ownership of
// rows and must close it.
func FormatRows(rows *sql.Rows) (ResultSet, error) {
	columns, err := rows.Columns()
	if err != nil {
		return ResultSet{}, err
	}

	rs := ResultSet{Columns: columns}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return ResultSet{}, err
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		rs.Rows = append(rs.Rows, row)
	}

	return rs, rows.Err()
}
