package source

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oarkflow/convert"

	"github.com/gyeh/bpagen/internal/model"
)

// QuerySource streams the result set of a SQL query. Column names become row
// keys; NULL columns are left absent.
type QuerySource struct {
	query   string
	rows    pgx.Rows
	columns []string
	current model.Row
	rowNum  int
	err     error
}

// OpenQuery runs query on pool and returns a streaming source over its rows.
func OpenQuery(ctx context.Context, pool *pgxpool.Pool, query string) (*QuerySource, error) {
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, &ReadError{Source: "query", Err: err}
	}

	fds := rows.FieldDescriptions()
	cols := make([]string, len(fds))
	for i, fd := range fds {
		cols[i] = strings.ToLower(fd.Name)
	}
	return &QuerySource{query: query, rows: rows, columns: cols}, nil
}

func (s *QuerySource) Next() bool {
	if s.err != nil {
		return false
	}
	if !s.rows.Next() {
		if err := s.rows.Err(); err != nil {
			s.err = &ReadError{Source: "query", Err: err}
		}
		return false
	}

	vals, err := s.rows.Values()
	if err != nil {
		s.err = &ReadError{Source: "query", Err: fmt.Errorf("row %d: %w", s.rowNum+1, err)}
		return false
	}

	row := make(model.Row, len(vals))
	for i, v := range vals {
		if v == nil {
			continue
		}
		row[s.columns[i]] = valueString(v)
	}
	s.rowNum++
	s.current = row
	return true
}

// valueString renders a decoded Postgres value the way it would appear in a
// CSV export.
func valueString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format("2006-01-02")
	case bool:
		return strconv.FormatBool(x)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case driver.Valuer:
		// pgtype.Numeric and friends
		if dv, err := x.Value(); err == nil && dv != nil {
			return valueString(dv)
		}
	}
	if f, ok := convert.ToFloat64(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

func (s *QuerySource) Row() model.Row { return s.current }
func (s *QuerySource) RowNumber() int { return s.rowNum }
func (s *QuerySource) Err() error     { return s.err }

// Close releases the connection back to the pool.
func (s *QuerySource) Close() error {
	s.rows.Close()
	return nil
}
