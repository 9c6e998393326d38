package repositories

import (
	"fmt"
	"strings"

	"github.com/Michel-2503/Kopfrechnen/pkg/repositories/models"
)

var sessionColumnList = strings.Join(models.SessionColumns, ", ")

// placeholders returns n bind parameters, numbered ($1, $2, ...) when numbered is set.
func placeholders(n int, numbered bool) string {
	p := make([]string, n)
	for i := range p {
		if numbered {
			p[i] = fmt.Sprintf("$%d", i+1)
		} else {
			p[i] = "?"
		}
	}
	return strings.Join(p, ", ")
}

// scanner is satisfied by *sql.Row, *sql.Rows and pgx.Row.
type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*models.Session, error) {
	m := &models.Session{}
	if err := row.Scan(m.Fields()...); err != nil {
		return nil, err
	}
	return m, nil
}
