// Package metricsrepo manages the read-only repository layer of the
// metrics engine. Every query is scoped by owner and nothing here ever
// mutates state.
package metricsrepo

import (
	"database/sql"
	"time"

	"github.com/IanSalomao/churchflow/internal/domain"
	"github.com/IanSalomao/churchflow/pkg/dbpkg"
)

// RepoPGS facilitates metrics repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns metrics RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

func scanMonthlyBuckets(rows *sql.Rows) ([]domain.MonthlyBucket, error) {
	items := []domain.MonthlyBucket{}

	for rows.Next() {
		var (
			b     domain.MonthlyBucket
			month int
		)

		if err := rows.Scan(&b.Year, &month, &b.Count, &b.Total); err != nil {
			return nil, err
		}

		b.Month = time.Month(month)
		items = append(items, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
