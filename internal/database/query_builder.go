package database

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/deliverydesk/internal/models"
)

type ItemQuery struct {
	columns string
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

func NewItemQuery() *ItemQuery {
	return &ItemQuery{columns: itemColumns}
}

func (q *ItemQuery) Where(filter string, args ...interface{}) *ItemQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *ItemQuery) WhereProject(projectID int64) *ItemQuery {
	return q.Where("project_id = ?", projectID)
}

func (q *ItemQuery) WhereStatus(status models.ItemStatus) *ItemQuery {
	return q.Where("status = ?", status)
}

func (q *ItemQuery) WhereSprint(sprintID int64) *ItemQuery {
	return q.Where("sprint_id = ?", sprintID)
}

func (q *ItemQuery) WhereMilestone(milestoneID int64) *ItemQuery {
	return q.Where("milestone_id = ?", milestoneID)
}

func (q *ItemQuery) WhereTopLevel() *ItemQuery {
	return q.Where("parent_id IS NULL")
}

func (q *ItemQuery) OrderBy(orderBy string) *ItemQuery {
	q.orderBy = orderBy
	return q
}

func (q *ItemQuery) Limit(limit int) *ItemQuery {
	q.limit = limit
	return q
}

func (q *ItemQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM work_items", q.columns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}
