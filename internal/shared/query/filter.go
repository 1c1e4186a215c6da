package query

import "github.com/orris-inc/warden/internal/shared/constants"

// ListQuery is an offset page plus equality/substring filters keyed by
// field name. Unknown filter keys are ignored by the stores.
type ListQuery struct {
	Skip    int
	Limit   int
	Filters map[string]string
}

type ListOption func(*ListQuery)

func WithPage(skip, limit int) ListOption {
	return func(q *ListQuery) {
		q.Skip = skip
		q.Limit = limit
	}
}

func WithFilter(field, value string) ListOption {
	return func(q *ListQuery) {
		if value == "" {
			return
		}
		if q.Filters == nil {
			q.Filters = make(map[string]string)
		}
		q.Filters[field] = value
	}
}

func NewListQuery(opts ...ListOption) ListQuery {
	q := ListQuery{
		Skip:  constants.DefaultSkip,
		Limit: constants.DefaultLimit,
	}
	for _, opt := range opts {
		opt(&q)
	}
	return q.Normalize()
}

// Normalize clamps skip to >= 0 and limit to [1, MaxLimit].
func (q ListQuery) Normalize() ListQuery {
	if q.Skip < 0 {
		q.Skip = constants.DefaultSkip
	}
	if q.Limit <= 0 {
		q.Limit = constants.DefaultLimit
	}
	if q.Limit > constants.MaxLimit {
		q.Limit = constants.MaxLimit
	}
	return q
}
