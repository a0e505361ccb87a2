package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/openmart/storegate/internal/store"
)

// parseListQuery builds a store query from the request's pagination and
// filter parameters. Filters use the filters[field]=value form. Ownership
// scoping happens later in the service layer; nothing parsed here can
// bypass it.
func parseListQuery(c *gin.Context) store.Query {
	q := store.Query{
		Page:     cast.ToInt(c.Query("page")),
		PageSize: cast.ToInt(c.Query("pageSize")),
	}

	for key, values := range c.Request.URL.Query() {
		if len(values) == 0 {
			continue
		}

		field, ok := filterField(key)
		if !ok {
			continue
		}

		if q.Filters == nil {
			q.Filters = store.Filters{}
		}

		q.Filters[field] = values[0]
	}

	return q.Normalize()
}

func filterField(key string) (string, bool) {
	rest, found := strings.CutPrefix(key, "filters[")
	if !found {
		return "", false
	}

	field, found := strings.CutSuffix(rest, "]")
	if !found || field == "" {
		return "", false
	}

	return field, true
}
