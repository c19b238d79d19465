package gateway

import (
	"strconv"

	"github.com/viant/n8n-mcp/n8n"
)

// Result is the shaped outcome of a gateway operation.
type Result struct {
	Message   string
	Data      map[string]interface{}
	NextSteps []string
}

// ListInput carries paging arguments shared by every list operation.
type ListInput struct {
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=250"`
	Cursor string `json:"cursor,omitempty"`
}

func (l ListInput) options() n8n.ListOptions {
	return n8n.ListOptions{Limit: l.Limit, Cursor: l.Cursor}
}

// orEmpty keeps empty pages rendering as [] rather than null.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func listResult[T any](key, noun string, page *n8n.Page[T], items interface{}) *Result {
	count := len(page.Items)
	result := &Result{
		Message: pluralize(count, noun),
		Data: map[string]interface{}{
			key:          items,
			"count":      count,
			"nextCursor": page.NextCursor,
		},
	}
	if page.NextCursor != "" {
		result.NextSteps = append(result.NextSteps, "Pass cursor="+page.NextCursor+" to fetch the next page")
	}
	return result
}

func pluralize(count int, noun string) string {
	switch count {
	case 0:
		return "No " + noun + "s found"
	case 1:
		return "Found 1 " + noun
	}
	return "Found " + strconv.Itoa(count) + " " + noun + "s"
}
