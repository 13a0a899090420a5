// Package filter содержит чистые предикаты для списков: статус, площадка, диапазон дат и поиск по тексту.
package filter

import (
	"slices"
	"strings"
	"time"
)

// Criteria: выбранные в интерфейсе фильтры. Пустое поле означает «без ограничения».
type Criteria struct {
	Statuses []string
	Sites    []string
	From     *time.Time
	To       *time.Time
	Search   string
}

// Fields: то, что предикатам нужно знать об элементе списка.
type Fields struct {
	Status string
	Site   string
	Date   time.Time
	Text   []string
}

func (c Criteria) Empty() bool {
	return len(c.Statuses) == 0 && len(c.Sites) == 0 && c.From == nil && c.To == nil && strings.TrimSpace(c.Search) == ""
}

// Match проверяет все активные условия через AND.
func (c Criteria) Match(f Fields) bool {
	if len(c.Statuses) > 0 && !containsFold(c.Statuses, f.Status) {
		return false
	}
	if len(c.Sites) > 0 && !containsFold(c.Sites, f.Site) {
		return false
	}
	if c.From != nil || c.To != nil {
		if f.Date.IsZero() {
			return false
		}
		if c.From != nil && f.Date.Before(*c.From) {
			return false
		}
		if c.To != nil && f.Date.After(*c.To) {
			return false
		}
	}
	if q := strings.ToLower(strings.TrimSpace(c.Search)); q != "" {
		return slices.ContainsFunc(f.Text, func(s string) bool {
			return strings.Contains(strings.ToLower(s), q)
		})
	}
	return true
}

// List возвращает подсписок элементов, удовлетворяющих критериям, в исходном порядке.
func List[T any](items []T, c Criteria, fields func(T) Fields) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if c.Match(fields(it)) {
			out = append(out, it)
		}
	}
	return out
}

func containsFold(set []string, v string) bool {
	return slices.ContainsFunc(set, func(s string) bool {
		return strings.EqualFold(s, v)
	})
}
