package filter

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// FromQuery разбирает ?status=&site=&from=&to=&search=.
// status и site можно повторять или перечислять через запятую; to включает весь день.
func FromQuery(q url.Values) (Criteria, error) {
	c := Criteria{
		Statuses: splitValues(q["status"]),
		Sites:    splitValues(q["site"]),
		Search:   q.Get("search"),
	}

	if s := q.Get("from"); s != "" {
		from, err := time.Parse(dateLayout, s)
		if err != nil {
			return Criteria{}, fmt.Errorf("invalid from date %q: %w", s, err)
		}
		c.From = &from
	}

	if s := q.Get("to"); s != "" {
		to, err := time.Parse(dateLayout, s)
		if err != nil {
			return Criteria{}, fmt.Errorf("invalid to date %q: %w", s, err)
		}
		to = to.Add(24*time.Hour - time.Nanosecond)
		c.To = &to
	}

	return c, nil
}

func splitValues(raw []string) []string {
	var out []string
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
