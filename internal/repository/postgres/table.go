package postgres

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"sitecms/internal/domain"
)

// Table maps one content record type onto a table. Columns excludes id.
type Table[T domain.Record] struct {
	Name    string
	Columns []string
	New     func() T
	// Values returns the column values of rec in Columns order.
	Values func(rec T) []any
	// Dest returns scan destinations for id followed by Columns.
	Dest func(rec T) []any
}

// MemberTable is the committee roster table.
func MemberTable() Table[*domain.Member] {
	return Table[*domain.Member]{
		Name:    "member_details",
		Columns: []string{"name", "m_name", "position", "m_position", "image_url"},
		New:     func() *domain.Member { return &domain.Member{} },
		Values: func(m *domain.Member) []any {
			return []any{m.Name, m.MName, m.Position, m.MPosition, m.ImageURL}
		},
		Dest: func(m *domain.Member) []any {
			return []any{&m.ID, &m.Name, &m.MName, &m.Position, &m.MPosition, &m.ImageURL}
		},
	}
}

// ShowcaseTable maps a slider or event table.
func ShowcaseTable(name string) Table[*domain.Showcase] {
	return Table[*domain.Showcase]{
		Name:    name,
		Columns: []string{"title", "m_title", "image_url"},
		New:     func() *domain.Showcase { return &domain.Showcase{} },
		Values: func(s *domain.Showcase) []any {
			return []any{s.Title, s.MTitle, s.ImageURL}
		},
		Dest: func(s *domain.Showcase) []any {
			return []any{&s.ID, &s.Title, &s.MTitle, &s.ImageURL}
		},
	}
}

// TableNames maps every resource kind to its table.
var TableNames = map[domain.ResourceKind]string{
	domain.KindCommitteeMember: "member_details",
	domain.KindHomeSlider:      "home_slider",
	domain.KindHomeEvent:       "home_events",
	domain.KindUpcomingEvent:   "upcoming_events",
	domain.KindAboutSlider:     "about_slider",
	domain.KindAboutEvent:      "about_events",
	domain.KindEventsPageEvent: "event_page_events",
}

type tableQueries struct {
	insert string
	get    string
	list   string
	update string
	delete string
}

func buildQueries[T domain.Record](t Table[T]) tableQueries {
	name := pq.QuoteIdentifier(t.Name)
	cols := make([]string, len(t.Columns))
	params := make([]string, len(t.Columns))
	sets := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = pq.QuoteIdentifier(c)
		params[i] = fmt.Sprintf("$%d", i+1)
		sets[i] = fmt.Sprintf("%s = $%d", cols[i], i+1)
	}
	colList := strings.Join(cols, ", ")
	returning := "id, " + colList
	return tableQueries{
		insert: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id", name, colList, strings.Join(params, ", ")),
		get:    fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", returning, name),
		list:   fmt.Sprintf("SELECT %s FROM %s ORDER BY id", returning, name),
		update: fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", name, strings.Join(sets, ", "), len(t.Columns)+1),
		delete: fmt.Sprintf("DELETE FROM %s WHERE id = $1 RETURNING %s", name, returning),
	}
}
