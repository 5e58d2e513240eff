package cli

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/arbor/internal/cli/styles"
	"github.com/thenoetrevino/arbor/internal/models"
)

// BoardView is the printable form of a board. The encryption key is never
// printed.
type BoardView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Assignee    string     `json:"assignee,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Public      bool       `json:"public"`
	Encrypted   bool       `json:"encrypted"`
	SharedFrom  string     `json:"shared_from,omitempty"`
}

// NewBoardView projects a board for output
func NewBoardView(b *models.Board) BoardView {
	return BoardView{
		ID:          b.ID.String(),
		Name:        b.Name,
		Description: b.Description,
		Assignee:    b.Assignee,
		Deadline:    b.Deadline,
		Tags:        b.Tags,
		Public:      b.Public,
		Encrypted:   b.Encrypted,
	}
}

// GetID implements IDGetter
func (v BoardView) GetID() string { return v.ID }

// Human implements HumanReadable
func (v BoardView) Human() string {
	return styles.RenderCard(v.details())
}

func (v BoardView) details() string {
	lines := []string{
		styles.TitleStyle.Render(v.Name) + " " + styles.SubtitleStyle.Render(v.ID),
	}
	if v.SharedFrom != "" {
		lines = append(lines, styles.SharedStyle.Render("shared by "+v.SharedFrom))
	}
	if v.Description != "" {
		lines = append(lines, "", v.Description, "")
	}
	if v.Assignee != "" {
		lines = append(lines, styles.Field("Assignee", v.Assignee))
	}
	if v.Deadline != nil {
		lines = append(lines, styles.Field("Deadline", v.Deadline.Format(DeadlineLayout)))
	}
	if len(v.Tags) > 0 {
		lines = append(lines, styles.Field("Tags", strings.Join(v.Tags, ", ")))
	}
	var flags []string
	if v.Public {
		flags = append(flags, "public")
	}
	if v.Encrypted {
		flags = append(flags, "encrypted")
	}
	if len(flags) > 0 {
		lines = append(lines, styles.Field("Flags", strings.Join(flags, ", ")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// line renders a board as one list entry
func (v BoardView) line() string {
	out := "• " + styles.ValueStyle.Render(v.Name) + " " + styles.SubtitleStyle.Render(v.ID)
	if v.SharedFrom != "" {
		out += " " + styles.SharedStyle.Render("(shared by "+v.SharedFrom+")")
	}
	return out
}

// GroupView is a group with its boards in chain order
type GroupView struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Order  int         `json:"order"`
	Boards []BoardView `json:"boards"`
}

// GetID implements IDGetter
func (v GroupView) GetID() string { return v.ID }

// Human implements HumanReadable
func (v GroupView) Human() string {
	return fmt.Sprintf("✓ Group '%s' at position %d %s", v.Name, v.Order, styles.SubtitleStyle.Render(v.ID))
}

// ContentsView is the printable form of a board read
type ContentsView struct {
	Board     BoardView   `json:"board"`
	Owner     string      `json:"owner"`
	Access    string      `json:"access"`
	Ancestors []BoardView `json:"ancestors"`
	SetUp     bool        `json:"set_up"`
	Groups    []GroupView `json:"groups"`
}

// NewContentsView projects either variant of board contents for output
func NewContentsView(c models.BoardContents) ContentsView {
	h := c.Header()
	view := ContentsView{
		Board:     NewBoardView(h.Board),
		Owner:     h.Owner,
		Access:    h.Access.String(),
		Ancestors: make([]BoardView, 0, len(h.Ancestors)),
		Groups:    []GroupView{},
	}
	for _, a := range h.Ancestors {
		view.Ancestors = append(view.Ancestors, NewBoardView(a))
	}
	if setUp, ok := c.(*models.SetUp); ok {
		view.SetUp = true
		for _, g := range setUp.Groups {
			gv := GroupView{ID: g.Group.ID.String(), Name: g.Group.Name, Order: g.Group.Order, Boards: []BoardView{}}
			for _, b := range g.Boards {
				gv.Boards = append(gv.Boards, NewBoardView(b))
			}
			view.Groups = append(view.Groups, gv)
		}
	}
	return view
}

// GetID implements IDGetter
func (v ContentsView) GetID() string { return v.Board.ID }

// Human implements HumanReadable
func (v ContentsView) Human() string {
	var path []string
	for _, a := range v.Ancestors {
		path = append(path, a.Name)
	}
	path = append(path, v.Board.Name)

	lines := []string{
		styles.SubtitleStyle.Render(v.Owner + " / " + strings.Join(path, " / ")),
		v.Board.details(),
		styles.Field("Access", v.Access),
	}
	if !v.SetUp {
		lines = append(lines, "", styles.SubtitleStyle.Render("Not set up. Run: arbor board setup --id "+v.Board.ID))
		return styles.RenderCard(lipgloss.JoinVertical(lipgloss.Left, lines...))
	}
	for _, g := range v.Groups {
		lines = append(lines, styles.SectionStyle.Render(fmt.Sprintf("%s (%d)", g.Name, len(g.Boards)))+" "+styles.SubtitleStyle.Render(g.ID))
		for _, b := range g.Boards {
			lines = append(lines, "  "+b.line())
		}
	}
	return styles.RenderCard(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RootListView is a user's root list
type RootListView struct {
	Username string      `json:"username"`
	Boards   []BoardView `json:"boards"`
}

// NewRootListView projects root entries for output
func NewRootListView(username string, entries []models.RootEntry) RootListView {
	view := RootListView{Username: username, Boards: make([]BoardView, 0, len(entries))}
	for _, e := range entries {
		b := NewBoardView(e.Board)
		b.SharedFrom = e.SharedFrom
		view.Boards = append(view.Boards, b)
	}
	return view
}

// Human implements HumanReadable
func (v RootListView) Human() string {
	if len(v.Boards) == 0 {
		return fmt.Sprintf("No boards for %s", v.Username)
	}
	lines := []string{styles.TitleStyle.Render(fmt.Sprintf("Boards of %s (%d)", v.Username, len(v.Boards)))}
	for _, b := range v.Boards {
		lines = append(lines, b.line())
	}
	return strings.Join(lines, "\n")
}

// GroupsView lists groups created on a board
type GroupsView struct {
	BoardID string      `json:"board_id"`
	Groups  []GroupView `json:"groups"`
}

// NewGroupsView projects groups for output
func NewGroupsView(boardID string, groups []*models.Group) GroupsView {
	view := GroupsView{BoardID: boardID, Groups: make([]GroupView, 0, len(groups))}
	for _, g := range groups {
		view.Groups = append(view.Groups, GroupView{ID: g.ID.String(), Name: g.Name, Order: g.Order, Boards: []BoardView{}})
	}
	return view
}

// Human implements HumanReadable
func (v GroupsView) Human() string {
	lines := []string{fmt.Sprintf("✓ %d groups on board %s", len(v.Groups), v.BoardID)}
	for _, g := range v.Groups {
		lines = append(lines, fmt.Sprintf("  %d. %s %s", g.Order, g.Name, styles.SubtitleStyle.Render(g.ID)))
	}
	return strings.Join(lines, "\n")
}

// Message is a result with an optional id and a one-line human message
type Message struct {
	ID   string `json:"id,omitempty"`
	Text string `json:"message"`
}

// GetID implements IDGetter
func (m Message) GetID() string { return m.ID }

// Human implements HumanReadable
func (m Message) Human() string { return "✓ " + m.Text }
