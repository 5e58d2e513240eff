package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/arbor/internal/models"
	"github.com/thenoetrevino/arbor/internal/types"
)

// ListReport is the verification result of one chain
type ListReport struct {
	ListID types.NodeID
	// Owner names the board owning the list, or the user for the root list
	Owner  string
	Boards int
	Links  int
	Err    error
}

// IntegrityReport covers every list reachable from a user's root list
// through the user's own boards
type IntegrityReport struct {
	Username string
	Lists    []ListReport
}

// Problems returns the lists that failed verification
func (r *IntegrityReport) Problems() []ListReport {
	var out []ListReport
	for _, l := range r.Lists {
		if l.Err != nil {
			out = append(out, l)
		}
	}
	return out
}

// CheckIntegrity verifies every chain in username's tree. The report is
// returned even when problems are found; the error then matches
// models.ErrStructuralIntegrity.
func (a *App) CheckIntegrity(ctx context.Context, username string) (*IntegrityReport, error) {
	const op = "check integrity"
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	user, err := a.store.GetUser(ctx, username)
	if err != nil {
		return nil, a.classify(op, err)
	}

	type pending struct {
		id    types.NodeID
		owner string
	}
	report := &IntegrityReport{Username: username}
	queue := []pending{{id: user.RootGroupID, owner: username}}
	seen := map[types.NodeID]bool{user.RootGroupID: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		entry := ListReport{ListID: cur.id, Owner: cur.owner}

		if err := a.Lists.Verify(ctx, cur.id); err != nil {
			if !errors.Is(err, models.ErrStructuralIntegrity) {
				return nil, a.classify(op, err)
			}
			entry.Err = err
		}
		// a broken chain still yields whatever is reachable
		nodes, err := a.Lists.Walk(ctx, cur.id)
		if err != nil && !errors.Is(err, models.ErrStructuralIntegrity) {
			return nil, a.classify(op, err)
		}
		for _, n := range nodes {
			switch n.Kind {
			case types.KindLink:
				entry.Links++
			case types.KindBoard:
				entry.Boards++
				groups, err := a.Hierarchy.Groups(ctx, n.ID)
				if err != nil {
					return nil, a.classify(op, err)
				}
				for _, g := range groups {
					if !seen[g.ID] {
						seen[g.ID] = true
						queue = append(queue, pending{id: g.ID, owner: n.Content.Name})
					}
				}
			}
		}
		report.Lists = append(report.Lists, entry)
	}

	if problems := report.Problems(); len(problems) > 0 {
		a.logger.Error("integrity check failed", "username", username, "lists", len(report.Lists), "broken", len(problems))
		return report, fmt.Errorf("%d of %d lists under %q: %w", len(problems), len(report.Lists), username, models.ErrStructuralIntegrity)
	}
	a.logger.Debug("integrity check passed", "username", username, "lists", len(report.Lists))
	return report, nil
}
