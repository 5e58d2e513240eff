package list

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/arbor/internal/database"
	"github.com/thenoetrevino/arbor/internal/models"
	"github.com/thenoetrevino/arbor/internal/types"
)

type chainReader interface {
	database.NodeReader
	database.EdgeReader
}

// Walk returns the members of a list in chain order, End excluded. It takes
// no lock: a view taken mid-mutation may be missing nodes but never repeats
// one, and never walks further than the configured depth.
func (s *service) Walk(ctx context.Context, listID types.NodeID) ([]*models.Node, error) {
	return walk(ctx, s.store, listID, s.maxDepth)
}

func walk(ctx context.Context, r chainReader, listID types.NodeID, maxDepth int) ([]*models.Node, error) {
	owner, err := r.GetNode(ctx, listID)
	if err != nil {
		return nil, err
	}
	if owner.Kind != types.KindGroup {
		return nil, fmt.Errorf("%s is not a list owner: %w", listID, models.ErrNotFound)
	}

	members, err := r.ListMembers(ctx, listID)
	if err != nil {
		return nil, err
	}
	byID := make(map[types.NodeID]models.ChainMember, len(members))
	for _, m := range members {
		byID[m.Node.ID] = m
	}

	head, err := r.EdgesFrom(ctx, listID, types.EdgeNext)
	if err != nil {
		return nil, err
	}
	if len(head) == 0 {
		return nil, nil
	}

	var (
		out     []*models.Node
		visited = make(map[types.NodeID]bool, len(members))
		cur     = head[0].To
	)
	for hops := 0; hops < maxDepth; hops++ {
		m, ok := byID[cur]
		if !ok || visited[cur] || m.Node.IsEnd() {
			break
		}
		visited[cur] = true
		out = append(out, m.Node)
		cur = m.Next
	}
	return out, nil
}

// Verify checks that a list is exactly one chain from its owner to its End
// sentinel, visiting every member once. Any deviation is reported as
// ErrStructuralIntegrity.
func (s *service) Verify(ctx context.Context, listID types.NodeID) error {
	return verify(ctx, s.store, listID, s.maxDepth)
}

func verify(ctx context.Context, r chainReader, listID types.NodeID, maxDepth int) error {
	if _, err := r.GetNode(ctx, listID); err != nil {
		return err
	}
	members, err := r.ListMembers(ctx, listID)
	if err != nil {
		return err
	}
	byID := make(map[types.NodeID]models.ChainMember, len(members))
	for _, m := range members {
		byID[m.Node.ID] = m
	}

	end, err := r.FindEnd(ctx, listID)
	if err != nil {
		return err
	}
	if next := byID[end].Next; !next.IsZero() {
		return fmt.Errorf("list %s: end %s has successor %s: %w", listID, end, next, models.ErrStructuralIntegrity)
	}

	cur, err := successor(ctx, r, listID)
	if err != nil {
		return fmt.Errorf("list %s: %w", listID, err)
	}

	visited := make(map[types.NodeID]bool, len(members))
	for hops := 0; ; hops++ {
		if hops > maxDepth {
			return fmt.Errorf("list %s exceeds %d hops: %w", listID, maxDepth, models.ErrStructuralIntegrity)
		}
		m, ok := byID[cur]
		if !ok {
			return fmt.Errorf("list %s: %s is not a member: %w", listID, cur, models.ErrStructuralIntegrity)
		}
		if visited[cur] {
			return fmt.Errorf("list %s: cycle at %s: %w", listID, cur, models.ErrStructuralIntegrity)
		}
		visited[cur] = true
		if cur == end {
			break
		}
		if m.Next.IsZero() {
			return fmt.Errorf("list %s: %s has no successor: %w", listID, cur, models.ErrStructuralIntegrity)
		}
		cur = m.Next
	}

	if len(visited) != len(members) {
		return fmt.Errorf("list %s: %d of %d members reachable: %w",
			listID, len(visited), len(members), models.ErrStructuralIntegrity)
	}
	return nil
}
