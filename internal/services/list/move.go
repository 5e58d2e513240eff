package list

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/arbor/internal/database"
	"github.com/thenoetrevino/arbor/internal/lock"
	"github.com/thenoetrevino/arbor/internal/models"
	"github.com/thenoetrevino/arbor/internal/types"
)

// Move detaches a board or link and reattaches it after the target, possibly
// in another list. It reports whether anything changed: moving a node after
// itself or after its current predecessor is a no-op.
func (s *service) Move(ctx context.Context, req MoveRequest) (bool, error) {
	if req.Host.IsZero() || req.NodeID.IsZero() || req.TargetID.IsZero() {
		return false, fmt.Errorf("move needs host, node and target: %w", models.ErrInvalidArgument)
	}
	for attempt := 0; attempt < maxLockAttempts; attempt++ {
		moved, err := s.moveOnce(ctx, req)
		if !errors.Is(err, errListChanged) {
			return moved, err
		}
	}
	return false, fmt.Errorf("move %s: %w: %v", req.NodeID, models.ErrLockTimeout, errListChanged)
}

func (s *service) moveOnce(ctx context.Context, req MoveRequest) (bool, error) {
	node, err := s.store.GetNode(ctx, req.NodeID)
	if err != nil {
		return false, err
	}
	if node.Kind != types.KindBoard && node.Kind != types.KindLink {
		return false, fmt.Errorf("move %s: %w: %v", node.ID, models.ErrInvalidArgument, errNotMember)
	}
	if node.ID == req.TargetID {
		return false, nil
	}

	hostKey, hostUser, err := resolveHost(ctx, s.store, req.Host)
	if err != nil {
		return false, err
	}
	destList, _, err := resolveTarget(ctx, s.store, req.TargetID)
	if err != nil {
		return false, err
	}

	keys := []string{lock.ListKey(node.ListID), lock.ListKey(destList)}
	if node.Kind == types.KindBoard && !req.IsRoot && destList != node.ListID {
		keys = append(keys, lock.NestedMoveKey)
	}
	release, err := lock.AcquireAll(ctx, s.locker, hostKey, keys...)
	if err != nil {
		return false, err
	}
	defer release()

	var moved bool
	err = s.store.WithTx(ctx, func(tx database.NodeStore) error {
		current, err := tx.GetNode(ctx, node.ID)
		if err != nil {
			return err
		}
		dest, after, err := resolveTarget(ctx, tx, req.TargetID)
		if err != nil {
			return err
		}
		if current.ListID != node.ListID || dest != destList {
			return errListChanged
		}

		owner, err := rootOwner(ctx, tx, dest)
		if err != nil {
			return err
		}
		if err := checkDestination(current, owner, hostUser, req.IsRoot); err != nil {
			return err
		}
		if current.Kind == types.KindBoard && owner == nil {
			inside, err := groupWithin(ctx, tx, dest, current.ID, s.maxDepth)
			if err != nil {
				return err
			}
			if inside {
				return fmt.Errorf("move %s into its own subtree: %w", current.ID, models.ErrCycleRejected)
			}
		}

		pred, err := predecessor(ctx, tx, current.ID)
		if err != nil {
			return err
		}
		if pred == after {
			return nil
		}

		if err := splice(ctx, tx, current.ID); err != nil {
			return err
		}
		next, err := successor(ctx, tx, after)
		if err != nil {
			return err
		}
		if err := tx.DeleteEdge(ctx, after, types.EdgeNext, next); err != nil {
			return err
		}
		if err := tx.CreateEdge(ctx, models.Edge{From: after, Type: types.EdgeNext, To: current.ID}); err != nil {
			return err
		}
		if err := tx.CreateEdge(ctx, models.Edge{From: current.ID, Type: types.EdgeNext, To: next}); err != nil {
			return err
		}
		if dest != current.ListID {
			if err := tx.SetListID(ctx, current.ID, dest); err != nil {
				return err
			}
		}
		moved = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return moved, nil
}

// checkDestination enforces where a node may land: root moves are hosted by
// a user and land in that user's root list, nested moves go into a board's
// group, and links only ever live in root lists
func checkDestination(node *models.Node, owner, hostUser *models.User, isRoot bool) error {
	destIsRoot := owner != nil
	if node.Kind == types.KindLink && !destIsRoot {
		return fmt.Errorf("link %s can only live in a root list: %w", node.ID, models.ErrInvalidArgument)
	}
	if isRoot != destIsRoot {
		return fmt.Errorf("root move flag %t does not match destination: %w", isRoot, models.ErrInvalidArgument)
	}
	if isRoot && hostUser == nil {
		return fmt.Errorf("root move of %s needs a user host: %w", node.ID, models.ErrInvalidArgument)
	}
	if isRoot && owner.Username != hostUser.Username {
		return fmt.Errorf("root list of %s is not hosted by %s: %w", owner.Username, hostUser.Username, models.ErrInvalidArgument)
	}
	return nil
}

// resolveHost returns the lock key of the move host and, when the host is a
// user (given by node id or username), that user
func resolveHost(ctx context.Context, r database.NodeStore, host types.NodeID) (string, *models.User, error) {
	n, err := r.GetNode(ctx, host)
	if errors.Is(err, models.ErrNotFound) {
		u, uerr := r.GetUser(ctx, string(host))
		if uerr != nil {
			return "", nil, fmt.Errorf("host %s: %w", host, models.ErrNotFound)
		}
		return lock.NodeKey(u.NodeID), u, nil
	}
	if err != nil {
		return "", nil, err
	}
	if n.Kind == types.KindUser {
		u, err := r.GetUserByNode(ctx, n.ID)
		if err != nil {
			return "", nil, err
		}
		return lock.NodeKey(n.ID), u, nil
	}
	return lock.NodeKey(n.ID), nil, nil
}

// resolveTarget maps a move target to the destination list and the node the
// moved node will follow
func resolveTarget(ctx context.Context, r database.NodeStore, target types.NodeID) (types.NodeID, types.NodeID, error) {
	n, err := r.GetNode(ctx, target)
	if errors.Is(err, models.ErrNotFound) {
		u, uerr := r.GetUser(ctx, string(target))
		if uerr != nil {
			return "", "", fmt.Errorf("target %s: %w", target, models.ErrNotFound)
		}
		return u.RootGroupID, u.RootGroupID, nil
	}
	if err != nil {
		return "", "", err
	}

	switch n.Kind {
	case types.KindBoard, types.KindLink:
		return n.ListID, n.ID, nil
	case types.KindGroup:
		return n.ID, n.ID, nil
	case types.KindUser:
		u, err := r.GetUserByNode(ctx, n.ID)
		if err != nil {
			return "", "", err
		}
		return u.RootGroupID, u.RootGroupID, nil
	default:
		return "", "", fmt.Errorf("cannot move after %s %s: %w", n.Kind, n.ID, models.ErrInvalidArgument)
	}
}

// rootOwner returns the user owning groupID as their root list, or nil when
// the group belongs to a board
func rootOwner(ctx context.Context, r database.NodeStore, groupID types.NodeID) (*models.User, error) {
	parents, err := r.EdgesTo(ctx, groupID, types.EdgeChildGroup)
	if err != nil {
		return nil, err
	}
	if len(parents) != 1 {
		return nil, fmt.Errorf("group %s has %d parents: %w", groupID, len(parents), models.ErrStructuralIntegrity)
	}
	parent, err := r.GetNode(ctx, parents[0].From)
	if err != nil {
		return nil, err
	}
	if parent.Kind != types.KindUser {
		return nil, nil
	}
	return r.GetUserByNode(ctx, parent.ID)
}

// groupWithin reports whether groupID sits somewhere below boardID
func groupWithin(ctx context.Context, r database.NodeStore, groupID, boardID types.NodeID, maxDepth int) (bool, error) {
	cur := groupID
	for hops := 0; hops < maxDepth; hops++ {
		parents, err := r.EdgesTo(ctx, cur, types.EdgeChildGroup)
		if err != nil {
			return false, err
		}
		if len(parents) == 0 {
			return false, nil
		}
		if parents[0].From == boardID {
			return true, nil
		}
		parent, err := r.GetNode(ctx, parents[0].From)
		if err != nil {
			return false, err
		}
		if parent.Kind != types.KindBoard {
			return false, nil
		}
		cur = parent.ListID
	}
	return false, fmt.Errorf("ancestry of %s exceeds %d hops: %w", groupID, maxDepth, models.ErrStructuralIntegrity)
}
