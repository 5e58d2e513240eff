package list

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/arbor/internal/database"
	"github.com/thenoetrevino/arbor/internal/lock"
	"github.com/thenoetrevino/arbor/internal/models"
	"github.com/thenoetrevino/arbor/internal/testutil"
	"github.com/thenoetrevino/arbor/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupService(t *testing.T) (*service, *database.Repository) {
	t.Helper()
	store := testutil.SetupTestStore(t)
	svc := NewService(store, lock.NewMemoryLocker(10*time.Second), 1000).(*service)
	return svc, store
}

// createUser creates a user node with its root list
func createUser(t *testing.T, svc *service, store *database.Repository, username string) *models.User {
	t.Helper()
	ctx := context.Background()
	var user *models.User
	err := store.WithTx(ctx, func(tx database.NodeStore) error {
		node := &models.Node{Kind: types.KindUser, Name: username}
		if err := tx.CreateNode(ctx, node); err != nil {
			return err
		}
		root, err := svc.CreateList(ctx, tx, node.ID, username, 0)
		if err != nil {
			return err
		}
		user = &models.User{Username: username, NodeID: node.ID, RootGroupID: root.ID}
		return tx.CreateUser(ctx, user)
	})
	require.NoError(t, err)
	return user
}

// addBoard inserts a board at the head of a root list or the tail of a group
func addBoard(t *testing.T, svc *service, parent models.ParentRef, name string) types.NodeID {
	t.Helper()
	req := InsertRequest{
		Parent: parent,
		Node:   &models.Node{Kind: types.KindBoard, Content: models.BoardContent{Name: name}},
	}
	var (
		id  types.NodeID
		err error
	)
	if parent.IsRoot() {
		id, err = svc.InsertAtHead(context.Background(), req)
	} else {
		id, err = svc.InsertAtTail(context.Background(), req)
	}
	require.NoError(t, err)
	return id
}

// addGroup attaches a new group to a board
func addGroup(t *testing.T, svc *service, store *database.Repository, board types.NodeID, name string, order int) types.NodeID {
	t.Helper()
	ctx := context.Background()
	var group *models.Group
	err := store.WithTx(ctx, func(tx database.NodeStore) error {
		var err error
		group, err = svc.CreateList(ctx, tx, board, name, order)
		return err
	})
	require.NoError(t, err)
	return group.ID
}

// names walks a list and returns board names in chain order
func names(t *testing.T, svc *service, listID types.NodeID) []string {
	t.Helper()
	nodes, err := svc.Walk(context.Background(), listID)
	require.NoError(t, err)
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Name)
	}
	return out
}

func requireValid(t *testing.T, svc *service, lists ...types.NodeID) {
	t.Helper()
	for _, l := range lists {
		require.NoError(t, svc.Verify(context.Background(), l), "list %s", l)
	}
}
