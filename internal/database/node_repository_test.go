package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/arbor/internal/models"
	"github.com/thenoetrevino/arbor/internal/types"
)

func TestCreateAndGetBoard(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	group, _ := seedList(t, repo, "Backlog")

	deadline := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	n := &models.Node{
		Kind:   types.KindBoard,
		ListID: group,
		Content: models.BoardContent{
			Name:        "Q3 Roadmap",
			Description: "planning",
			Assignee:    "alice",
			Deadline:    &deadline,
			Tags:        []string{"ops", "q3"},
			Public:      true,
		},
	}
	require.NoError(t, repo.CreateNode(ctx, n))
	assert.False(t, n.ID.IsZero(), "id should be generated")

	got, err := repo.GetNode(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, types.KindBoard, got.Kind)
	assert.Equal(t, group, got.ListID)
	assert.Equal(t, "Q3 Roadmap", got.Name)
	assert.Equal(t, "Q3 Roadmap", got.Content.Name)
	assert.Equal(t, "planning", got.Content.Description)
	assert.Equal(t, []string{"ops", "q3"}, got.Content.Tags)
	assert.True(t, got.Content.Public)
	require.NotNil(t, got.Content.Deadline)
	assert.WithinDuration(t, deadline, *got.Content.Deadline, time.Second)
}

func TestCreateNode_PresetID(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	n := &models.Node{ID: "fixed-id", Kind: types.KindGroup, Name: "Done"}
	require.NoError(t, repo.CreateNode(ctx, n))

	got, err := repo.GetNode(ctx, "fixed-id")
	require.NoError(t, err)
	assert.Equal(t, "Done", got.Name)
	assert.True(t, got.ListID.IsZero())
}

func TestCreateNode_InvalidKind(t *testing.T) {
	repo := setupTestRepo(t)
	err := repo.CreateNode(context.Background(), &models.Node{Kind: "widget"})
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestGetNode_NotFound(t *testing.T) {
	repo := setupTestRepo(t)
	_, err := repo.GetNode(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateBoardContent(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	group, _ := seedList(t, repo, "Backlog")
	id := seedBoard(t, repo, group, "old")

	err := repo.UpdateBoardContent(ctx, id, models.BoardContent{Name: "new", Tags: []string{"x"}})
	require.NoError(t, err)

	got, err := repo.GetNode(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Content.Name)
	assert.Equal(t, []string{"x"}, got.Content.Tags)
	assert.Nil(t, got.Content.Deadline)
	assert.Equal(t, group, got.ListID, "content edits must not move the board")

	err = repo.UpdateBoardContent(ctx, group, models.BoardContent{Name: "nope"})
	assert.ErrorIs(t, err, models.ErrNotFound, "groups are not boards")
}

func TestRenameAndDeleteNode(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	group, _ := seedList(t, repo, "Backlog")

	require.NoError(t, repo.RenameNode(ctx, group, "Icebox"))
	got, err := repo.GetNode(ctx, group)
	require.NoError(t, err)
	assert.Equal(t, "Icebox", got.Name)

	require.NoError(t, repo.DeleteNode(ctx, group))
	assert.ErrorIs(t, repo.DeleteNode(ctx, group), models.ErrNotFound)
	assert.ErrorIs(t, repo.RenameNode(ctx, group, "x"), models.ErrNotFound)
}

func TestListMembers(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	group, end := seedList(t, repo, "Backlog")
	a := seedBoard(t, repo, group, "A")

	// group -> a -> end
	require.NoError(t, repo.DeleteEdge(ctx, group, types.EdgeNext, end))
	require.NoError(t, repo.CreateEdge(ctx, models.Edge{From: group, Type: types.EdgeNext, To: a}))
	require.NoError(t, repo.CreateEdge(ctx, models.Edge{From: a, Type: types.EdgeNext, To: end}))

	members, err := repo.ListMembers(ctx, group)
	require.NoError(t, err)
	require.Len(t, members, 2)

	next := map[types.NodeID]types.NodeID{}
	for _, m := range members {
		next[m.Node.ID] = m.Next
	}
	assert.Equal(t, end, next[a])
	assert.True(t, next[end].IsZero(), "end has no successor")
}

func TestFindEnd(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	group, end := seedList(t, repo, "Backlog")

	got, err := repo.FindEnd(ctx, group)
	require.NoError(t, err)
	assert.Equal(t, end, got)

	_, err = repo.FindEnd(ctx, "no-such-list")
	assert.ErrorIs(t, err, models.ErrStructuralIntegrity)

	require.NoError(t, repo.CreateNode(ctx, &models.Node{Kind: types.KindEnd, ListID: group}))
	_, err = repo.FindEnd(ctx, group)
	assert.ErrorIs(t, err, models.ErrStructuralIntegrity)
}

func TestNextEdgesAreUnique(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	group, end := seedList(t, repo, "Backlog")
	a := seedBoard(t, repo, group, "A")

	err := repo.CreateEdge(ctx, models.Edge{From: group, Type: types.EdgeNext, To: a})
	assert.Error(t, err, "second successor must be rejected")

	err = repo.CreateEdge(ctx, models.Edge{From: a, Type: types.EdgeNext, To: end})
	assert.Error(t, err, "second predecessor must be rejected")

	// other edge types are unconstrained
	require.NoError(t, repo.CreateEdge(ctx, models.Edge{From: group, Type: types.EdgeChildGroup, To: a}))
}

func TestDeleteEdge_Missing(t *testing.T) {
	repo := setupTestRepo(t)
	err := repo.DeleteEdge(context.Background(), "x", types.EdgeNext, "y")
	assert.ErrorIs(t, err, models.ErrStructuralIntegrity)
}

func TestEdgesFromOrderedByOrder(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateEdge(ctx, models.Edge{From: "b", Type: types.EdgeChildGroup, To: "g2", Order: 2}))
	require.NoError(t, repo.CreateEdge(ctx, models.Edge{From: "b", Type: types.EdgeChildGroup, To: "g1", Order: 1}))
	require.NoError(t, repo.CreateEdge(ctx, models.Edge{From: "b", Type: types.EdgeChildGroup, To: "g0", Order: 2}))

	edges, err := repo.EdgesFrom(ctx, "b", types.EdgeChildGroup)
	require.NoError(t, err)
	require.Len(t, edges, 3)
	assert.Equal(t, types.NodeID("g1"), edges[0].To)
	assert.Equal(t, types.NodeID("g0"), edges[1].To)
	assert.Equal(t, types.NodeID("g2"), edges[2].To)

	require.NoError(t, repo.UpdateEdgeOrder(ctx, "b", types.EdgeChildGroup, "g2", 0))
	edges, err = repo.EdgesFrom(ctx, "b", types.EdgeChildGroup)
	require.NoError(t, err)
	assert.Equal(t, types.NodeID("g2"), edges[0].To)

	incoming, err := repo.EdgesTo(ctx, "g1", types.EdgeChildGroup)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, types.NodeID("b"), incoming[0].From)
}

func TestFindLinks(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	root, _ := seedList(t, repo, "bob")

	link := &models.Node{Kind: types.KindLink, ListID: root}
	require.NoError(t, repo.CreateNode(ctx, link))
	require.NoError(t, repo.CreateEdge(ctx, models.Edge{From: link.ID, Type: types.EdgeSharedBoard, To: "board-1"}))

	ids, err := repo.FindLinks(ctx, root, "board-1")
	require.NoError(t, err)
	assert.Equal(t, []types.NodeID{link.ID}, ids)

	ids, err = repo.FindLinks(ctx, root, "board-2")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	boom := errors.New("boom")

	var created types.NodeID
	err := repo.WithTx(ctx, func(tx NodeStore) error {
		n := &models.Node{Kind: types.KindGroup, Name: "temp"}
		if err := tx.CreateNode(ctx, n); err != nil {
			return err
		}
		created = n.ID
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repo.GetNode(ctx, created)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestWithTx_Commits(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	var created types.NodeID
	err := repo.WithTx(ctx, func(tx NodeStore) error {
		n := &models.Node{Kind: types.KindGroup, Name: "kept"}
		if err := tx.CreateNode(ctx, n); err != nil {
			return err
		}
		created = n.ID
		// nested calls join the outer transaction
		return tx.WithTx(ctx, func(inner NodeStore) error {
			return inner.RenameNode(ctx, created, "renamed")
		})
	})
	require.NoError(t, err)

	got, err := repo.GetNode(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
}

func TestUsers(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	u := &models.User{Username: "alice", NodeID: "u-alice", RootGroupID: "g-alice", DisplayName: "Alice"}
	require.NoError(t, repo.CreateUser(ctx, u))
	assert.False(t, u.CreatedAt.IsZero())

	err := repo.CreateUser(ctx, &models.User{Username: "alice", NodeID: "u-other", RootGroupID: "g-other"})
	assert.ErrorIs(t, err, models.ErrAlreadyExists)

	got, err := repo.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, types.NodeID("g-alice"), got.RootGroupID)
	assert.Equal(t, "Alice", got.DisplayName)

	byNode, err := repo.GetUserByNode(ctx, "u-alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", byNode.Username)

	_, err = repo.GetUser(ctx, "nobody")
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, repo.CreateUser(ctx, &models.User{Username: "bob", NodeID: "u-bob", RootGroupID: "g-bob"}))
	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}
