package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/arbor/internal/config"
	"github.com/thenoetrevino/arbor/internal/database"
	"github.com/thenoetrevino/arbor/internal/events"
	"github.com/thenoetrevino/arbor/internal/lock"
	"github.com/thenoetrevino/arbor/internal/models"
	"github.com/thenoetrevino/arbor/internal/testutil"
	"github.com/thenoetrevino/arbor/internal/types"
)

func setupApp(t *testing.T) (*App, *testutil.RecordingPublisher) {
	t.Helper()
	rec := testutil.NewRecordingPublisher()
	a := New(testutil.SetupTestStore(t),
		WithEventPublisher(rec),
		WithConfig(config.Default()),
		WithLocker(lock.NewMemoryLocker(5*time.Second)),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	t.Cleanup(func() { _ = a.Close() })
	return a, rec
}

func mustUser(t *testing.T, a *App, username string) *models.User {
	t.Helper()
	u, err := a.CreateUser(context.Background(), CreateUserRequest{Username: username})
	require.NoError(t, err)
	return u
}

func mustRootBoard(t *testing.T, a *App, owner, name string) types.NodeID {
	t.Helper()
	id, err := a.AddRootBoard(context.Background(), models.BoardContent{Name: name}, owner)
	require.NoError(t, err)
	return id
}

func mustChildBoard(t *testing.T, a *App, owner string, group types.NodeID, name string) types.NodeID {
	t.Helper()
	id, err := a.AddChildBoard(context.Background(), models.BoardContent{Name: name}, group, owner)
	require.NoError(t, err)
	return id
}

func rootNames(t *testing.T, a *App, username string) []string {
	t.Helper()
	entries, err := a.GetAllRootBoards(context.Background(), username)
	require.NoError(t, err)
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Board.Name)
	}
	return out
}

func groupNames(t *testing.T, a *App, board types.NodeID, group types.NodeID) []string {
	t.Helper()
	contents, err := a.GetBoardContents(context.Background(), board, "")
	require.NoError(t, err)
	setUp, ok := contents.(*models.SetUp)
	require.True(t, ok, "board %s is not set up", board)
	for _, g := range setUp.Groups {
		if g.Group.ID == group {
			out := make([]string, 0, len(g.Boards))
			for _, b := range g.Boards {
				out = append(out, b.Name)
			}
			return out
		}
	}
	t.Fatalf("group %s not found on board %s", group, board)
	return nil
}

func TestNew_Defaults(t *testing.T) {
	a := New(testutil.SetupTestStore(t))
	require.NotNil(t, a.Lists)
	require.NotNil(t, a.Hierarchy)
	require.NotNil(t, a.Sharing)
	assert.NotNil(t, a.Store())
	assert.Equal(t, config.DefaultGroupNames, a.Config().Boards.DefaultGroups)

	mustUser(t, a, "alice")
	mustRootBoard(t, a, "alice", "Launch")
	assert.NoError(t, a.Close())
}

func TestScenario_RootBoards(t *testing.T) {
	a, _ := setupApp(t)
	mustUser(t, a, "alice")

	assert.Empty(t, rootNames(t, a, "alice"))

	l1 := mustRootBoard(t, a, "alice", "Launch")
	entries, err := a.GetAllRootBoards(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, l1, entries[0].Board.ID)
	assert.Equal(t, "Launch", entries[0].Board.Name)
	assert.False(t, entries[0].IsShared())

	mustRootBoard(t, a, "alice", "A")
	mustRootBoard(t, a, "alice", "B")
	assert.Equal(t, []string{"B", "A", "Launch"}, rootNames(t, a, "alice"))
}

func TestScenario_SetupChildBoardsAndMove(t *testing.T) {
	a, rec := setupApp(t)
	mustUser(t, a, "alice")
	ctx := context.Background()
	l1 := mustRootBoard(t, a, "alice", "Launch")

	groups, err := a.SetupBoard(ctx, l1)
	require.NoError(t, err)
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"Backlog", "Ready", "In Progress", "Done"}, names)

	_, err = a.SetupBoard(ctx, l1)
	assert.ErrorIs(t, err, models.ErrAlreadyInitialized)

	backlog := groups[0].ID
	mustChildBoard(t, a, "alice", backlog, "Fix bug")
	docs := mustChildBoard(t, a, "alice", backlog, "Write docs")
	assert.Equal(t, []string{"Fix bug", "Write docs"}, groupNames(t, a, l1, backlog))

	moved, err := a.MoveBoard(ctx, backlog, docs, backlog, false)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, []string{"Write docs", "Fix bug"}, groupNames(t, a, l1, backlog))

	// already at the head
	moved, err = a.MoveBoard(ctx, backlog, docs, backlog, false)
	require.NoError(t, err)
	assert.False(t, moved)

	assert.Equal(t, []events.EventType{
		events.EventUserCreated,
		events.EventBoardCreated,
		events.EventBoardSetUp,
		events.EventBoardCreated,
		events.EventBoardCreated,
		events.EventBoardMoved,
	}, rec.Types())
}

func TestScenario_Collaborators(t *testing.T) {
	a, rec := setupApp(t)
	mustUser(t, a, "alice")
	mustUser(t, a, "bob")
	ctx := context.Background()
	l1 := mustRootBoard(t, a, "alice", "Launch")
	rec.Reset()

	added, err := a.AddCollaborator(ctx, l1, "bob")
	require.NoError(t, err)
	assert.True(t, added)

	entries, err := a.GetAllRootBoards(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, l1, entries[0].Board.ID)
	assert.Equal(t, "alice", entries[0].SharedFrom)
	assert.Equal(t, []string{"Launch"}, rootNames(t, a, "alice"))

	collaborators, err := a.ListCollaborators(ctx, l1)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, collaborators)

	added, err = a.AddCollaborator(ctx, l1, "bob")
	require.NoError(t, err)
	assert.False(t, added)

	require.NoError(t, a.RemoveCollaborator(ctx, l1, "bob"))
	assert.Empty(t, rootNames(t, a, "bob"))
	assert.Equal(t, []string{"Launch"}, rootNames(t, a, "alice"))

	assert.ErrorIs(t, a.RemoveCollaborator(ctx, l1, "bob"), models.ErrNotFound)
	assert.Equal(t, []events.EventType{events.EventCollaboratorAdded, events.EventCollaboratorRemoved}, rec.Types())
}

func TestAddChildBoard_RoundTrip(t *testing.T) {
	a, _ := setupApp(t)
	mustUser(t, a, "alice")
	ctx := context.Background()
	l1 := mustRootBoard(t, a, "alice", "Launch")
	group, err := a.AddGroup(ctx, l1, "Todo")
	require.NoError(t, err)

	deadline := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	content := models.BoardContent{
		Name:        "  Fix bug ",
		Description: "crash on start",
		Assignee:    "alice",
		Deadline:    &deadline,
		Tags:        []string{"bug", " ", "p1"},
		Public:      true,
	}
	id, err := a.AddChildBoard(ctx, content, group.ID, "alice")
	require.NoError(t, err)

	board, err := a.GetBoard(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Fix bug", board.Name)
	assert.Equal(t, "crash on start", board.Description)
	assert.Equal(t, []string{"bug", "p1"}, board.Tags)
	assert.True(t, board.Public)
	require.NotNil(t, board.Deadline)
	assert.True(t, deadline.Equal(*board.Deadline))
	assert.Equal(t, group.ID, board.ListID)

	contents, err := a.GetBoardContents(ctx, id, "alice")
	require.NoError(t, err)
	header := contents.Header()
	assert.Equal(t, "alice", header.Owner)
	assert.Equal(t, models.AccessOwner, header.Access)
	require.Len(t, header.Ancestors, 1)
	assert.Equal(t, l1, header.Ancestors[0].ID)
	_, notSetUp := contents.(*models.NotSetUp)
	assert.True(t, notSetUp)
}

func TestAddChildBoard_Errors(t *testing.T) {
	a, _ := setupApp(t)
	alice := mustUser(t, a, "alice")
	ctx := context.Background()
	l1 := mustRootBoard(t, a, "alice", "Launch")
	group, err := a.AddGroup(ctx, l1, "Todo")
	require.NoError(t, err)

	tests := []struct {
		name    string
		content models.BoardContent
		group   types.NodeID
		owner   string
		want    error
	}{
		{"empty name", models.BoardContent{Name: "  "}, group.ID, "alice", models.ErrInvalidArgument},
		{"encrypted without key", models.BoardContent{Name: "x", Encrypted: true}, group.ID, "alice", models.ErrInvalidArgument},
		{"unknown group", models.BoardContent{Name: "x"}, "missing", "alice", models.ErrNotFound},
		{"unknown owner", models.BoardContent{Name: "x"}, group.ID, "nobody", models.ErrNotFound},
		{"root list", models.BoardContent{Name: "x"}, alice.RootGroupID, "alice", models.ErrInvalidArgument},
		{"board as group", models.BoardContent{Name: "x"}, l1, "alice", models.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.AddChildBoard(ctx, tt.content, tt.group, tt.owner)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Equal(t, []string{"Launch"}, rootNames(t, a, "alice"))
}

func TestAddRootBoard_UnknownOwner(t *testing.T) {
	a, rec := setupApp(t)
	_, err := a.AddRootBoard(context.Background(), models.BoardContent{Name: "x"}, "nobody")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Empty(t, rec.Events())
}

func TestCreateUser(t *testing.T) {
	a, _ := setupApp(t)
	ctx := context.Background()

	u, err := a.CreateUser(ctx, CreateUserRequest{Username: " alice ", DisplayName: "Alice", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.False(t, u.RootGroupID.IsZero())

	got, err := a.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.DisplayName)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.Equal(t, u.RootGroupID, got.RootGroupID)

	_, err = a.CreateUser(ctx, CreateUserRequest{Username: "alice"})
	assert.ErrorIs(t, err, models.ErrAlreadyExists)

	for _, bad := range []string{"", "a b", string(make([]byte, maxUsernameLength+1))} {
		_, err := a.CreateUser(ctx, CreateUserRequest{Username: bad})
		assert.ErrorIs(t, err, models.ErrInvalidArgument, "username %q", bad)
	}

	users, err := a.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestEditBoard(t *testing.T) {
	a, rec := setupApp(t)
	mustUser(t, a, "alice")
	ctx := context.Background()
	l1 := mustRootBoard(t, a, "alice", "Launch")
	rec.Reset()

	require.NoError(t, a.EditBoard(ctx, l1, models.BoardContent{Name: "Liftoff", Tags: []string{"q4"}}))
	board, err := a.GetBoard(ctx, l1)
	require.NoError(t, err)
	assert.Equal(t, "Liftoff", board.Name)
	assert.Equal(t, []string{"q4"}, board.Tags)
	assert.Equal(t, []string{"Liftoff"}, rootNames(t, a, "alice"))

	assert.ErrorIs(t, a.EditBoard(ctx, "missing", models.BoardContent{Name: "x"}), models.ErrNotFound)
	assert.ErrorIs(t, a.EditBoard(ctx, l1, models.BoardContent{}), models.ErrInvalidArgument)
	assert.Equal(t, []events.EventType{events.EventBoardEdited}, rec.Types())
}

func TestDeleteBoard_CascadesLinksAndEmptyGroups(t *testing.T) {
	a, _ := setupApp(t)
	mustUser(t, a, "alice")
	mustUser(t, a, "bob")
	ctx := context.Background()
	l1 := mustRootBoard(t, a, "alice", "Launch")
	mustRootBoard(t, a, "alice", "Other")
	groups, err := a.SetupBoard(ctx, l1)
	require.NoError(t, err)
	_, err = a.AddCollaborator(ctx, l1, "bob")
	require.NoError(t, err)

	require.NoError(t, a.DeleteBoard(ctx, l1))

	assert.Equal(t, []string{"Other"}, rootNames(t, a, "alice"))
	assert.Empty(t, rootNames(t, a, "bob"))
	_, err = a.GetBoard(ctx, l1)
	assert.ErrorIs(t, err, models.ErrNotFound)
	for _, g := range groups {
		_, err := a.Store().GetNode(ctx, g.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	}

	report, err := a.CheckIntegrity(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, report.Problems())
	_, err = a.CheckIntegrity(ctx, "bob")
	require.NoError(t, err)
}

func TestDeleteBoard_NonEmptyGroupChangesNothing(t *testing.T) {
	a, _ := setupApp(t)
	mustUser(t, a, "alice")
	mustUser(t, a, "bob")
	ctx := context.Background()
	l1 := mustRootBoard(t, a, "alice", "Launch")
	groups, err := a.SetupBoard(ctx, l1)
	require.NoError(t, err)
	mustChildBoard(t, a, "alice", groups[2].ID, "Fix bug")
	_, err = a.AddCollaborator(ctx, l1, "bob")
	require.NoError(t, err)

	err = a.DeleteBoard(ctx, l1)
	assert.ErrorIs(t, err, models.ErrNotEmpty)

	assert.Equal(t, []string{"Launch"}, rootNames(t, a, "alice"))
	assert.Equal(t, []string{"Launch"}, rootNames(t, a, "bob"))
	assert.Equal(t, []string{"Fix bug"}, groupNames(t, a, l1, groups[2].ID))
	contents, err := a.GetBoardContents(ctx, l1, "alice")
	require.NoError(t, err)
	assert.Len(t, contents.(*models.SetUp).Groups, 4)
}

func TestDeleteBoard_Errors(t *testing.T) {
	a, _ := setupApp(t)
	alice := mustUser(t, a, "alice")
	ctx := context.Background()

	assert.ErrorIs(t, a.DeleteBoard(ctx, ""), models.ErrInvalidArgument)
	assert.ErrorIs(t, a.DeleteBoard(ctx, "missing"), models.ErrNotFound)
	assert.ErrorIs(t, a.DeleteBoard(ctx, alice.RootGroupID), models.ErrNotFound)
}

func TestGroups_AddRenameRemove(t *testing.T) {
	a, rec := setupApp(t)
	alice := mustUser(t, a, "alice")
	ctx := context.Background()
	l1 := mustRootBoard(t, a, "alice", "Launch")
	rec.Reset()

	todo, err := a.AddGroup(ctx, l1, "Todo")
	require.NoError(t, err)
	doing, err := a.AddGroup(ctx, l1, "Doing")
	require.NoError(t, err)
	done, err := a.AddGroup(ctx, l1, "Done")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, []int{todo.Order, doing.Order, done.Order})

	// removal leaves a gap; the next group still goes last
	require.NoError(t, a.RemoveGroup(ctx, doing.ID))
	review, err := a.AddGroup(ctx, l1, "Review")
	require.NoError(t, err)
	assert.Equal(t, 3, review.Order)

	require.NoError(t, a.RenameGroup(ctx, todo.ID, "Backlog"))

	contents, err := a.GetBoardContents(ctx, l1, "alice")
	require.NoError(t, err)
	var names []string
	for _, g := range contents.(*models.SetUp).Groups {
		names = append(names, g.Group.Name)
	}
	assert.Equal(t, []string{"Backlog", "Done", "Review"}, names)

	// a board with groups is already set up
	_, err = a.SetupBoard(ctx, l1)
	assert.ErrorIs(t, err, models.ErrAlreadyInitialized)

	mustChildBoard(t, a, "alice", done.ID, "Ship")
	assert.ErrorIs(t, a.RemoveGroup(ctx, done.ID), models.ErrNotEmpty)
	assert.ErrorIs(t, a.RemoveGroup(ctx, alice.RootGroupID), models.ErrInvalidArgument)
	assert.ErrorIs(t, a.RenameGroup(ctx, alice.RootGroupID, "x"), models.ErrInvalidArgument)
	assert.ErrorIs(t, a.RemoveGroup(ctx, "missing"), models.ErrNotFound)
	assert.ErrorIs(t, a.RenameGroup(ctx, todo.ID, " "), models.ErrInvalidArgument)
	_, err = a.AddGroup(ctx, "missing", "x")
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.Equal(t, []events.EventType{
		events.EventGroupCreated,
		events.EventGroupCreated,
		events.EventGroupCreated,
		events.EventGroupRemoved,
		events.EventGroupCreated,
		events.EventGroupRenamed,
		events.EventBoardCreated,
	}, rec.Types())
}

func TestMoveBoard_Errors(t *testing.T) {
	a, _ := setupApp(t)
	mustUser(t, a, "alice")
	ctx := context.Background()
	l1 := mustRootBoard(t, a, "alice", "Launch")
	groups, err := a.SetupBoard(ctx, l1)
	require.NoError(t, err)
	child := mustChildBoard(t, a, "alice", groups[0].ID, "Child")
	childGroup, err := a.AddGroup(ctx, child, "Inner")
	require.NoError(t, err)

	_, err = a.MoveBoard(ctx, groups[0].ID, l1, childGroup.ID, false)
	assert.ErrorIs(t, err, models.ErrCycleRejected)

	_, err = a.MoveBoard(ctx, "alice", child, "alice", false)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	_, err = a.MoveBoard(ctx, "alice", "missing", "alice", true)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = a.MoveBoard(ctx, "", child, "alice", true)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	moved, err := a.MoveBoard(ctx, "alice", child, "alice", true)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, []string{"Child", "Launch"}, rootNames(t, a, "alice"))
}

func TestCheckIntegrity_ReportsBrokenList(t *testing.T) {
	a, _ := setupApp(t)
	alice := mustUser(t, a, "alice")
	ctx := context.Background()
	l1 := mustRootBoard(t, a, "alice", "Launch")
	groups, err := a.SetupBoard(ctx, l1)
	require.NoError(t, err)
	mustChildBoard(t, a, "alice", groups[0].ID, "A")
	mustChildBoard(t, a, "alice", groups[0].ID, "B")

	report, err := a.CheckIntegrity(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, report.Lists, 5)
	assert.Equal(t, alice.RootGroupID, report.Lists[0].ListID)
	assert.Equal(t, 1, report.Lists[0].Boards)

	// cut the backlog chain after its first board
	first, err := a.Store().EdgesFrom(ctx, groups[0].ID, types.EdgeNext)
	require.NoError(t, err)
	second, err := a.Store().EdgesFrom(ctx, first[0].To, types.EdgeNext)
	require.NoError(t, err)
	require.NoError(t, a.Store().DeleteEdge(ctx, second[0].From, types.EdgeNext, second[0].To))

	report, err = a.CheckIntegrity(ctx, "alice")
	assert.ErrorIs(t, err, models.ErrStructuralIntegrity)
	require.NotNil(t, report)
	problems := report.Problems()
	require.Len(t, problems, 1)
	assert.Equal(t, groups[0].ID, problems[0].ListID)
	assert.Equal(t, "Launch", problems[0].Owner)

	_, err = a.CheckIntegrity(ctx, "nobody")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestClassify(t *testing.T) {
	a, _ := setupApp(t)

	assert.NoError(t, a.classify("op", nil))

	err := a.classify("op", assert.AnError)
	assert.ErrorIs(t, err, models.ErrStorage)
	assert.NotErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), assert.AnError.Error())

	assert.ErrorIs(t, a.classify("op", context.Canceled), context.Canceled)
	assert.Equal(t, models.ErrNotEmpty, a.classify("op", models.ErrNotEmpty))
}

func TestCanceledContextPassesThrough(t *testing.T) {
	a, _ := setupApp(t)
	mustUser(t, a, "alice")
	l1 := mustRootBoard(t, a, "alice", "Launch")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := a.SetupBoard(ctx, l1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// flakyUserStore fails every user lookup with a driver-level error
type flakyUserStore struct {
	database.NodeStore
}

var errUserTable = errors.New("users table is locked")

func (s flakyUserStore) GetUser(ctx context.Context, username string) (*models.User, error) {
	return nil, errUserTable
}

func (s flakyUserStore) WithTx(ctx context.Context, fn func(tx database.NodeStore) error) error {
	return s.NodeStore.WithTx(ctx, func(tx database.NodeStore) error {
		return fn(flakyUserStore{tx})
	})
}

func TestCreateUser_LookupFailureIsNotMistakenForAbsence(t *testing.T) {
	store := testutil.SetupTestStore(t)
	a := New(flakyUserStore{store}, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	_, err := a.CreateUser(context.Background(), CreateUserRequest{Username: "alice"})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrStorage)
	assert.Contains(t, err.Error(), errUserTable.Error())

	users, err := store.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestReorderGroup(t *testing.T) {
	a, rec := setupApp(t)
	alice := mustUser(t, a, "alice")
	ctx := context.Background()
	l1 := mustRootBoard(t, a, "alice", "Launch")

	todo, err := a.AddGroup(ctx, l1, "Todo")
	require.NoError(t, err)
	doing, err := a.AddGroup(ctx, l1, "Doing")
	require.NoError(t, err)
	done, err := a.AddGroup(ctx, l1, "Done")
	require.NoError(t, err)
	rec.Reset()

	groupOrder := func() []string {
		t.Helper()
		contents, err := a.GetBoardContents(ctx, l1, "alice")
		require.NoError(t, err)
		var names []string
		for _, g := range contents.(*models.SetUp).Groups {
			names = append(names, g.Group.Name)
		}
		return names
	}

	require.NoError(t, a.ReorderGroup(ctx, done.ID, 0))
	// Done and Todo share position 0 and fall back to id order
	want := []string{"Done", "Todo"}
	if todo.ID < done.ID {
		want = []string{"Todo", "Done"}
	}
	assert.Equal(t, append(want, "Doing"), groupOrder())

	require.NoError(t, a.ReorderGroup(ctx, todo.ID, 5))
	assert.Equal(t, []string{"Done", "Doing", "Todo"}, groupOrder())
	assert.Equal(t, []events.EventType{events.EventGroupReordered, events.EventGroupReordered}, rec.Types())

	assert.ErrorIs(t, a.ReorderGroup(ctx, doing.ID, -1), models.ErrInvalidArgument)
	assert.ErrorIs(t, a.ReorderGroup(ctx, alice.RootGroupID, 1), models.ErrInvalidArgument)
	assert.ErrorIs(t, a.ReorderGroup(ctx, "missing", 1), models.ErrNotFound)
	assert.ErrorIs(t, a.ReorderGroup(ctx, "", 1), models.ErrInvalidArgument)
}
