package models

import (
	"errors"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/arbor/internal/types"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Unique(t *testing.T) {
	for i, a := range Taxonomy {
		for j, b := range Taxonomy {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"bare", ErrNotEmpty, ErrNotEmpty},
		{"wrapped", fmt.Errorf("remove group g1: %w", ErrNotEmpty), ErrNotEmpty},
		{"double wrapped", fmt.Errorf("op: %w", fmt.Errorf("inner: %w", ErrCycleRejected)), ErrCycleRejected},
		{"foreign", errors.New("disk full"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}

// ============================================================================
// Access Level Tests
// ============================================================================

func TestAccessLevel(t *testing.T) {
	tests := []struct {
		level AccessLevel
		name  string
		read  bool
		write bool
	}{
		{AccessNone, "none", false, false},
		{AccessPublic, "public", true, false},
		{AccessCollaborator, "collaborator", true, true},
		{AccessOwner, "owner", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.level.String())
			assert.Equal(t, tt.read, tt.level.CanRead())
			assert.Equal(t, tt.write, tt.level.CanWrite())
		})
	}
}

// ============================================================================
// Struct Tests
// ============================================================================

func TestBoardContent_Normalize(t *testing.T) {
	got := BoardContent{
		Name:          "  Launch ",
		Description:   "\tq4 ",
		Assignee:      " alice",
		Tags:          []string{" web", "", "  ", "api "},
		EncryptionKey: "dropped without the encrypted flag",
	}.Normalize()

	assert.Equal(t, "Launch", got.Name)
	assert.Equal(t, "q4", got.Description)
	assert.Equal(t, "alice", got.Assignee)
	assert.Equal(t, []string{"web", "api"}, got.Tags)
	assert.Empty(t, got.EncryptionKey)

	encrypted := BoardContent{Name: "x", Encrypted: true, EncryptionKey: "k"}.Normalize()
	assert.Equal(t, "k", encrypted.EncryptionKey)
}

func TestBoardFromNode(t *testing.T) {
	now := time.Now()
	n := &Node{
		ID:        "b1",
		Kind:      types.KindBoard,
		ListID:    "g1",
		Content:   BoardContent{Name: "Launch", Public: true},
		CreatedAt: now,
		UpdatedAt: now,
	}

	b := BoardFromNode(n)
	assert.Equal(t, types.NodeID("b1"), b.ID)
	assert.Equal(t, types.NodeID("g1"), b.ListID)
	assert.Equal(t, "Launch", b.Name)
	assert.True(t, b.Public)
	assert.True(t, n.IsBoard())
	assert.False(t, n.IsLink())
	assert.False(t, n.IsEnd())

	var missing *Node
	assert.False(t, missing.IsBoard())
}

func TestGroup_Less(t *testing.T) {
	groups := []*Group{
		{ID: "c", Order: 2},
		{ID: "b", Order: 0},
		{ID: "a", Order: 2},
		{ID: "d", Order: 1},
	}
	slices.SortFunc(groups, func(x, y *Group) int {
		if x.Less(y) {
			return -1
		}
		if y.Less(x) {
			return 1
		}
		return 0
	})

	ids := make([]types.NodeID, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []types.NodeID{"b", "d", "a", "c"}, ids)
}

func TestParentRef(t *testing.T) {
	assert.True(t, UserParent("alice").IsRoot())
	assert.False(t, GroupParent("g1").IsRoot())
}

func TestRootEntry_IsShared(t *testing.T) {
	assert.False(t, RootEntry{Board: &Board{ID: "b1"}}.IsShared())
	assert.True(t, RootEntry{Board: &Board{ID: "b1"}, LinkID: "l1", SharedFrom: "alice"}.IsShared())
}
