package list

import "errors"

var (
	// errListChanged means the node moved to another list between the
	// unlocked read and lock acquisition; the operation re-resolves and retries
	errListChanged = errors.New("list changed while waiting for lock")

	// errNotMember rejects structural operations on groups, users and sentinels
	errNotMember = errors.New("node is not a board or link")
)

// maxLockAttempts bounds how often Delete and Move re-resolve a node's list
// after losing a race for it
const maxLockAttempts = 3
