package sharing

import "errors"

// errAlreadyLinked aborts a link insert when the user already has one; it
// never leaves the package
var errAlreadyLinked = errors.New("board already linked")
