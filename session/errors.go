package session

import "errors"

// ErrNothingToUndo is returned by Undo when the command log is empty.
var ErrNothingToUndo = errors.New("session: nothing to undo")
