package domish

import (
	"errors"
)

// Errors.  Parsing is permissive and never fails; these cover misuse of the
// DOM mutation API only.  Each failing mutation is atomic: the tree is left
// untouched when one of these is returned.
var (
	ErrReferenceNotFound = errors.New("reference not found")
	ErrAttributeInUse    = errors.New("attribute already in use")
	ErrHierarchy         = errors.New("node contains its insertion target")
)
