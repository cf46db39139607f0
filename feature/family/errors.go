package family

import "errors"

// Error kinds of the family feature. Callers discriminate with errors.Is;
// every error returned by this package wraps exactly one of these.
var (
	// ErrInvalidInput marks a structural precondition violation: a bad
	// directory, an empty or duplicated element set, or a lookup for an
	// element the family does not contain.
	ErrInvalidInput = errors.New("invalid input")

	// ErrParsing marks a file whose content could not be turned into a
	// record, including the filename heuristic failing to yield an element.
	ErrParsing = errors.New("parsing error")

	// ErrAlreadyExists marks a family label collision at creation time.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotAllowed marks an attempted mutation of an unstored family.
	ErrNotAllowed = errors.New("not allowed")

	// ErrWrongType marks a record whose format tag does not exactly match
	// the family's accepted format.
	ErrWrongType = errors.New("wrong record type")

	// ErrInconsistent marks corruption in the backing store: more than one
	// record for a single element. Distinct from ErrInvalidInput because it
	// signals a broken invariant, not a bad call.
	ErrInconsistent = errors.New("inconsistent store")
)
