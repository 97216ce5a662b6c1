package knowledge

import "errors"

// Load errors.
var (
	ErrBaseFileTooLarge = errors.New("knowledge base file exceeds maximum size")
	ErrUnknownDeck      = errors.New("unknown deck style")
)

// Validation errors. Wrapped with entry detail by Validate.
var (
	ErrTriadShape     = errors.New("triad has invalid shape")
	ErrDyadShape      = errors.New("dyad has invalid shape")
	ErrJourneyShape   = errors.New("journey stages have invalid shape")
	ErrStageShape     = errors.New("progression stages have invalid shape")
	ErrLineageShape   = errors.New("court lineage has invalid shape")
	ErrDeckShape      = errors.New("deck style has invalid shape")
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrMissingPassage = errors.New("missing passage entry")
	ErrOrphanPassage  = errors.New("passage entry has no owner")
)
