package queries

import (
	"errors"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/services"
	"consolidation/internal/pkg/guard"
)

var (
	ErrDetectLoadConflictsQueryIsNotConstructed = errors.New(
		"DetectLoadConflictsQuery must be created via NewDetectLoadConflictsQuery constructor",
	)
)

// DetectLoadConflictsQuery asks for a human-readable list of scheduling and
// handling concerns within one load. An unknown load id yields an empty
// conflict list rather than an error.
//
// Example:
//
//	query, err := NewDetectLoadConflictsQuery(loadID, services.OptionOverrides{})
//	if err != nil {
//	    return err
//	}
//
//	resp, err := handler.Handle(ctx, query)
//	for _, conflict := range resp.Conflicts {
//	    fmt.Println(conflict)
//	}
type DetectLoadConflictsQuery struct { //nolint:recvcheck //using for validation
	loadID    kernel.UUID
	overrides services.OptionOverrides

	guard guard.ConstructorGuard
}

// NewDetectLoadConflictsQuery creates a conflict inspection query for the
// given load.
func NewDetectLoadConflictsQuery(
	loadID kernel.UUID,
	overrides services.OptionOverrides,
) (DetectLoadConflictsQuery, error) {
	query := DetectLoadConflictsQuery{
		overrides: overrides,
		guard:     guard.NewConstructorGuard(),
	}

	if err := query.setLoadID(loadID); err != nil {
		return DetectLoadConflictsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrDetectLoadConflictsQueryIsNotConstructed if validation fails.
func (q DetectLoadConflictsQuery) Validate() error {
	return q.guard.Validate(ErrDetectLoadConflictsQueryIsNotConstructed)
}

// LoadID returns the identifier of the load being inspected.
func (q DetectLoadConflictsQuery) LoadID() kernel.UUID {
	return q.loadID
}

// Overrides returns the per-call threshold overrides.
func (q DetectLoadConflictsQuery) Overrides() services.OptionOverrides {
	return q.overrides
}

func (q *DetectLoadConflictsQuery) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}
	q.loadID = loadID
	return nil
}

// DetectLoadConflictsQueryResponse carries the conflict descriptions in
// detection order. Conflicts is never nil.
type DetectLoadConflictsQueryResponse struct {
	Conflicts []string
}
