package services

import (
	"fmt"
	"log"
)

// ErrorPolicy says what a caller does when an operation fails.
type ErrorPolicy int

const (
	// PolicyBlock aborts the request and reports the failure.
	PolicyBlock ErrorPolicy = iota
	// PolicyWarn logs the failure, attaches a warning to the response and carries on.
	PolicyWarn
	// PolicyIgnore logs the failure and carries on silently.
	PolicyIgnore
)

func (p ErrorPolicy) String() string {
	switch p {
	case PolicyWarn:
		return "warn"
	case PolicyIgnore:
		return "ignore"
	default:
		return "block"
	}
}

// Operation names a step that may degrade instead of failing the request. Plain CRUD and the
// stats endpoints are not listed: their failures always block.
type Operation string

const (
	// OpRelationJoin covers the customer and room loads behind the joined booking view.
	OpRelationJoin Operation = "relation_join"
	// OpAvailabilityQuery covers the standalone availability endpoint.
	OpAvailabilityQuery Operation = "availability_query"
	// OpAvailabilityOnWrite covers the overlap check run by confirmed writes.
	OpAvailabilityOnWrite Operation = "availability_on_write"
	// OpPriceDerivation covers the room rate lookup used to fill an empty total_price.
	OpPriceDerivation Operation = "price_derivation"
)

// PolicyTable maps operations to policies. Operations missing from the table block.
type PolicyTable map[Operation]ErrorPolicy

// DefaultPolicies returns a fresh copy of the production table.
func DefaultPolicies() PolicyTable {
	return PolicyTable{
		OpRelationJoin:        PolicyBlock,
		OpAvailabilityQuery:   PolicyBlock,
		OpAvailabilityOnWrite: PolicyWarn,
		OpPriceDerivation:     PolicyBlock,
	}
}

func (t PolicyTable) For(op Operation) ErrorPolicy {
	if p, ok := t[op]; ok {
		return p
	}
	return PolicyBlock
}

// Resolve applies the policy for op to err. It returns err unchanged under PolicyBlock, and a
// nil error under the other two; PolicyWarn also returns the warning to attach to the response.
func (t PolicyTable) Resolve(op Operation, err error) (string, error) {
	if err == nil {
		return "", nil
	}
	switch t.For(op) {
	case PolicyWarn:
		log.Printf("⚠️  %s failed: %v", op, err)
		return fmt.Sprintf("%s failed: %s", op, err.Error()), nil
	case PolicyIgnore:
		log.Printf("%s failed (ignored): %v", op, err)
		return "", nil
	default:
		return "", err
	}
}
