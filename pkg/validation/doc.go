// Package validation enforces the battle engine's caller contract (spec.md
// section 7, "Contract violations by caller").
//
// This package ensures the three points where a caller can violate the
// contract are checked before the engine does any work: constructing a
// battle from an empty team, referencing an empty move slot, and ticking
// with the wrong number of pending actions.
//
// # Creating a validator
//
// Create a ContractValidator once and reuse it across battles:
//
//	validator := validation.NewContractValidator()
//
// # Validating a precondition
//
// Check a precondition before acting on caller input:
//
//	err := validator.Validate("pushAction", validation.PushActionParams{MoveSlot: 0, MoveID: "tackle"})
//	if err != nil {
//	    return fmt.Errorf("invalid action: %w", err)
//	}
//
// # Supported methods
//
//   - construct: team roster non-empty
//   - pushAction: move slot in range and non-empty
//   - tick: exactly one pending action per team on a non-first tick
package validation
