package validation

import "fmt"

// ContractValidator enforces the battle engine's caller contract (spec.md
// section 7). It maintains a registry of validation functions per method,
// grounded on the teacher's InputValidator: a map from method name to a
// validation function, the same registry-of-validators-by-method shape,
// repurposed here from JSON-RPC method params to engine-contract
// preconditions.
type ContractValidator struct {
	validators map[string]func(interface{}) error
}

// NewContractValidator builds a ContractValidator with every known
// precondition registered.
func NewContractValidator() *ContractValidator {
	v := &ContractValidator{validators: make(map[string]func(interface{}) error)}
	v.registerValidators()
	return v
}

// Validate runs the named precondition's check against params. An unknown
// method name is itself a contract violation: nothing in pkg/battle should
// ever call Validate with a name this package doesn't register.
func (v *ContractValidator) Validate(method string, params interface{}) error {
	validator, exists := v.validators[method]
	if !exists {
		return fmt.Errorf("validation: unknown contract method %q", method)
	}
	return validator(params)
}

func (v *ContractValidator) registerValidators() {
	v.validators["construct"] = v.validateConstruct
	v.validators["pushAction"] = v.validatePushAction
	v.validators["tick"] = v.validateTick
}

// ConstructParams is the precondition input for battle construction
// (spec.md section 6 "Construct"): each team must supply at least one
// creature, and every species referenced must resolve in the species dex.
type ConstructParams struct {
	TeamLabel      string
	CreatureCount  int
	UnknownSpecies string // empty when every species in the team resolved
}

func (v *ContractValidator) validateConstruct(params interface{}) error {
	p, ok := params.(ConstructParams)
	if !ok {
		return fmt.Errorf("validation: construct expects ConstructParams")
	}
	if p.CreatureCount == 0 {
		return fmt.Errorf("validation: team %s has no creatures", p.TeamLabel)
	}
	if p.UnknownSpecies != "" {
		return fmt.Errorf("validation: team %s references unknown species %q", p.TeamLabel, p.UnknownSpecies)
	}
	return nil
}

// PushActionParams is the precondition input for PushAction (spec.md
// section 6 "Push action"): the move slot must be in range and must hold a
// move identifier.
type PushActionParams struct {
	TeamLabel string
	MoveSlot  int
	MoveID    string // empty string means the slot is unset
}

func (v *ContractValidator) validatePushAction(params interface{}) error {
	p, ok := params.(PushActionParams)
	if !ok {
		return fmt.Errorf("validation: pushAction expects PushActionParams")
	}
	if p.MoveSlot < 0 || p.MoveSlot > 3 {
		return fmt.Errorf("validation: team %s referenced move slot %d out of range [0,3]", p.TeamLabel, p.MoveSlot)
	}
	if p.MoveID == "" {
		return fmt.Errorf("validation: team %s referenced empty move slot %d", p.TeamLabel, p.MoveSlot)
	}
	return nil
}

// TickParams is the precondition input for Tick (spec.md section 6
// "Tick"): on any turn after the first, exactly one action per team must
// be pending.
type TickParams struct {
	Started      bool
	PendingCount int
}

func (v *ContractValidator) validateTick(params interface{}) error {
	p, ok := params.(TickParams)
	if !ok {
		return fmt.Errorf("validation: tick expects TickParams")
	}
	if p.Started && p.PendingCount != 2 {
		return fmt.Errorf("validation: tick requires exactly one pending action per team, got %d", p.PendingCount)
	}
	return nil
}
