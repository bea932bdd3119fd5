package team

import "pokebattle-core/pkg/rng"

// Gender is a creature's rolled gender.
type Gender int

const (
	GenderMale Gender = iota
	GenderFemale
	GenderGenderless
)

// String renders a Gender for logging/event payloads.
func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "genderless"
	}
}

// PickGender implements spec.md section 4.3 step 5: a species with no male
// ratio is Genderless; otherwise roll uniform 0..1000 and compare to
// 10*ratio (ratio expressed as a 0-100 percentage, so 10*ratio spans the
// same 0-1000 range as the roll).
func PickGender(maleRatioPercent *int, r rng.RNG) Gender {
	if maleRatioPercent == nil {
		return GenderGenderless
	}
	roll := r.UniformMultiHit(0, 1000)
	threshold := 10 * *maleRatioPercent
	if roll < threshold {
		return GenderMale
	}
	return GenderFemale
}
