package mealplan

// SubstitutionEnvelope bounds what an external substitution collaborator
// may return for one meal slot: the remaining budget headroom for the meal
// and the nutrition profile the substitute should hit. The engine computes
// the envelope and validates candidates against it but never calls the
// collaborator itself.
type SubstitutionEnvelope struct {
	MaxCostEUR     float64 `json:"max_cost"`
	TargetCalories float64 `json:"target_calories"`
	TargetProteinG float64 `json:"target_protein_g"`
	TargetCarbsG   float64 `json:"target_carbs_g"`
	TargetFatsG    float64 `json:"target_fats_g"`
}
