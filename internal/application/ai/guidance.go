package ai

// HealthGoal is a named nutritional objective selected by the user.
// Goals outside the closed table contribute nothing to the prompt.
type HealthGoal string

const (
	HealthGoalGeneralWellness   HealthGoal = "General Wellness"
	HealthGoalWeightLoss        HealthGoal = "Weight Loss"
	HealthGoalMuscleGain        HealthGoal = "Muscle Gain"
	HealthGoalHealthMaintenance HealthGoal = "Health Maintenance"
	HealthGoalHeartHealth       HealthGoal = "Heart Health"
)

// healthGoalTarget holds the fixed per-serving targets and guidance
// attached to a health goal.
type healthGoalTarget struct {
	Calories int // kcal ceiling
	ProteinG int // grams floor
	FiberG   int // grams floor
	SodiumMG int // milligrams ceiling
	Guidance string
}

var healthGoalTargets = map[HealthGoal]healthGoalTarget{
	HealthGoalGeneralWellness: {
		Calories: 500, ProteinG: 25, FiberG: 8, SodiumMG: 800,
		Guidance: "Favor a balanced plate of vegetables, lean proteins and whole grains prepared with minimal processing.",
	},
	HealthGoalWeightLoss: {
		Calories: 400, ProteinG: 30, FiberG: 10, SodiumMG: 600,
		Guidance: "Favor high-volume, low-calorie vegetables and lean proteins; grill, steam or roast instead of frying.",
	},
	HealthGoalMuscleGain: {
		Calories: 650, ProteinG: 40, FiberG: 8, SodiumMG: 900,
		Guidance: "Center the dish on a substantial protein source with complex carbohydrates to support training.",
	},
	HealthGoalHealthMaintenance: {
		Calories: 550, ProteinG: 25, FiberG: 8, SodiumMG: 700,
		Guidance: "Keep portions moderate and nutrients balanced; prefer whole ingredients over refined ones.",
	},
	HealthGoalHeartHealth: {
		Calories: 450, ProteinG: 25, FiberG: 10, SodiumMG: 500,
		Guidance: "Limit sodium and saturated fat; favor omega-3 rich fish, olive oil, leafy greens and whole grains.",
	},
}

// ExperienceLevel describes the cook's self-reported experience.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
	ExperienceExpert       ExperienceLevel = "expert"
)

// experienceGuidance maps each experience level to a fixed guidance
// block. Unrecognized levels use the intermediate block.
var experienceGuidance = map[ExperienceLevel]string{
	ExperienceBeginner: `COOK EXPERIENCE: beginner
Write every step in plain language with no assumed technique. Explain visual and
texture cues ("until golden", "until it no longer sticks"), give explicit times and
temperatures, and avoid steps that must happen in parallel.`,

	ExperienceIntermediate: `COOK EXPERIENCE: intermediate
Assume familiarity with everyday techniques (saute, simmer, roast). Keep steps
concise but include times, temperatures and the cues that signal doneness.`,

	ExperienceAdvanced: `COOK EXPERIENCE: advanced
Standard culinary terminology is fine and steps may run in parallel. Focus the
instructions on ratios, timing windows and the decisions that affect the result.`,

	ExperienceExpert: `COOK EXPERIENCE: expert
Be terse. Name techniques without explaining them, trust the cook's judgment on
seasoning and doneness, and feel free to suggest advanced variations.`,
}

func experienceBlock(level ExperienceLevel) string {
	if block, ok := experienceGuidance[level]; ok {
		return block
	}
	return experienceGuidance[ExperienceIntermediate]
}
