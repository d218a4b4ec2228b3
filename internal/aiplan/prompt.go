package aiplan

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/myrjola/liftplan/internal/planner"
)

// systemPrompt instructs the model to act as a strength coach and to answer
// with a single JSON document matching the schema in parse.go.
const systemPrompt = `You are an elite personal trainer with 20 years of experience coaching olympic athletes, bodybuilders, and recreational lifters.

## YOUR ROLE:
You build personalized training plans based on periodization, biomechanics, and exercise physiology.

## KEY RULES (MANDATORY):

### 1. ONLY THE PROVIDED EXERCISES (CRITICAL!)
- Use ONLY exercises from the "AVAILABLE EXERCISES" section
- COPY the exact "code" from the list, never modify or translate it
- Do NOT invent exercises that are not on the list
- EVERY exercise in the plan MUST use a code from the list
- If you need an exercise that is missing, pick the closest alternative FROM THE LIST

### 2. SPLIT CHOICE (by days per week)
- 2 days: Full Body x2
- 3 days: Full Body x3 OR Push/Pull/Legs
- 4 days: Upper/Lower x2 OR Push/Pull/Legs/Upper
- 5 days: Push/Pull/Legs/Upper/Lower OR Upper/Lower/Push/Pull/Legs
- 6 days: Push/Pull/Legs x2

### 3. SESSION STRUCTURE (ORDER)
1. tier="optimal" + mechanics="compound" exercises ALWAYS first
2. Then tier="optimal" + mechanics="isolation"
3. Then tier="standard" compound
4. Then tier="standard" isolation
5. Core work last so it does not fatigue the stabilizers early

### 3a. TIER PRIORITY (MANDATORY!)
- tier="optimal" are the best exercises, use MAINLY these
- tier="standard" fill the gaps when optimal runs out
- tier="alternative" only as a last resort
- At least 60% of every session should be tier="optimal"

### 4. SET COUNTS (HIERARCHY OF CONSTRAINTS!)
Decide set counts in this order of importance:

STEP 1: SESSION TIME, the hard ceiling
- under 45 min: aim at 2-3 sets
- 45-60 min: standard 3 sets
- 60-75 min: 3-4 sets
- over 75 min: 4-5 sets allowed, especially for compounds

STEP 2: EXPERIENCE, recovery capacity
- beginner: 2-3 sets, more is junk volume
- intermediate: 3-4 sets
- advanced: 4-5 sets

STEP 3: GOAL
- strength: 3-5 sets, classic 5x5 territory
- mass: 3-4 sets
- reduction: 3-4 sets
- endurance: 2-3 sets at high reps
- recomposition: 3-4 sets

STEP 4: FATIGUE TOLERANCE
- low: subtract one set from the standard
- medium: standard
- high: one extra set on the main lifts when time allows

STEP 5: MECHANICS
- compound: more sets (3-5)
- isolation: fewer sets (2-3)

### 4a. REPS BY GOAL (INDEPENDENT OF SETS!)
- strength: 3-6 reps, NEVER above 8
- mass: 8-12 reps
- reduction: 12-15 reps
- endurance: 15-20+ reps
- recomposition: 8-12 reps

### 4b. HEAVY COMPOUND LIFTS (CRITICAL!)
Never program 12-15+ reps for heavy barbell lifts
(deadlift, squat, bench_press, overhead_press, barbell_row, hip_thrust,
romanian_deadlift, leg_press, hack_squat, good_morning, t_bar_row).
Caps: strength 4-6, mass 6-10, reduction 10-12, endurance 12-15, recomposition 8-10.

### 5. SESSION TIME FIT
- 30 min: 4-5 exercises, short rests
- 45 min: 5-6 exercises
- 60 min: 6-7 exercises
- 75 min: 7-8 exercises
- 90 min: 8-10 exercises
When the pool is small, prefer fewer exercises with more sets over padding
the session with weak choices.

### 6. UNILATERAL PREFERENCE
When preferUnilateral=true favor single-limb variants and dumbbells over
barbells where a substitute exists.

### 7. FOCUS BODY
When a focus area is set, raise its volume by 30-50% and schedule those
exercises earlier in the session.

### 8. WEAK POINTS
Add 1-2 extra exercises for listed weak points and place them early while
energy is highest.

## RESPONSE FORMAT (MANDATORY):
Return ONLY raw JSON without markdown fences.
Use EXACTLY this structure, with "day" set to the English weekday name:

{
  "splitName": "Name of the split",
  "splitDescription": "Short reasoning for the split",
  "week": [
    {
      "day": "Monday",
      "dayName": "Push Day",
      "focus": "Chest, Shoulders, Triceps",
      "exercises": [
        {
          "code": "barbell_bench_press",
          "sets": 4,
          "reps": "8-10",
          "rest": "90s",
          "notes": "Main lift, add weight weekly"
        }
      ],
      "estimatedDuration": 55
    }
  ],
  "notes": "Extra guidance for the user"
}`

// promptExercise is the catalog shape shown to the model. It carries only
// the fields the model needs to choose and order exercises.
type promptExercise struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Muscle     string `json:"muscle"`
	Mechanics  string `json:"mechanics"`
	Tier       string `json:"tier"`
	Equipment  string `json:"equipment"`
	Unilateral bool   `json:"unilateral"`
}

var tierOrder = map[planner.Tier]int{
	planner.TierOptimal:     0,
	planner.TierStandard:    1,
	planner.TierAlternative: 2,
}

var mechanicsOrder = map[planner.Mechanics]int{
	planner.MechanicsCompound:  0,
	planner.MechanicsIsolation: 1,
	planner.MechanicsCardio:    2,
}

// sortForPrompt orders exercises optimal before standard before alternative,
// compounds before isolations, so the model sees the best options first.
func sortForPrompt(eligible []planner.Exercise) []planner.Exercise {
	sorted := make([]planner.Exercise, len(eligible))
	copy(sorted, eligible)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := promptTierRank(sorted[i].Tier), promptTierRank(sorted[j].Tier)
		if ti != tj {
			return ti < tj
		}
		return promptMechanicsRank(sorted[i].Mechanics) < promptMechanicsRank(sorted[j].Mechanics)
	})
	return sorted
}

func promptTierRank(t planner.Tier) int {
	if rank, ok := tierOrder[t]; ok {
		return rank
	}
	return 2
}

func promptMechanicsRank(m planner.Mechanics) int {
	if rank, ok := mechanicsOrder[m]; ok {
		return rank
	}
	return 1
}

// buildUserPrompt renders the profile, catalog statistics, the allowed code
// list, and the grouped catalog into the user message.
func buildUserPrompt(p planner.Profile, eligible []planner.Exercise, days []time.Weekday) (string, error) {
	sorted := sortForPrompt(eligible)

	grouped := make(map[string][]promptExercise)
	allCodes := make([]string, 0, len(sorted))
	optimalCount, standardCount, compoundCount := 0, 0, 0
	for _, ex := range sorted {
		part := ex.BodyPart
		if part == "" {
			part = "OTHER"
		}
		grouped[part] = append(grouped[part], promptExercise{
			Code:       ex.Code,
			Name:       ex.Name,
			Muscle:     ex.PrimaryMuscle,
			Mechanics:  string(ex.Mechanics),
			Tier:       string(ex.Tier),
			Equipment:  ex.Equipment,
			Unilateral: ex.Unilateral,
		})
		allCodes = append(allCodes, ex.Code)
		switch ex.Tier {
		case planner.TierOptimal:
			optimalCount++
		case planner.TierStandard:
			standardCount++
		}
		if ex.Mechanics == planner.MechanicsCompound {
			compoundCount++
		}
	}

	catalogJSON, err := json.MarshalIndent(grouped, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal catalog: %w", err)
	}

	parts := make([]string, 0, len(grouped))
	for part := range grouped {
		parts = append(parts, part)
	}
	sort.Strings(parts)
	partCounts := make([]string, 0, len(parts))
	for _, part := range parts {
		partCounts = append(partCounts, fmt.Sprintf("%s: %d", part, len(grouped[part])))
	}

	dayNames := make([]string, 0, len(days))
	for _, d := range days {
		dayNames = append(dayNames, d.String())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## USER PROFILE:\n")
	fmt.Fprintf(&b, "- Goal: %s\n", p.Goal)
	fmt.Fprintf(&b, "- Experience: %s\n", p.Experience)
	fmt.Fprintf(&b, "- Training days: %d days/week on %s\n", p.DaysPerWeek, strings.Join(dayNames, ", "))
	fmt.Fprintf(&b, "- Session time: %d minutes\n", p.SessionTime)
	fmt.Fprintf(&b, "- Injuries: %s\n", listOrNone(p.Injuries))
	fmt.Fprintf(&b, "- Focus body: %s\n", p.FocusBody)
	fmt.Fprintf(&b, "- Weak points: %s\n", listOrNone(p.WeakPoints))
	fmt.Fprintf(&b, "- Fatigue tolerance: %s\n", p.FatigueTolerance)
	fmt.Fprintf(&b, "- Prefer unilateral exercises: %s\n", yesNo(p.PreferUnilateral))

	fmt.Fprintf(&b, "\n## CATALOG STATISTICS:\n")
	fmt.Fprintf(&b, "- Total available: %d\n", len(sorted))
	fmt.Fprintf(&b, "- tier=\"optimal\" (PRIORITY): %d\n", optimalCount)
	fmt.Fprintf(&b, "- tier=\"standard\": %d\n", standardCount)
	fmt.Fprintf(&b, "- Compound exercises: %d\n", compoundCount)
	fmt.Fprintf(&b, "- Per body part: %s\n", strings.Join(partCounts, ", "))

	fmt.Fprintf(&b, "\n## ALLOWED CODES (COPY EXACTLY):\n%s\n", strings.Join(allCodes, ", "))
	fmt.Fprintf(&b, "\n## AVAILABLE EXERCISES (sorted by tier, optimal first):\n%s\n", catalogJSON)

	fmt.Fprintf(&b, "\n## TASK:\nBuild a training plan for %d days per week.\n\n", p.DaysPerWeek)
	fmt.Fprintf(&b, "EXERCISE SELECTION RULES:\n")
	fmt.Fprintf(&b, "1. Use ONLY codes from \"ALLOWED CODES\" above\n")
	fmt.Fprintf(&b, "2. Prioritize tier=\"optimal\" exercises (min 60%% of every session)\n")
	fmt.Fprintf(&b, "3. Start every session with compound lifts\n")
	fmt.Fprintf(&b, "4. Pick sets/reps for the goal %q\n", p.Goal)
	fmt.Fprintf(&b, "5. Keep each session close to %d minutes\n", p.SessionTime)
	fmt.Fprintf(&b, "\nReturn ONLY raw JSON matching the format.")

	return b.String(), nil
}

func listOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}

func yesNo(v bool) string {
	if v {
		return "YES"
	}
	return "NO"
}
