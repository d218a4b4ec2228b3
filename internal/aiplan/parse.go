package aiplan

import (
	"encoding/json"
	"strings"

	"github.com/myrjola/liftplan/internal/errors"
)

// aiPlan mirrors the JSON document the model returns.
type aiPlan struct {
	SplitName        string  `json:"splitName"`
	SplitDescription string  `json:"splitDescription"`
	Week             []aiDay `json:"week"`
	Notes            string  `json:"notes"`
}

type aiDay struct {
	Day               string       `json:"day"`
	DayName           string       `json:"dayName"`
	Focus             string       `json:"focus"`
	Exercises         []aiExercise `json:"exercises"`
	EstimatedDuration int          `json:"estimatedDuration"`
}

type aiExercise struct {
	Code  string `json:"code"`
	Sets  int    `json:"sets"`
	Reps  string `json:"reps"`
	Rest  string `json:"rest"`
	Notes string `json:"notes"`
}

// parsePlanResponse extracts the plan from a completion. Models sometimes
// wrap the JSON in markdown fences or prose, so fences are stripped and the
// document is sliced between the outermost braces before unmarshalling.
func parsePlanResponse(raw string) (aiPlan, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	first := strings.Index(cleaned, "{")
	last := strings.LastIndex(cleaned, "}")
	if first == -1 || last == -1 || last < first {
		return aiPlan{}, errors.New("completion contains no JSON object")
	}
	cleaned = cleaned[first : last+1]

	var plan aiPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return aiPlan{}, errors.Wrap(err, "unmarshal plan")
	}
	if len(plan.Week) == 0 {
		return aiPlan{}, errors.New("plan has no training days")
	}
	return plan, nil
}
