package planner

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestPickSplit(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantKey string
	}{
		{
			name:    "beginner two days",
			profile: Profile{Experience: ExperienceBeginner, Goal: GoalStrength, DaysPerWeek: 2},
			wantKey: "FBW_2",
		},
		{
			name:    "beginner four days",
			profile: Profile{Experience: ExperienceBeginner, Goal: GoalMass, DaysPerWeek: 4},
			wantKey: "ULUL_4",
		},
		{
			name:    "intermediate mass three days",
			profile: Profile{Experience: ExperienceIntermediate, Goal: GoalMass, DaysPerWeek: 3},
			wantKey: "PPL_3",
		},
		{
			name:    "intermediate endurance three days",
			profile: Profile{Experience: ExperienceIntermediate, Goal: GoalEndurance, DaysPerWeek: 3},
			wantKey: "FBW_3",
		},
		{
			name:    "advanced six days",
			profile: Profile{Experience: ExperienceAdvanced, Goal: GoalMass, DaysPerWeek: 6},
			wantKey: "PPL_6",
		},
		{
			name:    "upper focus four days",
			profile: Profile{Experience: ExperienceIntermediate, Goal: GoalMass, DaysPerWeek: 4, FocusBody: FocusUpper},
			wantKey: "UPPER_FOCUS_4",
		},
		{
			name:    "lower focus five days",
			profile: Profile{Experience: ExperienceAdvanced, Goal: GoalMass, DaysPerWeek: 5, FocusBody: FocusLower},
			wantKey: "LOWER_FOCUS_5",
		},
		{
			name:    "core focus ignores day count",
			profile: Profile{Experience: ExperienceIntermediate, Goal: GoalMass, DaysPerWeek: 5, FocusBody: FocusCore},
			wantKey: "CORE_FOCUS_3",
		},
		{
			name: "lower back injury overrides lower focus",
			profile: Profile{
				Experience: ExperienceIntermediate, Goal: GoalMass, DaysPerWeek: 4,
				FocusBody: FocusLower, Injuries: []string{"lower_back"},
			},
			wantKey: "MODIFIED_PP_4",
		},
		{
			name: "herniated disc three days",
			profile: Profile{
				Experience: ExperienceAdvanced, Goal: GoalStrength, DaysPerWeek: 3,
				Injuries: []string{"herniated_disc"},
			},
			wantKey: "FBW_3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pickSplit(tt.profile)
			if got.Key != tt.wantKey {
				t.Errorf("pickSplit() = %s, want %s", got.Key, tt.wantKey)
			}
		})
	}
}

func TestSelectTrainingDays(t *testing.T) {
	tests := []struct {
		name      string
		needed    int
		preferred []time.Weekday
		want      []time.Weekday
	}{
		{
			name:   "default three day spread",
			needed: 3,
			want:   []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		},
		{
			name:   "default two day spread",
			needed: 2,
			want:   []time.Weekday{time.Monday, time.Thursday},
		},
		{
			name:      "exact preferred days kept in week order",
			needed:    3,
			preferred: []time.Weekday{time.Friday, time.Monday, time.Wednesday},
			want:      []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		},
		{
			name:      "too many preferred days spread evenly",
			needed:    2,
			preferred: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday},
			want:      []time.Weekday{time.Monday, time.Wednesday},
		},
		{
			name:      "too few preferred days topped up",
			needed:    3,
			preferred: []time.Weekday{time.Saturday},
			want:      []time.Weekday{time.Monday, time.Tuesday, time.Saturday},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectTrainingDays(tt.needed, tt.preferred)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SelectTrainingDays() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculateSessionPlan(t *testing.T) {
	tests := []struct {
		name        string
		sessionTime int
		goal        Goal
		experience  Experience
		wantCount   int
	}{
		{name: "one hour mass intermediate", sessionTime: 60, goal: GoalMass, experience: ExperienceIntermediate, wantCount: 5},
		{name: "short strength beginner floors at three", sessionTime: 30, goal: GoalStrength, experience: ExperienceBeginner, wantCount: 3},
		{name: "long endurance advanced", sessionTime: 90, goal: GoalEndurance, experience: ExperienceAdvanced, wantCount: 9},
		{name: "45 minutes strength intermediate", sessionTime: 45, goal: GoalStrength, experience: ExperienceIntermediate, wantCount: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateSessionPlan(tt.sessionTime, tt.goal, tt.experience)
			if got.ExerciseCount != tt.wantCount {
				t.Errorf("ExerciseCount = %d, want %d", got.ExerciseCount, tt.wantCount)
			}
			if got.CompoundCount+got.IsolationCount != got.ExerciseCount {
				t.Errorf("compound %d + isolation %d != total %d",
					got.CompoundCount, got.IsolationCount, got.ExerciseCount)
			}
			if got.CompoundCount < got.IsolationCount && tt.goal != GoalEndurance {
				t.Errorf("compounds %d outnumbered by isolations %d", got.CompoundCount, got.IsolationCount)
			}
		})
	}
}
