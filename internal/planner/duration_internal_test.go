package planner

import (
	"testing"
	"time"
)

func TestEstimateExerciseTime(t *testing.T) {
	tests := []struct {
		name string
		ex   ConfiguredExercise
		want time.Duration
	}{
		{
			name: "four sets with 90s rests",
			ex:   ConfiguredExercise{Sets: 4, Rest: "90s"},
			// 4*50s work + 4*90s rest + 90s setup.
			want: 650 * time.Second,
		},
		{
			name: "rest range averaged",
			ex:   ConfiguredExercise{Sets: 3, Rest: "90-120s"},
			want: time.Duration(3*50+3*105+90) * time.Second,
		},
		{
			name: "unparseable rest defaults to 90s",
			ex:   ConfiguredExercise{Sets: 2, Rest: "as needed"},
			want: time.Duration(2*50+2*60+90) * time.Second,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateExerciseTime(tt.ex); got != tt.want {
				t.Errorf("EstimateExerciseTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFitToDurationGrows(t *testing.T) {
	// Two small exercises land far below a 60 minute session; the fitter has
	// to add compound sets first.
	exercises := []ConfiguredExercise{
		{Exercise: Exercise{Code: "barbell_squat", Mechanics: MechanicsCompound}, Sets: 3, Rest: "90s"},
		{Exercise: Exercise{Code: "leg_curl", Mechanics: MechanicsIsolation}, Sets: 3, Rest: "60s"},
	}

	fitted, minutes := fitToDuration(exercises, 60, GoalMass, ExperienceIntermediate)

	if float64(minutes) < 60*0.85 {
		t.Errorf("day = %d min, want at least 51", minutes)
	}
	if fitted[0].Sets <= 3 {
		t.Errorf("compound sets = %d, want grown above 3", fitted[0].Sets)
	}
	if fitted[0].Sets > 10 {
		t.Errorf("compound sets = %d, exceeds the absolute cap", fitted[0].Sets)
	}
}

func TestFitToDurationShrinks(t *testing.T) {
	// Seven heavy exercises overflow a 30 minute session; isolation work is
	// trimmed before compounds, and never below 2 sets.
	var exercises []ConfiguredExercise
	for i := range 7 {
		mech := MechanicsIsolation
		if i < 3 {
			mech = MechanicsCompound
		}
		exercises = append(exercises, ConfiguredExercise{
			Exercise: Exercise{Mechanics: mech}, Sets: 5, Rest: "90-120s",
		})
	}

	fitted, minutes := fitToDuration(exercises, 30, GoalMass, ExperienceIntermediate)

	for _, ex := range fitted {
		if ex.Mechanics == MechanicsIsolation && ex.Sets < 2 {
			t.Errorf("isolation trimmed to %d sets", ex.Sets)
		}
		if ex.Mechanics == MechanicsCompound && ex.Sets < 3 {
			t.Errorf("compound trimmed to %d sets", ex.Sets)
		}
	}
	initial := totalMinutes(exercises)
	if float64(minutes) >= initial {
		t.Errorf("day = %d min, want shrunk below %v", minutes, initial)
	}
}

func TestFitToDurationWithinBand(t *testing.T) {
	exercises := []ConfiguredExercise{
		{Exercise: Exercise{Mechanics: MechanicsCompound}, Sets: 4, Rest: "90-120s"},
		{Exercise: Exercise{Mechanics: MechanicsCompound}, Sets: 4, Rest: "90-120s"},
		{Exercise: Exercise{Mechanics: MechanicsIsolation}, Sets: 3, Rest: "60s"},
		{Exercise: Exercise{Mechanics: MechanicsIsolation}, Sets: 3, Rest: "60s"},
		{Exercise: Exercise{Mechanics: MechanicsIsolation}, Sets: 3, Rest: "45-60s"},
	}

	_, minutes := fitToDuration(exercises, 60, GoalMass, ExperienceIntermediate)

	if float64(minutes) < 60*0.85 || float64(minutes) > 60*1.15 {
		t.Errorf("day = %d min, want within 51 to 69", minutes)
	}
}
