package planner

// Split templates. Each template names its training days in schedule order;
// block ExerciseCount is a base that the session-length scaling overrides.

var splitTemplates = map[string]SplitTemplate{
	"FBW_2": {
		Key:      "FBW_2",
		Name:     "Full Body Workout (2x/week)",
		Schedule: []string{"A", "B"},
		Blocks: map[string]BlockDef{
			"A": {
				MuscleGroups:  []string{"quads", "chest", "back", "shoulders", "core"},
				Patterns:      []Pattern{PatternKneeDominant, PatternPushHorizontal, PatternPullHorizontal, PatternPushVertical, PatternCore},
				ExerciseCount: 6,
				CompoundFirst: true,
			},
			"B": {
				MuscleGroups:  []string{"hamstrings", "glutes", "back", "chest", "arms"},
				Patterns:      []Pattern{PatternHipDominant, PatternPullVertical, PatternPushHorizontal, PatternLunge, PatternAccessory},
				ExerciseCount: 6,
				CompoundFirst: true,
			},
		},
	},
	"FBW_3": {
		Key:      "FBW_3",
		Name:     "Full Body Workout (3x/week)",
		Schedule: []string{"A", "B", "C"},
		Blocks: map[string]BlockDef{
			"A": {
				MuscleGroups:  []string{"quads", "chest", "back", "shoulders"},
				Patterns:      []Pattern{PatternKneeDominant, PatternPushHorizontal, PatternPullHorizontal, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
			"B": {
				MuscleGroups:  []string{"hamstrings", "back", "chest", "core"},
				Patterns:      []Pattern{PatternHipDominant, PatternPullVertical, PatternPushVertical, PatternCore},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
			"C": {
				MuscleGroups:  []string{"glutes", "back", "chest", "arms"},
				Patterns:      []Pattern{PatternLunge, PatternPullHorizontal, PatternPushHorizontal, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
		},
	},
	"PPL_3": {
		Key:      "PPL_3",
		Name:     "Push/Pull/Legs (3x/week)",
		Schedule: []string{"Push", "Pull", "Legs"},
		Blocks: map[string]BlockDef{
			"Push": {
				MuscleGroups:  []string{"chest", "shoulders", "triceps"},
				Patterns:      []Pattern{PatternPushHorizontal, PatternPushVertical, PatternAccessory},
				ExerciseCount: 6,
				CompoundFirst: true,
			},
			"Pull": {
				MuscleGroups:  []string{"back", "biceps", "rear_delts"},
				Patterns:      []Pattern{PatternPullHorizontal, PatternPullVertical, PatternAccessory},
				ExerciseCount: 6,
				CompoundFirst: true,
			},
			"Legs": {
				MuscleGroups:  []string{"quads", "hamstrings", "glutes", "calves", "core"},
				Patterns:      []Pattern{PatternKneeDominant, PatternHipDominant, PatternLunge, PatternAccessory, PatternCore},
				ExerciseCount: 6,
				CompoundFirst: true,
			},
		},
	},
	"ULUL_4": {
		Key:      "ULUL_4",
		Name:     "Upper/Lower Split (4x/week)",
		Schedule: []string{"Upper A", "Lower A", "Upper B", "Lower B"},
		Blocks: map[string]BlockDef{
			"Upper A": {
				MuscleGroups:  []string{"chest", "back", "shoulders", "triceps", "biceps"},
				Patterns:      []Pattern{PatternPushHorizontal, PatternPullHorizontal, PatternPushVertical, PatternPullVertical, PatternAccessory},
				ExerciseCount: 6,
				CompoundFirst: true,
			},
			"Lower A": {
				MuscleGroups:  []string{"quads", "hamstrings", "glutes", "calves", "core"},
				Patterns:      []Pattern{PatternKneeDominant, PatternHipDominant, PatternLunge, PatternAccessory, PatternCore},
				ExerciseCount: 6,
				CompoundFirst: true,
			},
			"Upper B": {
				MuscleGroups:  []string{"back", "chest", "shoulders", "biceps", "triceps"},
				Patterns:      []Pattern{PatternPullVertical, PatternPushHorizontal, PatternPullHorizontal, PatternPushVertical, PatternAccessory},
				ExerciseCount: 6,
				CompoundFirst: true,
			},
			"Lower B": {
				MuscleGroups:  []string{"hamstrings", "glutes", "quads", "calves", "core"},
				Patterns:      []Pattern{PatternHipDominant, PatternLunge, PatternKneeDominant, PatternAccessory, PatternCore},
				ExerciseCount: 6,
				CompoundFirst: true,
			},
		},
	},
	"ULPPL_5": {
		Key:      "ULPPL_5",
		Name:     "Upper/Lower + PPL (5x/week)",
		Schedule: []string{"Upper", "Lower", "Push", "Pull", "Legs"},
		Blocks: map[string]BlockDef{
			"Upper": {
				MuscleGroups:  []string{"chest", "back", "shoulders"},
				Patterns:      []Pattern{PatternPushHorizontal, PatternPullHorizontal, PatternPushVertical, PatternPullVertical},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
			"Lower": {
				MuscleGroups:  []string{"quads", "hamstrings", "glutes", "core"},
				Patterns:      []Pattern{PatternKneeDominant, PatternHipDominant, PatternLunge, PatternCore},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
			"Push": {
				MuscleGroups:  []string{"chest", "shoulders", "triceps"},
				Patterns:      []Pattern{PatternPushHorizontal, PatternPushVertical, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
			"Pull": {
				MuscleGroups:  []string{"back", "biceps", "rear_delts"},
				Patterns:      []Pattern{PatternPullHorizontal, PatternPullVertical, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
			"Legs": {
				MuscleGroups:  []string{"quads", "hamstrings", "glutes", "calves"},
				Patterns:      []Pattern{PatternKneeDominant, PatternHipDominant, PatternLunge, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
		},
	},
	"PPL_6": {
		Key:      "PPL_6",
		Name:     "Push/Pull/Legs x2 (6x/week)",
		Schedule: []string{"Push A", "Pull A", "Legs A", "Push B", "Pull B", "Legs B"},
		Blocks: map[string]BlockDef{
			"Push A": {
				MuscleGroups:  []string{"chest", "shoulders", "triceps"},
				Patterns:      []Pattern{PatternPushHorizontal, PatternPushVertical, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
			"Pull A": {
				MuscleGroups:  []string{"back", "biceps"},
				Patterns:      []Pattern{PatternPullHorizontal, PatternPullVertical, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
			"Legs A": {
				MuscleGroups:  []string{"quads", "glutes", "calves", "core"},
				Patterns:      []Pattern{PatternKneeDominant, PatternLunge, PatternAccessory, PatternCore},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
			"Push B": {
				MuscleGroups:  []string{"shoulders", "chest", "triceps"},
				Patterns:      []Pattern{PatternPushVertical, PatternPushHorizontal, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
			"Pull B": {
				MuscleGroups:  []string{"back", "biceps", "rear_delts"},
				Patterns:      []Pattern{PatternPullVertical, PatternPullHorizontal, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
			"Legs B": {
				MuscleGroups:  []string{"hamstrings", "glutes", "quads", "core"},
				Patterns:      []Pattern{PatternHipDominant, PatternLunge, PatternKneeDominant, PatternCore},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
		},
	},

	// Spine-friendly splits for lower back injuries. Leg work is spread
	// across days and steered toward machines via PreferCodes.
	"MODIFIED_PP_4": {
		Key:      "MODIFIED_PP_4",
		Name:     "Modified Push/Pull (4x/week) - Safe for Lower Back",
		Schedule: []string{"Push + Quads", "Pull + Hams", "Push + Quads B", "Pull + Hams B"},
		Blocks: map[string]BlockDef{
			"Push + Quads": {
				MuscleGroups:  []string{"chest", "shoulders", "triceps", "quads"},
				Patterns:      []Pattern{PatternPushHorizontal, PatternPushVertical, PatternAccessory, PatternKneeDominant},
				ExerciseCount: 6,
				CompoundFirst: true,
				PreferCodes:   []string{"leg_press", "leg_extension", "hack_squat", "smith_machine"},
			},
			"Pull + Hams": {
				MuscleGroups:  []string{"back", "biceps", "hamstrings", "glutes"},
				Patterns:      []Pattern{PatternPullHorizontal, PatternPullVertical, PatternAccessory},
				ExerciseCount: 6,
				CompoundFirst: true,
				PreferCodes:   []string{"lat_pulldown", "cable_row", "seated_row", "leg_curl", "hip_thrust"},
			},
			"Push + Quads B": {
				MuscleGroups:  []string{"shoulders", "chest", "triceps", "quads", "core"},
				Patterns:      []Pattern{PatternPushVertical, PatternPushHorizontal, PatternAccessory, PatternCore},
				ExerciseCount: 6,
				CompoundFirst: true,
				PreferCodes:   []string{"leg_press", "goblet_squat", "bulgarian_split", "plank", "bird_dog"},
			},
			"Pull + Hams B": {
				MuscleGroups:  []string{"back", "biceps", "rear_delts", "hamstrings"},
				Patterns:      []Pattern{PatternPullVertical, PatternPullHorizontal, PatternAccessory},
				ExerciseCount: 6,
				CompoundFirst: true,
				PreferCodes:   []string{"chest_supported_row", "lat_pulldown", "leg_curl", "glute_bridge"},
			},
		},
	},
	"MODIFIED_PP_5": {
		Key:      "MODIFIED_PP_5",
		Name:     "Modified Push/Pull (5x/week) - Safe for Lower Back",
		Schedule: []string{"Push", "Pull", "Legs (Machine)", "Push B", "Pull B"},
		Blocks: map[string]BlockDef{
			"Push": {
				MuscleGroups:  []string{"chest", "shoulders", "triceps"},
				Patterns:      []Pattern{PatternPushHorizontal, PatternPushVertical, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
			"Pull": {
				MuscleGroups:  []string{"back", "biceps"},
				Patterns:      []Pattern{PatternPullHorizontal, PatternPullVertical, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
				PreferCodes:   []string{"lat_pulldown", "cable_row", "seated_row", "chest_supported"},
			},
			"Legs (Machine)": {
				MuscleGroups:  []string{"quads", "hamstrings", "glutes", "calves"},
				Patterns:      []Pattern{PatternKneeDominant, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
				PreferCodes:   []string{"leg_press", "hack_squat", "leg_extension", "leg_curl", "hip_thrust_machine", "calf_raise_machine"},
			},
			"Push B": {
				MuscleGroups:  []string{"shoulders", "chest", "triceps", "core"},
				Patterns:      []Pattern{PatternPushVertical, PatternPushHorizontal, PatternAccessory, PatternCore},
				ExerciseCount: 5,
				CompoundFirst: true,
				PreferCodes:   []string{"plank", "bird_dog", "dead_bug"},
			},
			"Pull B": {
				MuscleGroups:  []string{"back", "biceps", "rear_delts"},
				Patterns:      []Pattern{PatternPullVertical, PatternPullHorizontal, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
				PreferCodes:   []string{"lat_pulldown", "cable_row", "face_pull"},
			},
		},
	},
	"MODIFIED_PP_6": {
		Key:      "MODIFIED_PP_6",
		Name:     "Modified Push/Pull x2 (6x/week) - Safe for Lower Back",
		Schedule: []string{"Push A", "Pull A", "Legs A (Machine)", "Push B", "Pull B", "Legs B (Machine)"},
		Blocks: map[string]BlockDef{
			"Push A": {
				MuscleGroups:  []string{"chest", "shoulders", "triceps"},
				Patterns:      []Pattern{PatternPushHorizontal, PatternPushVertical, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
			"Pull A": {
				MuscleGroups:  []string{"back", "biceps"},
				Patterns:      []Pattern{PatternPullHorizontal, PatternPullVertical, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
				PreferCodes:   []string{"lat_pulldown", "cable_row", "seated_row", "chest_supported"},
			},
			"Legs A (Machine)": {
				MuscleGroups:  []string{"quads", "glutes", "calves"},
				Patterns:      []Pattern{PatternKneeDominant, PatternAccessory},
				ExerciseCount: 4,
				CompoundFirst: true,
				PreferCodes:   []string{"leg_press", "hack_squat", "leg_extension", "calf_raise"},
			},
			"Push B": {
				MuscleGroups:  []string{"shoulders", "chest", "triceps"},
				Patterns:      []Pattern{PatternPushVertical, PatternPushHorizontal, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
			"Pull B": {
				MuscleGroups:  []string{"back", "biceps", "rear_delts"},
				Patterns:      []Pattern{PatternPullVertical, PatternPullHorizontal, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
				PreferCodes:   []string{"lat_pulldown", "cable_row", "face_pull"},
			},
			"Legs B (Machine)": {
				MuscleGroups:  []string{"hamstrings", "glutes", "calves", "core"},
				Patterns:      []Pattern{PatternAccessory, PatternCore},
				ExerciseCount: 4,
				CompoundFirst: true,
				PreferCodes:   []string{"leg_curl", "hip_thrust", "glute_bridge", "plank", "bird_dog"},
			},
		},
	},
	"TORSO_LIMB_4": {
		Key:      "TORSO_LIMB_4",
		Name:     "Torso/Limb Split (4x/week)",
		Schedule: []string{"Torso A", "Limbs A", "Torso B", "Limbs B"},
		Blocks: map[string]BlockDef{
			"Torso A": {
				MuscleGroups:  []string{"chest", "back", "shoulders"},
				Patterns:      []Pattern{PatternPushHorizontal, PatternPullHorizontal, PatternPushVertical},
				ExerciseCount: 6,
				CompoundFirst: true,
			},
			"Limbs A": {
				MuscleGroups:  []string{"quads", "hamstrings", "biceps", "triceps"},
				Patterns:      []Pattern{PatternKneeDominant, PatternAccessory},
				ExerciseCount: 6,
				CompoundFirst: true,
				PreferCodes:   []string{"leg_press", "leg_extension", "leg_curl", "cable"},
			},
			"Torso B": {
				MuscleGroups:  []string{"back", "chest", "rear_delts", "core"},
				Patterns:      []Pattern{PatternPullVertical, PatternPushHorizontal, PatternAccessory, PatternCore},
				ExerciseCount: 6,
				CompoundFirst: true,
				PreferCodes:   []string{"lat_pulldown", "cable_row", "plank", "bird_dog"},
			},
			"Limbs B": {
				MuscleGroups:  []string{"glutes", "hamstrings", "calves", "biceps", "triceps"},
				Patterns:      []Pattern{PatternAccessory},
				ExerciseCount: 6,
				CompoundFirst: true,
				PreferCodes:   []string{"hip_thrust", "leg_curl", "calf_raise", "cable"},
			},
		},
	},

	// Focus splits bias weekly volume toward one body region.
	"LOWER_FOCUS_4": {
		Key:      "LOWER_FOCUS_4",
		Name:     "Lower Body Focus (4x/week)",
		Schedule: []string{"Lower A (Quads)", "Upper Full", "Lower B (Glutes/Hams)", "Lower C (Power)"},
		Blocks: map[string]BlockDef{
			"Lower A (Quads)": {
				MuscleGroups:  []string{"quads", "glutes", "calves"},
				Patterns:      []Pattern{PatternKneeDominant, PatternLunge, PatternAccessory},
				ExerciseCount: 6,
				CompoundFirst: true,
			},
			"Upper Full": {
				MuscleGroups:  []string{"chest", "back", "shoulders", "arms"},
				Patterns:      []Pattern{PatternPushHorizontal, PatternPullHorizontal, PatternPushVertical, PatternPullVertical, PatternAccessory},
				ExerciseCount: 6,
				CompoundFirst: true,
			},
			"Lower B (Glutes/Hams)": {
				MuscleGroups:  []string{"hamstrings", "glutes", "core"},
				Patterns:      []Pattern{PatternHipDominant, PatternLunge, PatternCore},
				ExerciseCount: 6,
				CompoundFirst: true,
			},
			"Lower C (Power)": {
				MuscleGroups:  []string{"quads", "hamstrings", "glutes", "calves"},
				Patterns:      []Pattern{PatternKneeDominant, PatternHipDominant, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
		},
	},
	"LOWER_FOCUS_5": {
		Key:      "LOWER_FOCUS_5",
		Name:     "Lower Body Focus (5x/week)",
		Schedule: []string{"Lower A (Quads)", "Lower B (Glutes)", "Upper Full", "Lower C (Hams)", "Lower D (Power)"},
		Blocks: map[string]BlockDef{
			"Lower A (Quads)": {
				MuscleGroups:  []string{"quads", "glutes", "calves"},
				Patterns:      []Pattern{PatternKneeDominant, PatternLunge, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
			"Lower B (Glutes)": {
				MuscleGroups:  []string{"glutes", "hamstrings", "core"},
				Patterns:      []Pattern{PatternHipDominant, PatternLunge, PatternCore},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
			"Upper Full": {
				MuscleGroups:  []string{"chest", "back", "shoulders", "arms"},
				Patterns:      []Pattern{PatternPushHorizontal, PatternPullHorizontal, PatternPushVertical, PatternPullVertical, PatternAccessory},
				ExerciseCount: 6,
				CompoundFirst: true,
			},
			"Lower C (Hams)": {
				MuscleGroups:  []string{"hamstrings", "glutes", "calves"},
				Patterns:      []Pattern{PatternHipDominant, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
			"Lower D (Power)": {
				MuscleGroups:  []string{"quads", "hamstrings", "glutes"},
				Patterns:      []Pattern{PatternKneeDominant, PatternHipDominant, PatternLunge},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
		},
	},
	"UPPER_FOCUS_4": {
		Key:      "UPPER_FOCUS_4",
		Name:     "Upper Body Focus (4x/week)",
		Schedule: []string{"Upper A (Push)", "Lower Full", "Upper B (Pull)", "Upper C (Shoulders/Arms)"},
		Blocks: map[string]BlockDef{
			"Upper A (Push)": {
				MuscleGroups:  []string{"chest", "shoulders", "triceps"},
				Patterns:      []Pattern{PatternPushHorizontal, PatternPushVertical, PatternAccessory},
				ExerciseCount: 6,
				CompoundFirst: true,
			},
			"Lower Full": {
				MuscleGroups:  []string{"quads", "hamstrings", "glutes", "calves", "core"},
				Patterns:      []Pattern{PatternKneeDominant, PatternHipDominant, PatternLunge, PatternCore},
				ExerciseCount: 6,
				CompoundFirst: true,
			},
			"Upper B (Pull)": {
				MuscleGroups:  []string{"back", "biceps", "rear_delts"},
				Patterns:      []Pattern{PatternPullHorizontal, PatternPullVertical, PatternAccessory},
				ExerciseCount: 6,
				CompoundFirst: true,
			},
			"Upper C (Shoulders/Arms)": {
				MuscleGroups:  []string{"shoulders", "biceps", "triceps", "chest"},
				Patterns:      []Pattern{PatternPushVertical, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
		},
	},
	"UPPER_FOCUS_5": {
		Key:      "UPPER_FOCUS_5",
		Name:     "Upper Body Focus (5x/week)",
		Schedule: []string{"Upper A (Push H)", "Upper B (Pull)", "Lower Full", "Upper C (Push V)", "Upper D (Arms)"},
		Blocks: map[string]BlockDef{
			"Upper A (Push H)": {
				MuscleGroups:  []string{"chest", "triceps", "shoulders"},
				Patterns:      []Pattern{PatternPushHorizontal, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
			"Upper B (Pull)": {
				MuscleGroups:  []string{"back", "biceps", "rear_delts"},
				Patterns:      []Pattern{PatternPullHorizontal, PatternPullVertical, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
			"Lower Full": {
				MuscleGroups:  []string{"quads", "hamstrings", "glutes", "calves", "core"},
				Patterns:      []Pattern{PatternKneeDominant, PatternHipDominant, PatternLunge, PatternCore},
				ExerciseCount: 6,
				CompoundFirst: true,
			},
			"Upper C (Push V)": {
				MuscleGroups:  []string{"shoulders", "chest", "triceps"},
				Patterns:      []Pattern{PatternPushVertical, PatternPushHorizontal, PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
			"Upper D (Arms)": {
				MuscleGroups:  []string{"biceps", "triceps", "forearms", "shoulders"},
				Patterns:      []Pattern{PatternAccessory},
				ExerciseCount: 5,
				CompoundFirst: true,
			},
		},
	},
	"CORE_FOCUS_3": {
		Key:      "CORE_FOCUS_3",
		Name:     "Core Focus (3x/week)",
		Schedule: []string{"Full Body + Core A", "Full Body + Core B", "Full Body + Core C"},
		Blocks: map[string]BlockDef{
			"Full Body + Core A": {
				MuscleGroups:  []string{"quads", "chest", "back", "core"},
				Patterns:      []Pattern{PatternKneeDominant, PatternPushHorizontal, PatternPullHorizontal, PatternCore, PatternCore},
				ExerciseCount: 6,
				CompoundFirst: true,
			},
			"Full Body + Core B": {
				MuscleGroups:  []string{"hamstrings", "shoulders", "back", "core"},
				Patterns:      []Pattern{PatternHipDominant, PatternPushVertical, PatternPullVertical, PatternCore, PatternCore},
				ExerciseCount: 6,
				CompoundFirst: true,
			},
			"Full Body + Core C": {
				MuscleGroups:  []string{"glutes", "chest", "back", "core"},
				Patterns:      []Pattern{PatternLunge, PatternPushHorizontal, PatternPullHorizontal, PatternCore, PatternCore},
				ExerciseCount: 6,
				CompoundFirst: true,
			},
		},
	},
}
