package planner

// This file holds the tunable knowledge base behind filtering and scoring:
// injury safety tables, redundancy groups, curated exercise lists, and
// equipment rankings. The matching against exercise codes is deliberately
// substring-based; catalog codes are free-form and exact matching would
// under-block unsafe variants.

// injuryConfig maps one injury tag to the movements it rules out and the
// substitutions that stay safe.
type injuryConfig struct {
	// BlockedCodeTokens are substrings that exclude an exercise by code.
	BlockedCodeTokens []string
	// BlockedPatterns are movement patterns excluded wholesale unless the
	// exercise code matches AllowedAlternatives.
	BlockedPatterns []Pattern
	// AllowedAlternatives are code substrings that stay eligible even when
	// their pattern is blocked.
	AllowedAlternatives []string
	BlockedGripTypes    []string
	PreferUnilateral    bool
	PreferMachines      bool
}

var injuryConfigs = map[string]injuryConfig{
	"lower_back": {
		BlockedCodeTokens: []string{
			"deadlift", "good_morning", "bent_over_row", "pendlay",
			"barbell_squat", "front_squat", "back_squat", "overhead_squat",
			"t_bar_row", "barbell_shrug", "upright_row",
			"snatch", "clean_and", "power_clean", "hang_clean",
			"hyperextension", "reverse_hyperextension", "superman",
			"barbell_lunge", "walking_lunge_barbell",
			"jefferson", "zercher", "atlas_stone",
		},
		BlockedPatterns: []Pattern{PatternHipDominant},
		AllowedAlternatives: []string{
			"leg_press", "hack_squat", "smith_machine", "belt_squat",
			"bulgarian_split_squat", "goblet_squat", "dumbbell_squat",
			"leg_extension", "leg_curl", "hip_thrust_machine",
			"seated_row", "chest_supported_row", "cable_row",
			"lat_pulldown", "pull_up", "chin_up",
		},
		PreferUnilateral: true,
		PreferMachines:   true,
	},
	"knees": {
		BlockedCodeTokens: []string{
			"jump_squat", "box_jump", "depth_jump", "plyometric",
			"sissy_squat", "pistol_squat",
			"deep_squat", "ass_to_grass", "atg",
			"lunge_jump", "split_jump",
		},
		AllowedAlternatives: []string{
			"leg_press", "leg_extension", "leg_curl", "hip_thrust",
			"box_squat", "goblet_squat", "smith_machine_squat",
		},
		PreferMachines: true,
	},
	"shoulders": {
		BlockedCodeTokens: []string{
			"behind_neck", "behind_the_neck", "upright_row",
			"arnold_press", "bradford_press",
			"dip", "chest_dip", "triceps_dip", "ring_dip",
			"muscle_up", "handstand",
			"wide_grip_pull", "wide_grip_lat",
			"overhead_press_barbell", "military_press", "push_press",
			"snatch", "jerk", "clean_and_press",
			"incline_bench", "decline_bench_press",
			"fly", "dumbbell_fly", "cable_fly",
		},
		BlockedPatterns: []Pattern{PatternPushVertical},
		AllowedAlternatives: []string{
			"dumbbell_shoulder_press", "machine_shoulder_press",
			"lateral_raise", "front_raise_cable",
			"face_pull", "rear_delt_fly",
			"flat_bench_press", "machine_chest_press",
		},
		PreferUnilateral: true,
		PreferMachines:   true,
	},
	"wrists": {
		BlockedCodeTokens: []string{
			"barbell_curl", "preacher_curl_barbell", "barbell_bench", "barbell_press",
			"front_squat", "clean", "snatch",
			"plank", "push_up", "handstand",
			"wrist_curl", "reverse_wrist", "skullcrusher", "skull_crusher",
			"barbell_incline", "barbell_decline", "barbell_overhead", "military_press",
			"close_grip_bench", "barbell_floor_press",
		},
		AllowedAlternatives: []string{
			"ez_bar_curl", "dumbbell_curl", "hammer_curl",
			"cable_curl", "machine_curl",
			"neutral_grip", "dumbbell_bench", "dumbbell_press", "machine_press",
		},
		BlockedGripTypes: []string{"pronated", "supinated"},
		PreferMachines:   true,
	},
	"elbows": {
		BlockedCodeTokens: []string{
			"skull_crusher", "overhead_tricep", "french_press",
			"close_grip_bench", "dip",
			"preacher_curl", "concentration_curl",
		},
		AllowedAlternatives: []string{
			"pushdown", "cable_tricep", "machine_tricep",
			"cable_curl", "machine_curl",
		},
		PreferMachines: true,
	},
	"hips": {
		BlockedCodeTokens: []string{
			"deep_squat", "sumo_deadlift", "wide_stance",
			"hip_adductor", "hip_abductor",
			"butterfly", "frog_stretch",
			"side_lunge", "cossack_squat",
		},
		BlockedPatterns: []Pattern{PatternLunge},
		AllowedAlternatives: []string{
			"leg_press", "leg_extension", "leg_curl",
			"hip_thrust", "glute_bridge",
			"goblet_squat",
		},
		PreferMachines: true,
	},
	"neck": {
		BlockedCodeTokens: []string{
			"shrug", "upright_row", "behind_neck",
			"neck_curl", "neck_extension",
			"overhead_press", "military_press",
		},
		AllowedAlternatives: []string{"seated_row", "lat_pulldown", "cable_row"},
		PreferMachines:      true,
	},
	"ankles": {
		BlockedCodeTokens: []string{
			"calf_raise", "jump", "box_jump", "skip",
			"sprint", "running", "burpee",
			"deep_squat",
		},
		AllowedAlternatives: []string{
			"seated_calf", "leg_press_calf",
			"leg_press", "leg_extension", "leg_curl",
		},
		PreferMachines: true,
	},
	"herniated_disc": {
		BlockedCodeTokens: []string{
			"deadlift", "squat", "good_morning", "bent_over",
			"row_barbell", "t_bar", "shrug",
			"clean", "snatch", "jerk",
			"crunch", "sit_up", "leg_raise",
			"hyperextension", "superman",
		},
		BlockedPatterns: []Pattern{PatternHipDominant, PatternCore},
		AllowedAlternatives: []string{
			"leg_press", "hack_squat", "belt_squat",
			"machine_row", "chest_supported_row",
			"lat_pulldown", "cable_work",
			"plank", "bird_dog", "dead_bug",
		},
		PreferUnilateral: true,
		PreferMachines:   true,
	},
}

// injurySynonyms expands a coarse injury tag to the free-text tokens matched
// against catalog excluded-injury entries.
var injurySynonyms = map[string][]string{
	"knees":          {"knee", "knees", "patella", "acl", "mcl"},
	"shoulders":      {"shoulder", "shoulders", "rotator cuff", "rotator", "deltoid"},
	"lower_back":     {"lower back", "lumbar", "herniated disc", "disc"},
	"upper_back":     {"upper back", "thoracic", "neck", "cervical"},
	"wrists":         {"wrist", "wrists", "carpal"},
	"elbows":         {"elbow", "elbows", "tennis elbow", "golfers elbow"},
	"hips":           {"hip", "hips", "hip flexor"},
	"ankles":         {"ankle", "ankles", "ankle sprain"},
	"herniated_disc": {"herniated disc", "disc herniation", "lower back"},
	"neck":           {"neck", "cervical", "neck strain"},
}

// mobilityRequirements maps a reported mobility issue to the catalog
// requirement tags it rules out.
var mobilityRequirements = map[string][]string{
	"hip_flexors": {"hip_mobility", "hip_flexor_flexibility"},
	"hamstrings":  {"hamstring_flexibility", "hip_hinge_mobility"},
	"thoracic":    {"thoracic_mobility", "upper_back_mobility", "shoulder_mobility"},
	"ankles":      {"ankle_mobility", "ankle_dorsiflexion"},
	"shoulders":   {"shoulder_mobility", "overhead_mobility"},
}

// ringsRequiredTokens mark exercises that need gymnastic rings.
var ringsRequiredTokens = []string{
	"ring_dip", "ring_row", "ring_push", "ring_fly", "ring_curl",
	"muscle_up_ring", "iron_cross", "maltese", "l_sit_ring",
	"false_grip", "rings_", "_ring_", "_rings",
}

// exoticTokens mark exercises that are penalized as gimmicky.
var exoticTokens = []string{
	"_female", "_male",
	"exercise_ball", "swiss_ball", "stability_ball", "bosu",
	"trx", "suspension",
	"kettlebell_windmill", "turkish_get_up",
	"sissy_squat",
	"jefferson",
	"zercher",
}

// classicExercises get a large scoring bonus as program staples.
var classicExercises = []string{
	"barbell_bench_press", "barbell_squat", "barbell_deadlift", "barbell_row",
	"overhead_press", "barbell_hip_thrust", "romanian_deadlift",
	"incline_bench_press", "decline_bench_press",
	"dumbbell_bench_press", "dumbbell_row", "dumbbell_shoulder_press",
	"dumbbell_curl", "dumbbell_lateral_raise", "dumbbell_lunges",
	"dumbbell_fly", "dumbbell_pullover",
	"lat_pulldown", "cable_row", "leg_press", "leg_curl", "leg_extension",
	"cable_crossover", "tricep_pushdown", "cable_curl", "face_pull",
	"chest_press_machine", "shoulder_press_machine", "pec_deck",
	"pull_up", "chin_up", "dip", "push_up",
}

// priorityExercises are the best-regarded movements per pattern.
var priorityExercises = map[Pattern][]string{
	PatternKneeDominant: {
		"barbell_squat", "barbell_back_squat", "barbell_front_squat", "goblet_squat",
		"leg_press", "hack_squat", "smith_machine_squat", "bulgarian_split_squat",
		"dumbbell_squat", "sumo_squat", "front_squat", "back_squat",
	},
	PatternHipDominant: {
		"barbell_deadlift", "romanian_deadlift", "stiff_leg_deadlift", "sumo_deadlift",
		"hip_thrust", "barbell_hip_thrust", "glute_bridge", "good_morning",
		"cable_pull_through", "hyperextension", "deadlift", "rdl",
	},
	PatternLunge: {
		"walking_lunge", "reverse_lunge", "forward_lunge", "dumbbell_lunge",
		"barbell_lunge", "step_up", "lateral_lunge", "curtsy_lunge",
		"bulgarian_split_squat", "split_squat",
	},
	PatternPushHorizontal: {
		"barbell_bench_press", "dumbbell_bench_press", "incline_bench_press",
		"incline_dumbbell_press", "dumbbell_press", "push_up", "chest_dip",
		"machine_chest_press", "cable_crossover", "dumbbell_fly", "bench_press",
		"flat_bench_press", "decline_bench_press",
	},
	PatternPushVertical: {
		"overhead_press", "barbell_overhead_press", "dumbbell_shoulder_press",
		"military_press", "arnold_press", "seated_dumbbell_press",
		"machine_shoulder_press", "pike_push_up", "handstand_push_up",
		"shoulder_press", "ohp",
	},
	PatternPullHorizontal: {
		"barbell_row", "bent_over_row", "dumbbell_row", "cable_row", "seated_cable_row",
		"t_bar_row", "pendlay_row", "chest_supported_row", "machine_row",
		"one_arm_dumbbell_row", "row", "cable_seated_row",
	},
	PatternPullVertical: {
		"pull_up", "chin_up", "lat_pulldown", "wide_grip_pulldown",
		"close_grip_pulldown", "assisted_pull_up", "neutral_grip_pull_up",
		"straight_arm_pulldown", "pulldown", "pullup",
	},
	PatternCore: {
		"plank", "dead_bug", "ab_wheel", "hanging_leg_raise", "cable_crunch",
		"russian_twist", "bicycle_crunch", "mountain_climber", "side_plank",
		"reverse_crunch", "leg_raise", "crunch", "sit_up", "ab_rollout",
	},
	PatternAccessory: {
		"barbell_curl", "dumbbell_curl", "hammer_curl", "preacher_curl", "cable_curl",
		"concentration_curl", "incline_dumbbell_curl", "ez_bar_curl",
		"tricep_pushdown", "tricep_dip", "skull_crusher", "overhead_tricep_extension",
		"close_grip_bench_press", "tricep_extension", "rope_pushdown",
		"lateral_raise", "front_raise", "face_pull", "rear_delt_fly", "upright_row",
		"cable_lateral_raise", "dumbbell_lateral_raise",
		"calf_raise", "seated_calf_raise", "standing_calf_raise",
		"wrist_curl", "reverse_wrist_curl", "farmers_walk",
	},
}

var (
	upperBodyParts = []string{"CHEST", "BACK", "SHOULDERS", "ARMS"}
	lowerBodyParts = []string{"LEGS", "GLUTES"}

	upperMuscles = []string{
		"pectorals", "chest", "lats", "back", "upper back", "rhomboids",
		"shoulders", "deltoids", "rear deltoids", "front deltoids",
		"biceps", "triceps", "forearms", "traps", "trapezius",
	}
	lowerMuscles = []string{
		"quads", "quadriceps", "hamstrings", "glutes", "calves",
		"hip flexors", "adductors", "abductors",
	}
)

// focusBodyParts maps a focus preference to the body parts it covers.
var focusBodyParts = map[FocusBody][]string{
	FocusUpper: {"CHEST", "BACK", "SHOULDERS", "ARMS"},
	FocusLower: {"LEGS", "GLUTES"},
	FocusCore:  {"CORE"},
}

// blacklistedExercises are excluded outright; they are commonly mistagged in
// catalogs or far too advanced for general use.
var blacklistedExercises = []string{"one_arm_dip", "one_arm_chin_up"}

// highSkillExercises are placed early in a session, while the lifter is fresh.
var highSkillExercises = []string{
	"handstand_push_up", "pike_push_up", "muscle_up", "front_lever",
	"back_lever", "planche", "one_arm_push_up",
}

// patternMaxCount caps how many exercises may share a pattern in one day.
var patternMaxCount = map[Pattern]int{
	PatternCore:      2,
	PatternAccessory: 3,
}

const defaultPatternMax = 2

// mutuallyExclusiveGroups list functionally identical movements, at most one
// of which may appear in a single day. This is a hard constraint that never
// relaxes.
var mutuallyExclusiveGroups = [][]string{
	{
		"barbell_deadlift", "romanian_deadlift", "stiff_leg_deadlift", "sumo_deadlift",
		"trap_bar_deadlift", "good_morning", "rack_pull", "straight_leg_deadlift",
		"dumbbell_deadlift", "dumbbell_romanian_deadlift", "dumbbell_stiff_leg",
	},
	{"barbell_squat", "back_squat", "front_squat", "narrow_stance_squat", "one_leg_squat"},
	{"barbell_bench_press", "close_grip_bench_press", "wide_grip_bench_press"},
}

// groupLimit caps how many exercises from a family of near-duplicates fit in
// one day.
type groupLimit struct {
	name  string
	codes []string
	max   int
}

var groupLimits = []groupLimit{
	{name: "rows", max: 2, codes: []string{
		"barbell_row", "bent_over_row", "pendlay_row", "t_bar_row",
		"dumbbell_row", "one_arm_dumbbell_row", "chest_supported_row",
		"cable_row", "seated_cable_row", "machine_row", "meadows_row", "seal_row",
	}},
	{name: "pulldowns", max: 2, codes: []string{
		"pull_up", "chin_up", "neutral_grip_pull_up", "wide_grip_pull_up",
		"lat_pulldown", "wide_grip_pulldown", "close_grip_pulldown", "straight_arm_pulldown",
	}},
	{name: "squats", max: 2, codes: []string{
		"barbell_squat", "barbell_back_squat", "barbell_front_squat", "smith_machine_squat",
		"goblet_squat", "dumbbell_squat", "hack_squat", "leg_press", "belt_squat",
	}},
	{name: "bench presses", max: 2, codes: []string{
		"barbell_bench_press", "dumbbell_bench_press", "machine_chest_press",
		"incline_bench_press", "incline_dumbbell_press", "decline_bench_press",
	}},
	{name: "shoulder presses", max: 2, codes: []string{
		"overhead_press", "barbell_overhead_press", "military_press",
		"dumbbell_shoulder_press", "seated_dumbbell_press", "arnold_press", "machine_shoulder_press",
	}},
	{name: "lunges", max: 2, codes: []string{
		"walking_lunge", "forward_lunge", "reverse_lunge", "dumbbell_lunge", "barbell_lunge",
		"bulgarian_split_squat", "split_squat", "step_up",
	}},
	{name: "hip thrusts", max: 1, codes: []string{
		"hip_thrust", "barbell_hip_thrust", "glute_bridge", "single_leg_hip_thrust",
	}},
}

// beginnerRegressions maps demanding exercises to the easier variants a
// beginner should run instead.
var beginnerRegressions = map[string][]string{
	"pull_up":           {"lat_pulldown", "assisted_pull_up", "negative_pull_up", "inverted_row"},
	"chin_up":           {"lat_pulldown", "assisted_chin_up", "negative_chin_up", "inverted_row"},
	"wide_grip_pull_up": {"lat_pulldown", "inverted_row"},
	"chest_dip":         {"bench_dip", "push_up", "assisted_dip", "machine_chest_press"},
	"triceps_dip":       {"bench_dip", "triceps_pushdown", "close_grip_push_up"},
	"ring_dip":          {"bench_dip", "push_up"},
	"muscle_up":         {"pull_up", "lat_pulldown"},
	"pistol_squat":      {"bodyweight_squat", "assisted_pistol", "box_squat"},
	"handstand_push_up": {"pike_push_up", "dumbbell_shoulder_press"},
	"l_sit":             {"knee_raise", "hanging_knee_raise"},
}

// beginnerBannedTokens exclude exercises from beginner plans entirely.
var beginnerBannedTokens = []string{
	"muscle_up", "iron_cross", "planche", "front_lever", "back_lever",
	"one_arm_pull_up", "one_arm_push_up", "pistol_squat", "dragon_flag",
	"handstand_push_up", "strict_muscle_up", "ring_muscle_up",
	"snatch", "clean_and_jerk", "power_clean", "hang_clean",
	"overhead_squat", "zercher_squat", "jefferson_deadlift",
}

// eliteTokens are blocked for everyone below advanced experience.
var eliteTokens = []string{
	"l_pull", "muscle_up", "pistol", "planche", "front_lever", "back_lever",
	"human_flag", "iron_cross", "one_arm_pull", "one_arm_chin",
}

// hardCalisthenicsTokens need band or machine assistance for beginners.
var hardCalisthenicsTokens = []string{"pull_up", "chin_up", "dip", "hanging_leg_raise"}

// weightedEquipmentPriority ranks progressive-overload equipment best first.
var weightedEquipmentPriority = []string{
	"barbell", "dumbbell", "machine", "cable",
	"smith_machine", "ez_bar", "kettlebell",
	"pull_up_bar", "band", "bodyweight",
}

// trueWeightedEquipment allows meaningful external loading.
var trueWeightedEquipment = []string{
	"barbell", "dumbbell", "machine", "cable", "smith_machine", "ez_bar", "kettlebell",
}

// allowedBodyweightTokens stay eligible even when the user owns weights:
// classics with no loaded substitute plus core work.
var allowedBodyweightTokens = []string{
	"pull_up", "chin_up", "wide_grip_pull_up", "neutral_grip_pull_up",
	"assisted_pull_up", "band_assisted_pull_up",
	"dip", "chest_dip", "tricep_dip", "bench_dip",
	"plank", "dead_bug", "side_plank", "hanging_leg_raise", "leg_raise",
	"crunch", "sit_up", "bicycle_crunch", "mountain_climber", "russian_twist",
	"ab_wheel", "ab_rollout", "reverse_crunch", "v_up",
	"hyperextension", "back_extension", "reverse_hyperextension",
}

// blockedCalisthenicsTokens are advanced skill moves filtered out below
// advanced experience.
var blockedCalisthenicsTokens = []string{
	"planche", "lever", "muscle_up", "handstand", "l_sit", "human_flag",
	"pistol_squat", "one_arm_push", "one_arm_pull", "maltese", "iron_cross",
	"dragon_flag", "front_lever", "back_lever", "straddle", "archer",
}

// unstableSurfaceTokens are blocked for strength and mass goals.
var unstableSurfaceTokens = []string{
	"exercise_ball", "swiss_ball", "stability_ball", "bosu",
	"trx", "suspension", "balance_board", "wobble",
}

// alwaysBlockedTokens are blocked for every profile.
var alwaysBlockedTokens = []string{
	"exercise_ball", "swiss_ball", "stability_ball", "bosu",
}

// cardioTokens exclude conditioning movements from strength plans.
var cardioTokens = []string{"burpee", "jump", "run", "sprint", "jog", "skip", "hop"}

// weakPointMuscles maps a weak-point tag to the primary-muscle names it
// matches in the catalog.
var weakPointMuscles = map[string][]string{
	"chest":      {"pectorals", "chest"},
	"back":       {"lats", "back", "upper back"},
	"shoulders":  {"shoulders", "deltoids"},
	"biceps":     {"biceps"},
	"triceps":    {"triceps"},
	"quads":      {"quads", "quadriceps"},
	"hamstrings": {"hamstrings"},
	"glutes":     {"glutes"},
	"abs":        {"abs", "core"},
	"calves":     {"calves"},
	"forearms":   {"forearms"},
	"traps":      {"traps", "trapezius"},
}

// equipmentAliases canonicalize free-form equipment names.
var equipmentAliases = map[string]string{
	"body weight":     "bodyweight",
	"body_weight":     "bodyweight",
	"none":            "bodyweight",
	"dumbells":        "dumbbell",
	"dumbbells":       "dumbbell",
	"barbells":        "barbell",
	"cables":          "cable",
	"machines":        "machine",
	"bands":           "band",
	"resistance band": "band",
	"kettlebells":     "kettlebell",
	"pull up bar":     "pull_up_bar",
	"pullup bar":      "pull_up_bar",
	"pull-up bar":     "pull_up_bar",
	"ez bar":          "ez_bar",
	"smith machine":   "smith_machine",
}
