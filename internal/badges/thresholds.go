package badges

import "github.com/rnnlab/rnncourse/internal/course"

// threshold pairs a numeric trigger value with the badge it unlocks.
type threshold struct {
	Value   int
	BadgeID string
}

var completionThresholds = []threshold{
	{1, "first_blood"},
	{3, "getting_started"},
	{5, "halfway_hero"},
	{8, "deep_learner"},
	{11, "completionist"},
}

var pointThresholds = []threshold{
	{1000, "point_collector"},
	{5000, "point_hoarder"},
}

var streakThresholds = []threshold{
	{3, "warming_up"},
	{7, "week_one"},
	{14, "fortnight_focus"},
	{30, "monthly_devotion"},
}

var exerciseThresholds = []threshold{
	{25, "exercise_enthusiast"},
	{50, "exercise_machine"},
}

var perfectThresholds = []threshold{
	{10, "perfectionist"},
}

var firstTryThresholds = []threshold{
	{5, "sharpshooter"},
}

// moduleBadges maps a module id directly to its milestone badge.
var moduleBadges = map[int]string{
	2:  "cell_mechanic",
	3:  "memory_master",
	10: "attention_seeker",
	11: "capstone_crusher",
}

// pathBadges maps a learning path id to its completion badge.
var pathBadges = map[string]string{
	course.PathQuickWins:   "quick_learner",
	course.PathFullCourse:  "full_practitioner",
	course.PathTheoryTrack: "theory_guru",
}

// Module time limits for the speed and marathon badges, in seconds.
const (
	SpeedLimitSecs    = 600
	MarathonFloorSecs = 7200
)
