package badges

// Badge is a static catalog entry. Unlock state lives with the
// gamification service; the catalog never changes at runtime.
type Badge struct {
	ID          string
	Name        string
	Rarity      Rarity
	Category    Category
	Requirement string
}

var seedBadges = []Badge{
	// Completion ladder.
	{ID: "first_blood", Name: "First Blood", Rarity: RarityCommon, Category: CategoryCompletion,
		Requirement: "Complete your first module"},
	{ID: "getting_started", Name: "Getting Started", Rarity: RarityCommon, Category: CategoryCompletion,
		Requirement: "Complete 3 modules"},
	{ID: "halfway_hero", Name: "Halfway Hero", Rarity: RarityRare, Category: CategoryCompletion,
		Requirement: "Complete 5 modules"},
	{ID: "deep_learner", Name: "Deep Learner", Rarity: RarityEpic, Category: CategoryCompletion,
		Requirement: "Complete 8 modules"},
	{ID: "completionist", Name: "Completionist", Rarity: RarityLegendary, Category: CategoryCompletion,
		Requirement: "Complete 11 modules"},

	// Module milestones.
	{ID: "cell_mechanic", Name: "Cell Mechanic", Rarity: RarityRare, Category: CategoryCompletion,
		Requirement: "Complete The Vanilla RNN Cell"},
	{ID: "memory_master", Name: "Memory Master", Rarity: RarityEpic, Category: CategoryCompletion,
		Requirement: "Complete Long Short-Term Memory"},
	{ID: "attention_seeker", Name: "Attention Seeker", Rarity: RarityEpic, Category: CategoryCompletion,
		Requirement: "Complete Attention and Beyond"},
	{ID: "capstone_crusher", Name: "Capstone Crusher", Rarity: RarityLegendary, Category: CategoryCompletion,
		Requirement: "Complete the capstone project"},

	// Points.
	{ID: "point_collector", Name: "Point Collector", Rarity: RarityRare, Category: CategoryPoints,
		Requirement: "Earn 1,000 points"},
	{ID: "point_hoarder", Name: "Point Hoarder", Rarity: RarityLegendary, Category: CategoryPoints,
		Requirement: "Earn 5,000 points"},

	// Time of completion.
	{ID: "speed_demon", Name: "Speed Demon", Rarity: RarityRare, Category: CategoryTime,
		Requirement: "Finish a module in under 10 minutes"},
	{ID: "marathon_learner", Name: "Marathon Learner", Rarity: RarityRare, Category: CategoryTime,
		Requirement: "Spend over 2 hours on a single module"},
	{ID: "night_owl", Name: "Night Owl", Rarity: RarityRare, Category: CategoryTime,
		Requirement: "Complete a module between midnight and 5 AM"},
	{ID: "early_bird", Name: "Early Bird", Rarity: RarityRare, Category: CategoryTime,
		Requirement: "Complete a module between 5 and 7 AM"},

	// Streaks.
	{ID: "warming_up", Name: "Warming Up", Rarity: RarityCommon, Category: CategoryConsistency,
		Requirement: "Learn 3 days in a row"},
	{ID: "week_one", Name: "Week One", Rarity: RarityRare, Category: CategoryConsistency,
		Requirement: "Learn 7 days in a row"},
	{ID: "fortnight_focus", Name: "Fortnight Focus", Rarity: RarityEpic, Category: CategoryConsistency,
		Requirement: "Learn 14 days in a row"},
	{ID: "monthly_devotion", Name: "Monthly Devotion", Rarity: RarityLegendary, Category: CategoryConsistency,
		Requirement: "Learn 30 days in a row"},

	// Exercises.
	{ID: "exercise_enthusiast", Name: "Exercise Enthusiast", Rarity: RarityRare, Category: CategoryPractice,
		Requirement: "Complete 25 exercises"},
	{ID: "exercise_machine", Name: "Exercise Machine", Rarity: RarityEpic, Category: CategoryPractice,
		Requirement: "Complete 50 exercises"},
	{ID: "perfectionist", Name: "Perfectionist", Rarity: RarityEpic, Category: CategoryPractice,
		Requirement: "Complete 10 exercises without hints"},
	{ID: "sharpshooter", Name: "Sharpshooter", Rarity: RarityRare, Category: CategoryPractice,
		Requirement: "Solve 5 exercises on the first attempt"},

	// Paths.
	{ID: "quick_learner", Name: "Quick Learner", Rarity: RarityRare, Category: CategoryPath,
		Requirement: "Finish the Quick Wins path"},
	{ID: "full_practitioner", Name: "Full Practitioner", Rarity: RarityLegendary, Category: CategoryPath,
		Requirement: "Finish the Full Course path"},
	{ID: "theory_guru", Name: "Theory Guru", Rarity: RarityEpic, Category: CategoryPath,
		Requirement: "Finish the Theory Track path"},
}

var badgeByID = func() map[string]*Badge {
	m := make(map[string]*Badge, len(seedBadges))
	for i := range seedBadges {
		m[seedBadges[i].ID] = &seedBadges[i]
	}
	return m
}()

// All returns every badge in catalog order.
func All() []Badge {
	return seedBadges
}

// Get returns the badge with the given id.
func Get(id string) (Badge, bool) {
	b, ok := badgeByID[id]
	if !ok {
		return Badge{}, false
	}
	return *b, true
}
