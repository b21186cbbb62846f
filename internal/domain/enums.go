package domain

// Category is the fixed set of idea categories.
type Category string

const (
	CategoryWeb     Category = "WEB"
	CategoryMobile  Category = "MOBILE"
	CategoryGame    Category = "GAME"
	CategoryData    Category = "DATA"
	CategoryAI      Category = "AI"
	CategoryDevOps  Category = "DEVOPS"
	CategorySystems Category = "SYSTEMS"
	CategoryOther   Category = "OTHER"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryWeb, CategoryMobile, CategoryGame, CategoryData,
		CategoryAI, CategoryDevOps, CategorySystems, CategoryOther:
		return true
	}
	return false
}

// Difficulty represents how demanding an idea is to build.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "BEGINNER"
	DifficultyIntermediate Difficulty = "INTERMEDIATE"
	DifficultyAdvanced     Difficulty = "ADVANCED"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Rank returns the sort position of the difficulty (BEGINNER < INTERMEDIATE < ADVANCED).
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyBeginner:
		return 1
	case DifficultyIntermediate:
		return 2
	case DifficultyAdvanced:
		return 3
	}
	return 0
}

// SortKey selects the catalog list ordering.
type SortKey string

const (
	SortPopular    SortKey = "popular"    // view_count desc
	SortRecent     SortKey = "recent"     // created_at desc
	SortDifficulty SortKey = "difficulty" // BEGINNER < INTERMEDIATE < ADVANCED
	SortTitle      SortKey = "title"      // lexicographic
)

func (s SortKey) IsValid() bool {
	switch s {
	case SortPopular, SortRecent, SortDifficulty, SortTitle:
		return true
	}
	return false
}

// Tier is the derived access level of a request. Never stored.
type Tier string

const (
	TierGuest         Tier = "guest"
	TierAuthenticated Tier = "authenticated"
)

func (t Tier) String() string { return string(t) }

// AccessLevel describes how much of an idea record the caller received.
type AccessLevel string

const (
	// AccessFull means every field, including the build guide.
	AccessFull AccessLevel = "full"
	// AccessTeaser means summary fields only; the build guide is withheld.
	AccessTeaser AccessLevel = "teaser"
)
