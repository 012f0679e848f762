package engine

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryProductivity Category = "productivity"
	CategorySports       Category = "sports"
	CategoryFitness      Category = "fitness"
	CategorySelfCare     Category = "self_care"
	CategoryCreativity   Category = "creativity"
	CategorySocial       Category = "social"
)

// Categories lists the six categories in display order.
var Categories = []Category{
	CategoryProductivity,
	CategorySports,
	CategoryFitness,
	CategorySelfCare,
	CategoryCreativity,
	CategorySocial,
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryProductivity, CategorySports, CategoryFitness,
		CategorySelfCare, CategoryCreativity, CategorySocial:
		return true
	default:
		return false
	}
}

// DefaultCategory is used when user input is missing/invalid.
const DefaultCategory Category = CategoryProductivity

// ParseCategory parses user input to a Category.
// Supported: productivity, sports, fitness, self_care, creativity, social
// (plus a few aliases). Empty or unrecognized input returns DefaultCategory.
func ParseCategory(input string) Category {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "":
		return DefaultCategory
	case "productivity", "work", "study":
		return CategoryProductivity
	case "sports", "sport":
		return CategorySports
	case "fitness", "gym", "workout":
		return CategoryFitness
	case "self_care", "self-care", "selfcare", "care":
		return CategorySelfCare
	case "creativity", "creative", "art":
		return CategoryCreativity
	case "social", "friends", "family":
		return CategorySocial
	default:
		return DefaultCategory
	}
}

type Attribute string

const (
	AttributeIntelligence Attribute = "intelligence"
	AttributeEndurance    Attribute = "endurance"
	AttributeStrength     Attribute = "strength"
	AttributeVitality     Attribute = "vitality"
	AttributeInsight      Attribute = "insight"
	AttributeCharisma     Attribute = "charisma"
)

// CategoryAttribute maps each category 1:1 to the attribute it trains.
var CategoryAttribute = map[Category]Attribute{
	CategoryProductivity: AttributeIntelligence,
	CategorySports:       AttributeEndurance,
	CategoryFitness:      AttributeStrength,
	CategorySelfCare:     AttributeVitality,
	CategoryCreativity:   AttributeInsight,
	CategorySocial:       AttributeCharisma,
}

type TaskType string

const (
	TaskHabit TaskType = "habit"
	TaskDaily TaskType = "daily"
	TaskTodo  TaskType = "todo"
)

func (t TaskType) IsValid() bool {
	switch t {
	case TaskHabit, TaskDaily, TaskTodo:
		return true
	default:
		return false
	}
}

func ParseTaskType(input string) (TaskType, bool) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "habit", "habits", "h":
		return TaskHabit, true
	case "daily", "dailies", "d":
		return TaskDaily, true
	case "todo", "todos", "t":
		return TaskTodo, true
	default:
		return "", false
	}
}

// Tier is an informational difficulty label carried on tasks.
// It does not feed the reward formulas.
type Tier string

const (
	TierS Tier = "S"
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
)

func (t Tier) IsValid() bool {
	switch t {
	case TierS, TierA, TierB, TierC:
		return true
	default:
		return false
	}
}

const DefaultTier Tier = TierC

type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type Task struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Notes      string          `json:"notes,omitempty"`
	Type       TaskType        `json:"type"`
	Category   Category        `json:"category"`
	Tier       Tier            `json:"tier"`
	BaseSouls  int             `json:"baseSouls"`
	BaseXP     int             `json:"baseXp"`
	HPStake    int             `json:"hpStake"`
	IsCritical bool            `json:"isCritical"`
	Completed  bool            `json:"completed"`
	DueDate    *time.Time      `json:"dueDate,omitempty"`
	Frequency  string          `json:"frequency,omitempty"`
	Checklist  []ChecklistItem `json:"checklist,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ChecklistDone reports whether the task's checklist (if any) is fully checked.
func (t *Task) ChecklistDone() bool {
	for _, item := range t.Checklist {
		if !item.Completed {
			return false
		}
	}
	return true
}

// Reward is a user-defined, off-app incentive purchasable with Souls.
type Reward struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Cost  int    `json:"cost"`
	Notes string `json:"notes,omitempty"`
}

type HistoryAction string

const (
	ActionCompleted HistoryAction = "completed"
	ActionFailed    HistoryAction = "failed"
	ActionPositive  HistoryAction = "positive"
	ActionNegative  HistoryAction = "negative"
)

type HistoryEntry struct {
	ID          string        `json:"id"`
	TaskID      string        `json:"taskId"`
	TaskTitle   string        `json:"taskTitle"`
	TaskType    string        `json:"taskType"`
	Category    Category      `json:"category,omitempty"`
	Action      HistoryAction `json:"action"`
	SoulsEarned int           `json:"soulsEarned"`
	Timestamp   time.Time     `json:"timestamp"`
}

type Buffs struct {
	DamageReduction  bool `json:"damageReduction"`
	RewardMultiplier bool `json:"rewardMultiplier"`
}

type EquipmentState struct {
	Owned    bool `json:"owned"`
	Equipped bool `json:"equipped"`
}

// State is the full persisted aggregate: player vitals, the three task
// collections, the reward catalog and the history log. It is owned
// exclusively by the Engine and serialized as one snapshot after every
// mutation.
type State struct {
	HP             int              `json:"hp"`
	BaseMaxHP      int              `json:"baseMaxHp"`
	XP             int              `json:"xp"`
	XPToLevel      int              `json:"xpToLevel"`
	Level          int              `json:"level"`
	Souls          int              `json:"souls"`
	CategoryXP     map[Category]int `json:"categoryXp"`
	CategoryStreak map[Category]int `json:"categoryStreak"`
	LastCategory   *Category        `json:"lastCategory"`

	Flasks    int `json:"flasks"`
	MaxFlasks int `json:"maxFlasks"`

	Inventory   map[ShopItemID]int              `json:"inventory"`
	ActiveBuffs Buffs                           `json:"activeBuffs"`
	Equipment   map[EquipmentID]*EquipmentState `json:"equipment"`

	HollowLevel    int  `json:"hollowLevel"`
	IsDowned       bool `json:"isDowned"`
	DeathCount     int  `json:"deathCount"`
	SoulsLostTotal int  `json:"soulsLostTotal"`

	SoundEnabled bool `json:"soundEnabled"`

	Habits  []Task `json:"habits"`
	Dailies []Task `json:"dailies"`
	Todos   []Task `json:"todos"`

	Rewards []Reward       `json:"rewards"`
	History []HistoryEntry `json:"history"`
}

// NewState returns the default state for a fresh save.
func NewState() *State {
	return &State{
		HP:             StartingHP,
		BaseMaxHP:      StartingHP,
		XP:             0,
		XPToLevel:      XPToLevelAt(1),
		Level:          1,
		Souls:          0,
		CategoryXP:     zeroCategoryMap(),
		CategoryStreak: zeroCategoryMap(),
		Flasks:         FlaskStartCharges,
		MaxFlasks:      MaxFlasks,
		Inventory:      map[ShopItemID]int{},
		Equipment:      defaultEquipmentState(),
		SoundEnabled:   true,
	}
}

func zeroCategoryMap() map[Category]int {
	m := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		m[c] = 0
	}
	return m
}
