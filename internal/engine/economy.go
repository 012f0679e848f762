package engine

import "strings"

// Static economy tables. Read-only: the engine and formula code consume these
// but never mutate them.

const (
	// StartingHP is both the starting and the true max HP of a fresh save.
	StartingHP = 50

	// XPLevelBase and XPLevelGrowth define the level curve:
	// xpToLevel = floor(XPLevelBase * XPLevelGrowth^(level-1)).
	XPLevelBase   = 100
	XPLevelGrowth = 1.5

	// XPPerAttributeLevel is the category-XP threshold per attribute level.
	XPPerAttributeLevel = 100

	// DownedXPFactor halves XP gained while downed.
	DownedXPFactor = 0.5

	// DeathSoulsFactor is the fraction of Souls lost on death.
	DeathSoulsFactor = 0.5

	// ReviveHPFactor is the fraction of effective max HP restored on revival,
	// rounded up.
	ReviveHPFactor = 0.25

	// FailCategoryXPFactor is the fraction of a task's base XP deducted from
	// its category bucket on failure.
	FailCategoryXPFactor = 0.5
)

// Hollowing constants: each death reduces effective max HP by 10%, down to a
// 50% floor at hollow level 5.
const (
	MaxHollowLevel       = 5
	HPReductionPerHollow = 0.10
	MinHPPercent         = 0.50
)

// Flask constants.
const (
	MaxFlasks         = 1
	FlaskHealAmount   = 25
	FlaskStartCharges = 1
)

// BaseReward holds the type-determined defaults stamped onto new tasks.
// Each field remains editable per task afterwards.
type BaseReward struct {
	Souls   int
	XP      int
	HPStake int
}

var baseRewards = map[TaskType]BaseReward{
	TaskHabit: {Souls: 5, XP: 2, HPStake: 1},
	TaskDaily: {Souls: 15, XP: 5, HPStake: 3},
	TaskTodo:  {Souls: 25, XP: 10, HPStake: 5},
}

// BaseRewardFor returns the default rewards for a task type.
func BaseRewardFor(t TaskType) BaseReward {
	return baseRewards[t]
}

type ShopItemID string

const (
	ItemEstusFlask       ShopItemID = "estus_flask"
	ItemHumanEffigy      ShopItemID = "human_effigy"
	ItemRingOfProtection ShopItemID = "ring_of_protection"
	ItemGoldenPineResin  ShopItemID = "golden_pine_resin"
)

type ShopItem struct {
	ID          ShopItemID
	Name        string
	Description string
	Cost        int
	Effect      string
	MaxQuantity int
}

// ShopItems is the consumable catalog. Estus flasks are special-cased: buying
// one fills a flask charge instead of entering the inventory map.
var ShopItems = map[ShopItemID]ShopItem{
	ItemEstusFlask: {
		ID:          ItemEstusFlask,
		Name:        "Estus Flask",
		Description: "A warm, golden liquid that restores HP",
		Cost:        100,
		Effect:      "Heal 25 HP",
		MaxQuantity: 3,
	},
	ItemHumanEffigy: {
		ID:          ItemHumanEffigy,
		Name:        "Human Effigy",
		Description: "Restores your humanity and reverses hollowing",
		Cost:        150,
		Effect:      "Remove 1 hollow level, restore max HP",
		MaxQuantity: 5,
	},
	ItemRingOfProtection: {
		ID:          ItemRingOfProtection,
		Name:        "Ring of Protection",
		Description: "Reduces HP loss from failed tasks",
		Cost:        200,
		Effect:      "Next task failure costs 50% less HP",
		MaxQuantity: 3,
	},
	ItemGoldenPineResin: {
		ID:          ItemGoldenPineResin,
		Name:        "Golden Pine Resin",
		Description: "Enhances your next task completion",
		Cost:        75,
		Effect:      "Next completed task grants 2x Souls",
		MaxQuantity: 5,
	},
}

// ShopItemOrder fixes the catalog display order.
var ShopItemOrder = []ShopItemID{
	ItemEstusFlask,
	ItemHumanEffigy,
	ItemRingOfProtection,
	ItemGoldenPineResin,
}

func ParseShopItemID(input string) (ShopItemID, bool) {
	id := ShopItemID(normalizeItemInput(input))
	_, ok := ShopItems[id]
	return id, ok
}

type EquipmentID string

const (
	EquipGreatshield         EquipmentID = "greatshield"
	EquipRingOfFavor         EquipmentID = "ring_of_favor"
	EquipMoonlightGreatsword EquipmentID = "moonlight_greatsword"
)

type EquipmentItem struct {
	ID          EquipmentID
	Name        string
	Description string
	Cost        int
	Effect      string
}

// EquipmentItems is the permanent-ownership catalog. Ownership never expires
// and equipping is a free toggle.
var EquipmentItems = map[EquipmentID]EquipmentItem{
	EquipGreatshield: {
		ID:          EquipGreatshield,
		Name:        "Greatshield",
		Description: "Buffer Zone. First missed deadline costs 0 HP.",
		Cost:        200,
		Effect:      "First daily fail = no HP loss",
	},
	EquipRingOfFavor: {
		ID:          EquipRingOfFavor,
		Name:        "Ring of Favor",
		Description: "Stamina Up. Increases max daily task attempts.",
		Cost:        300,
		Effect:      "+3 daily task attempts",
	},
	EquipMoonlightGreatsword: {
		ID:          EquipMoonlightGreatsword,
		Name:        "Moonlight Greatsword",
		Description: "Hard Mode. Unlocks S-Tier tasks.",
		Cost:        500,
		Effect:      "Unlocks S-Tier challenges",
	},
}

var EquipmentOrder = []EquipmentID{
	EquipGreatshield,
	EquipRingOfFavor,
	EquipMoonlightGreatsword,
}

func ParseEquipmentID(input string) (EquipmentID, bool) {
	id := EquipmentID(normalizeItemInput(input))
	_, ok := EquipmentItems[id]
	return id, ok
}

func defaultEquipmentState() map[EquipmentID]*EquipmentState {
	m := make(map[EquipmentID]*EquipmentState, len(EquipmentItems))
	for id := range EquipmentItems {
		m[id] = &EquipmentState{}
	}
	return m
}

func normalizeItemInput(input string) string {
	s := strings.TrimSpace(strings.ToLower(input))
	return strings.ReplaceAll(s, "-", "_")
}
