package storage

import (
	"encoding/json"
	"fmt"
)

// Snapshot schema history. Each migration step takes the previous version's
// JSON object, fills defaults for the fields it introduces, and may
// restructure old fields; everything it does not touch passes through
// unchanged.
//
//	v1: hp/maxHp/xp/xpToLevel/level/soundEnabled + habits/dailies/todos
//	v2: + souls, categoryXp, categoryStreak, lastCategory
//	v3: + hollowLevel, isDowned, deathCount, soulsLostTotal, nested flask{current,max}
//	v4: + inventory, activeBuffs, equipment
//	v5: + rewards, history; flask flattened to flasks/maxFlasks; maxHp renamed baseMaxHp
const CurrentVersion = 5

type migration func(doc map[string]json.RawMessage) error

var migrations = map[int]migration{
	1: migrateV1toV2,
	2: migrateV2toV3,
	3: migrateV3toV4,
	4: migrateV4toV5,
}

// Migrate upgrades a snapshot blob from the given version to CurrentVersion,
// applying every intervening step in order.
func Migrate(fromVersion int, data []byte) ([]byte, error) {
	if fromVersion < 1 {
		return nil, fmt.Errorf("invalid snapshot version %d", fromVersion)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode v%d snapshot: %w", fromVersion, err)
	}

	for v := fromVersion; v < CurrentVersion; v++ {
		step, ok := migrations[v]
		if !ok {
			return nil, fmt.Errorf("no migration from snapshot version %d", v)
		}
		if err := step(doc); err != nil {
			return nil, fmt.Errorf("migrate v%d to v%d: %w", v, v+1, err)
		}
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode migrated snapshot: %w", err)
	}
	return out, nil
}

var categoryKeys = []string{
	"productivity", "sports", "fitness", "self_care", "creativity", "social",
}

func zeroCategoryJSON() json.RawMessage {
	m := make(map[string]int, len(categoryKeys))
	for _, k := range categoryKeys {
		m[k] = 0
	}
	b, _ := json.Marshal(m)
	return b
}

func setDefault(doc map[string]json.RawMessage, key string, value json.RawMessage) {
	if _, ok := doc[key]; !ok {
		doc[key] = value
	}
}

func migrateV1toV2(doc map[string]json.RawMessage) error {
	setDefault(doc, "souls", json.RawMessage(`0`))
	setDefault(doc, "categoryXp", zeroCategoryJSON())
	setDefault(doc, "categoryStreak", zeroCategoryJSON())
	setDefault(doc, "lastCategory", json.RawMessage(`null`))
	return nil
}

func migrateV2toV3(doc map[string]json.RawMessage) error {
	setDefault(doc, "hollowLevel", json.RawMessage(`0`))
	setDefault(doc, "isDowned", json.RawMessage(`false`))
	setDefault(doc, "deathCount", json.RawMessage(`0`))
	setDefault(doc, "soulsLostTotal", json.RawMessage(`0`))
	setDefault(doc, "flask", json.RawMessage(`{"current":1,"max":1}`))
	return nil
}

func migrateV3toV4(doc map[string]json.RawMessage) error {
	setDefault(doc, "inventory", json.RawMessage(`{}`))
	setDefault(doc, "activeBuffs", json.RawMessage(`{"damageReduction":false,"rewardMultiplier":false}`))
	setDefault(doc, "equipment", json.RawMessage(
		`{"greatshield":{"owned":false,"equipped":false},`+
			`"ring_of_favor":{"owned":false,"equipped":false},`+
			`"moonlight_greatsword":{"owned":false,"equipped":false}}`))
	return nil
}

func migrateV4toV5(doc map[string]json.RawMessage) error {
	setDefault(doc, "rewards", json.RawMessage(`[]`))
	setDefault(doc, "history", json.RawMessage(`[]`))

	// Flatten the nested flask object into flasks/maxFlasks scalars.
	if raw, ok := doc["flask"]; ok {
		var flask struct {
			Current int `json:"current"`
			Max     int `json:"max"`
		}
		if err := json.Unmarshal(raw, &flask); err != nil {
			return fmt.Errorf("decode flask: %w", err)
		}
		cur, _ := json.Marshal(flask.Current)
		max, _ := json.Marshal(flask.Max)
		doc["flasks"] = cur
		doc["maxFlasks"] = max
		delete(doc, "flask")
	} else {
		setDefault(doc, "flasks", json.RawMessage(`1`))
		setDefault(doc, "maxFlasks", json.RawMessage(`1`))
	}

	// maxHp was renamed baseMaxHp once hollowing made the cap derived.
	if raw, ok := doc["maxHp"]; ok {
		if _, has := doc["baseMaxHp"]; !has {
			doc["baseMaxHp"] = raw
		}
		delete(doc, "maxHp")
	}
	return nil
}
