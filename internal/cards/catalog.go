package cards

// ActionKind is the effect family of an adventurer action.
type ActionKind string

const (
	ActionAttack         ActionKind = "attack"
	ActionAttackBossOnly ActionKind = "attack_boss_only"
	ActionAoE            ActionKind = "aoe_attack"
	ActionHeal           ActionKind = "heal"
)

// TargetAllyAll makes a heal action affect every ally.
const TargetAllyAll = "ally_all"

// ActionDef describes one named action in an adventurer's catalog. A
// damaging action with Damage 0 deals the unit's Atk.
type ActionDef struct {
	Name   string     `yaml:"name" json:"name"`
	Kind   ActionKind `yaml:"kind" json:"kind"`
	Cost   int        `yaml:"cost" json:"cost"`
	Damage int        `yaml:"damage" json:"damage,omitempty"`
	Heal   int        `yaml:"heal" json:"heal,omitempty"`
	Target string     `yaml:"target" json:"target,omitempty"`
}

// Damaging reports whether the action deals damage.
func (a ActionDef) Damaging() bool {
	return a.Kind == ActionAttack || a.Kind == ActionAttackBossOnly || a.Kind == ActionAoE
}

type AdventurerDef struct {
	Name    string      `yaml:"name" json:"name"`
	HP      int         `yaml:"hp" json:"hp"`
	Atk     int         `yaml:"atk" json:"atk"`
	MaxAP   int         `yaml:"max_ap" json:"max_ap"`
	Actions []ActionDef `yaml:"actions" json:"actions"`
}

// BehaviorKind is the effect family of a boss dice face.
type BehaviorKind string

const (
	BehaviorSingleAttack BehaviorKind = "single_attack"
	BehaviorAoE          BehaviorKind = "aoe_attack"
	BehaviorSelfHeal     BehaviorKind = "self_heal"
)

type Behavior struct {
	Kind  BehaviorKind `yaml:"kind" json:"kind"`
	Value int          `yaml:"value" json:"value"`
}

// BossDef carries a boss's health pool and its dice table (faces 1..6).
// Faces missing from the table are no-op turns.
type BossDef struct {
	Name string           `yaml:"name" json:"name"`
	HP   int              `yaml:"hp" json:"hp"`
	Dice map[int]Behavior `yaml:"dice" json:"dice"`
}

// Behavior returns the dice-table entry for face.
func (b *BossDef) Behavior(face int) (Behavior, bool) {
	bh, ok := b.Dice[face]
	return bh, ok
}

// CardKind is the category of a deck card.
type CardKind string

const (
	KindSupport   CardKind = "support"
	KindEquipment CardKind = "equipment"
	KindEvent     CardKind = "event"
	KindField     CardKind = "field"
)

// AdventurerEffectKind is the family of a support card's adventurer face.
type AdventurerEffectKind string

const (
	EffectHeal AdventurerEffectKind = "heal"
	EffectBuff AdventurerEffectKind = "buff"
	EffectDraw AdventurerEffectKind = "draw"
)

// AdventurerEffect is the adventurer-facing side of a support card.
//
// heal: Value hp to Target ("ally_all" or a single ally).
// buff: stacking damage multiplier tag on the target unit.
// draw: PerDefeated cards per defeated ally, at most Cap.
type AdventurerEffect struct {
	Kind        AdventurerEffectKind `yaml:"kind" json:"kind"`
	Value       int                  `yaml:"value" json:"value,omitempty"`
	Target      string               `yaml:"target" json:"target,omitempty"`
	Multiplier  float64              `yaml:"multiplier" json:"multiplier,omitempty"`
	PerDefeated int                  `yaml:"per_defeated" json:"per_defeated,omitempty"`
	Cap         int                  `yaml:"cap" json:"cap,omitempty"`
}

// BossEffectKind is the family of a support card's boss face.
type BossEffectKind string

const (
	EffectDiceMod  BossEffectKind = "dice_mod"
	EffectDamageUp BossEffectKind = "damage_up"
	EffectDisrupt  BossEffectKind = "disrupt"
)

// BossEffect is the boss-facing side of a support card. dice_mod and
// damage_up are queued on the player's own boss; disrupt moves up to Value
// cards from the enemy hand to the back of the enemy deck.
type BossEffect struct {
	Kind  BossEffectKind `yaml:"kind" json:"kind"`
	Value int            `yaml:"value" json:"value"`
}

type SupportDef struct {
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description" json:"description"`
	Adventurer  *AdventurerEffect `yaml:"adventurer" json:"adventurer,omitempty"`
	Boss        *BossEffect       `yaml:"boss" json:"boss,omitempty"`
}

// EquipmentDef values are advisory: the engine records equipment on units
// but does not apply these numbers.
type EquipmentDef struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Atk         int    `yaml:"atk" json:"atk,omitempty"`
	HP          int    `yaml:"hp" json:"hp,omitempty"`
}

type EventDef struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

type FieldDef struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}
