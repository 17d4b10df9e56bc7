package cards

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/ericogr/boss-cards/internal/keys"

	"gopkg.in/yaml.v3"
)

//go:embed default_dataset.yaml
var defaultDataset []byte

// Dataset is the static catalog the engine reads from. Lookups are indexed
// by keys.CardKey once at load time; a Dataset is read-only afterwards and
// safe to share between goroutines.
type Dataset struct {
	Adventurers []AdventurerDef `yaml:"adventurers" json:"adventurers"`
	Bosses      []BossDef       `yaml:"bosses" json:"bosses"`
	Supports    []SupportDef    `yaml:"supports" json:"supports"`
	Equipment   []EquipmentDef  `yaml:"equipment" json:"equipment"`
	Events      []EventDef      `yaml:"events" json:"events"`
	Fields      []FieldDef      `yaml:"fields" json:"fields"`

	adventurers map[string]int
	actions     map[string]map[string]int
	bosses      map[string]int
	cardKinds   map[string]CardKind
	supports    map[string]int
	equipment   map[string]int
	events      map[string]int
	fields      map[string]int
}

// Default returns the embedded dataset. It panics if the embedded file is
// invalid, which can only happen through a broken build.
func Default() *Dataset {
	ds, err := Parse(defaultDataset)
	if err != nil {
		panic(fmt.Sprintf("cards: embedded dataset: %v", err))
	}
	return ds
}

// Load reads and validates a dataset file.
func Load(path string) (*Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	ds, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes YAML, validates every entry and builds the indexes.
func Parse(b []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(b, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if err := ds.index(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (d *Dataset) index() error {
	if len(d.Adventurers) == 0 {
		return fmt.Errorf("adventurers is empty")
	}
	if len(d.Bosses) == 0 {
		return fmt.Errorf("bosses is empty")
	}

	d.adventurers = make(map[string]int, len(d.Adventurers))
	d.actions = make(map[string]map[string]int, len(d.Adventurers))
	for i, a := range d.Adventurers {
		k := keys.CardKey(a.Name)
		if k == "" {
			return fmt.Errorf("adventurer #%d missing 'name'", i+1)
		}
		if _, dup := d.adventurers[k]; dup {
			return fmt.Errorf("duplicate adventurer '%s'", a.Name)
		}
		if a.HP <= 0 || a.MaxAP <= 0 || a.Atk < 0 {
			return fmt.Errorf("adventurer '%s': hp and max_ap must be positive, atk non-negative", a.Name)
		}
		acts := make(map[string]int, len(a.Actions))
		for j, act := range a.Actions {
			ak := keys.CardKey(act.Name)
			if ak == "" {
				return fmt.Errorf("adventurer '%s': action #%d missing 'name'", a.Name, j+1)
			}
			if _, dup := acts[ak]; dup {
				return fmt.Errorf("adventurer '%s': duplicate action '%s'", a.Name, act.Name)
			}
			if err := validateAction(act); err != nil {
				return fmt.Errorf("adventurer '%s': %w", a.Name, err)
			}
			acts[ak] = j
		}
		d.adventurers[k] = i
		d.actions[k] = acts
	}

	d.bosses = make(map[string]int, len(d.Bosses))
	for i, b := range d.Bosses {
		k := keys.CardKey(b.Name)
		if k == "" {
			return fmt.Errorf("boss #%d missing 'name'", i+1)
		}
		if _, dup := d.bosses[k]; dup {
			return fmt.Errorf("duplicate boss '%s'", b.Name)
		}
		if b.HP <= 0 {
			return fmt.Errorf("boss '%s': hp must be positive", b.Name)
		}
		for face, bh := range b.Dice {
			if face < 1 || face > 6 {
				return fmt.Errorf("boss '%s': dice face %d outside 1..6", b.Name, face)
			}
			switch bh.Kind {
			case BehaviorSingleAttack, BehaviorAoE, BehaviorSelfHeal:
			default:
				return fmt.Errorf("boss '%s': face %d has unknown kind '%s'", b.Name, face, bh.Kind)
			}
			if bh.Value < 0 {
				return fmt.Errorf("boss '%s': face %d has negative value", b.Name, face)
			}
		}
		d.bosses[k] = i
	}

	// Card names share one namespace because hands hold bare names.
	d.cardKinds = make(map[string]CardKind)
	register := func(kind CardKind, name string, i int, idx map[string]int) error {
		k := keys.CardKey(name)
		if k == "" {
			return fmt.Errorf("%s #%d missing 'name'", kind, i+1)
		}
		if prev, dup := d.cardKinds[k]; dup {
			return fmt.Errorf("duplicate card name '%s' (%s and %s)", name, prev, kind)
		}
		d.cardKinds[k] = kind
		idx[k] = i
		return nil
	}

	d.supports = make(map[string]int, len(d.Supports))
	for i, s := range d.Supports {
		if err := register(KindSupport, s.Name, i, d.supports); err != nil {
			return err
		}
		if err := validateSupport(s); err != nil {
			return err
		}
	}
	d.equipment = make(map[string]int, len(d.Equipment))
	for i, e := range d.Equipment {
		if err := register(KindEquipment, e.Name, i, d.equipment); err != nil {
			return err
		}
	}
	d.events = make(map[string]int, len(d.Events))
	for i, e := range d.Events {
		if err := register(KindEvent, e.Name, i, d.events); err != nil {
			return err
		}
	}
	d.fields = make(map[string]int, len(d.Fields))
	for i, f := range d.Fields {
		if err := register(KindField, f.Name, i, d.fields); err != nil {
			return err
		}
	}
	return nil
}

func validateAction(a ActionDef) error {
	if a.Cost < 0 {
		return fmt.Errorf("action '%s': negative cost", a.Name)
	}
	switch a.Kind {
	case ActionAttack, ActionAttackBossOnly, ActionAoE:
		if a.Damage < 0 {
			return fmt.Errorf("action '%s': negative damage", a.Name)
		}
	case ActionHeal:
		if a.Heal <= 0 {
			return fmt.Errorf("action '%s': heal must be positive", a.Name)
		}
	default:
		return fmt.Errorf("action '%s': unknown kind '%s'", a.Name, a.Kind)
	}
	return nil
}

func validateSupport(s SupportDef) error {
	if s.Adventurer == nil && s.Boss == nil {
		return fmt.Errorf("support '%s': needs an adventurer or boss effect", s.Name)
	}
	if e := s.Adventurer; e != nil {
		switch e.Kind {
		case EffectHeal:
			if e.Value <= 0 {
				return fmt.Errorf("support '%s': heal value must be positive", s.Name)
			}
		case EffectBuff:
			if e.Multiplier <= 0 {
				return fmt.Errorf("support '%s': buff multiplier must be positive", s.Name)
			}
		case EffectDraw:
			if e.PerDefeated <= 0 || e.Cap <= 0 {
				return fmt.Errorf("support '%s': draw needs positive per_defeated and cap", s.Name)
			}
		default:
			return fmt.Errorf("support '%s': unknown adventurer effect '%s'", s.Name, e.Kind)
		}
	}
	if e := s.Boss; e != nil {
		switch e.Kind {
		case EffectDiceMod, EffectDamageUp:
		case EffectDisrupt:
			if e.Value <= 0 {
				return fmt.Errorf("support '%s': disrupt count must be positive", s.Name)
			}
		default:
			return fmt.Errorf("support '%s': unknown boss effect '%s'", s.Name, e.Kind)
		}
	}
	return nil
}

// Adventurer returns the catalog entry for name.
func (d *Dataset) Adventurer(name string) (*AdventurerDef, bool) {
	i, ok := d.adventurers[keys.CardKey(name)]
	if !ok {
		return nil, false
	}
	return &d.Adventurers[i], true
}

// Action returns the named action of the named adventurer.
func (d *Dataset) Action(adventurer, action string) (*ActionDef, bool) {
	k := keys.CardKey(adventurer)
	ai, ok := d.adventurers[k]
	if !ok {
		return nil, false
	}
	j, ok := d.actions[k][keys.CardKey(action)]
	if !ok {
		return nil, false
	}
	return &d.Adventurers[ai].Actions[j], true
}

func (d *Dataset) Boss(name string) (*BossDef, bool) {
	i, ok := d.bosses[keys.CardKey(name)]
	if !ok {
		return nil, false
	}
	return &d.Bosses[i], true
}

func (d *Dataset) Support(name string) (*SupportDef, bool) {
	i, ok := d.supports[keys.CardKey(name)]
	if !ok {
		return nil, false
	}
	return &d.Supports[i], true
}

func (d *Dataset) EquipmentCard(name string) (*EquipmentDef, bool) {
	i, ok := d.equipment[keys.CardKey(name)]
	if !ok {
		return nil, false
	}
	return &d.Equipment[i], true
}

func (d *Dataset) Event(name string) (*EventDef, bool) {
	i, ok := d.events[keys.CardKey(name)]
	if !ok {
		return nil, false
	}
	return &d.Events[i], true
}

func (d *Dataset) Field(name string) (*FieldDef, bool) {
	i, ok := d.fields[keys.CardKey(name)]
	if !ok {
		return nil, false
	}
	return &d.Fields[i], true
}

// KindOf reports the category of a deck card.
func (d *Dataset) KindOf(card string) (CardKind, bool) {
	k, ok := d.cardKinds[keys.CardKey(card)]
	return k, ok
}

// Roster returns the first n adventurers of the catalog, the fixed opening
// party used for both sides.
func (d *Dataset) Roster(n int) []AdventurerDef {
	if n > len(d.Adventurers) {
		n = len(d.Adventurers)
	}
	if n < 0 {
		n = 0
	}
	return append([]AdventurerDef(nil), d.Adventurers[:n]...)
}

// DeckCards lists every deck card once: supports, equipment, events, fields.
func (d *Dataset) DeckCards() []string {
	out := make([]string, 0, len(d.cardKinds))
	for _, s := range d.Supports {
		out = append(out, s.Name)
	}
	for _, e := range d.Equipment {
		out = append(out, e.Name)
	}
	for _, e := range d.Events {
		out = append(out, e.Name)
	}
	for _, f := range d.Fields {
		out = append(out, f.Name)
	}
	return out
}
