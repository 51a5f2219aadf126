package schema

// Enumerated field types and their wire-form tables. Every enumerator has
// exactly one canonical external string; decode is an exact, case-sensitive
// match against that table and encode reproduces the same string.

type SkillCategory uint8

const (
	CategoryMelee SkillCategory = iota
	CategoryRanged
	CategoryUtility
	CategorySpell
	CategoryHealing
)

type DamageType uint8

const (
	DamagePhysicalSlashing DamageType = iota
	DamageMagical
)

type ProficiencyLevel uint8

const (
	ProficiencyNovice ProficiencyLevel = iota
	ProficiencyAdept
	ProficiencyMaster
)

type Debuff uint8

const (
	DebuffRiskOfCounterAttack Debuff = iota
)

type Reagent uint8

const (
	ReagentSparklingPowder Reagent = iota
	ReagentBlood
)

type Unit uint8

const (
	UnitMeters Unit = iota
	UnitDegrees
)

// WireTable maps an enum type to its canonical external strings. The pair
// order is fixed and doubles as the deterministic iteration order wherever
// enum keys drive column layout.
type WireTable[E comparable] struct {
	name  string
	pairs []wirePair[E]
}

type wirePair[E comparable] struct {
	value E
	wire  string
}

// Wire returns the canonical external string for v. Unknown values map to
// "" and indicate a table/constant mismatch, which tests guard against.
func (t *WireTable[E]) Wire(v E) string {
	for _, p := range t.pairs {
		if p.value == v {
			return p.wire
		}
	}
	return ""
}

// Parse matches s against the wire-form table. An unmatched string yields an
// invalid_enum_value error naming the field path.
func (t *WireTable[E]) Parse(path, s string) (E, error) {
	for _, p := range t.pairs {
		if p.wire == s {
			return p.value, nil
		}
	}
	var zero E
	return zero, Errf(CodeInvalidEnumValue, path, "unknown %s value %q", t.name, s)
}

// Values returns every enumerator in table order.
func (t *WireTable[E]) Values() []E {
	out := make([]E, len(t.pairs))
	for i, p := range t.pairs {
		out[i] = p.value
	}
	return out
}

var (
	Categories = &WireTable[SkillCategory]{name: "skill category", pairs: []wirePair[SkillCategory]{
		{CategoryMelee, "MeleeCombatSkill"},
		{CategoryRanged, "RangedCombatSkill"},
		{CategoryUtility, "UtilitySkill"},
		{CategorySpell, "SpellSkill"},
		{CategoryHealing, "HealingSkill"},
	}}

	DamageTypes = &WireTable[DamageType]{name: "damage type", pairs: []wirePair[DamageType]{
		{DamagePhysicalSlashing, "Physical/Slashing"},
		{DamageMagical, "Magical"},
	}}

	ProficiencyLevels = &WireTable[ProficiencyLevel]{name: "proficiency level", pairs: []wirePair[ProficiencyLevel]{
		{ProficiencyNovice, "novice"},
		{ProficiencyAdept, "adept"},
		{ProficiencyMaster, "master"},
	}}

	Debuffs = &WireTable[Debuff]{name: "debuff", pairs: []wirePair[Debuff]{
		{DebuffRiskOfCounterAttack, "RiskOfCounterAttack"},
	}}

	Reagents = &WireTable[Reagent]{name: "reagent", pairs: []wirePair[Reagent]{
		{ReagentSparklingPowder, "SparklingPowder"},
		{ReagentBlood, "Blood"},
	}}

	Units = &WireTable[Unit]{name: "unit", pairs: []wirePair[Unit]{
		{UnitMeters, "meters"},
		{UnitDegrees, "degrees"},
	}}
)

// TabularForm is the lowercase-with-underscore form a reagent takes in CSV
// output, distinct from its document wire form.
func (r Reagent) TabularForm() string {
	switch r {
	case ReagentSparklingPowder:
		return "sparkling_powder"
	case ReagentBlood:
		return "blood"
	}
	return ""
}

func (c SkillCategory) String() string { return Categories.Wire(c) }

func (d DamageType) String() string { return DamageTypes.Wire(d) }

func (p ProficiencyLevel) String() string { return ProficiencyLevels.Wire(p) }

func (d Debuff) String() string { return Debuffs.Wire(d) }

func (r Reagent) String() string { return Reagents.Wire(r) }

func (u Unit) String() string { return Units.Wire(u) }
