package schema

// Skill is a single loaded skill record. It is built once by the loader,
// read by the flattener, and never mutated in between.
type Skill struct {
	AbilityName           string
	Category              SkillCategory
	ShortDescription      string
	ExtendedDescription   string
	Narrative             string
	CooldownSeconds       uint8
	DamageType            DamageType
	RequiredSkill         string
	Requirements          Requirements
	BaseDamageMultiplier  Measurement
	ImmediateDamagePerUse Measurement
	EffectRange           Measurement
	AreaDamageArc         Measurement
	ProficiencyLevels     map[ProficiencyLevel]Proficiency
	Debuffs               map[Debuff]DebuffEffect
	RequiredReagents      []Reagent
	Aspects               []string
}

// Measurement is a numeric reading with prose context. Unit is nil when the
// measurement has no physical unit (a multiplier, say) — absence is valid.
type Measurement struct {
	Value       float32
	Explanation string
	Unit        *Unit
}

// Proficiency describes how the skill scales at one proficiency level.
type Proficiency struct {
	Description      string
	DamageMultiplier float32
	CooldownFactors  uint8
}

// DebuffEffect describes one debuff the skill can inflict.
type DebuffEffect struct {
	Description  string
	Multiplier   float32
	TickDuration uint8
}

// Requirements gates the use of the skill.
type Requirements struct {
	Actions    uint8
	Conditions string
}
