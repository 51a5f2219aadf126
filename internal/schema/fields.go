package schema

// FieldKind tells the loader and the flattener what shape a field takes in
// the document and how it projects into the tabular row.
type FieldKind uint8

const (
	KindString      FieldKind = iota
	KindUint8                 // bounded count/factor, 8-bit range
	KindCategory              // SkillCategory enum
	KindDamageType            // DamageType enum
	KindMeasurement           // {value, explanation, unit?} composite
	KindProficiencyMap
	KindDebuffMap
	KindReagentList
	KindAspectList
)

// Field is one row of the declarative field-mapping table: the external
// document key (which is also the dot-path column name for scalar fields)
// and the decode/encode kind. The loader and the flattener both walk this
// table, so key naming and column order live in exactly one place.
//
// Dotted keys ("requirements.actions") are aliases: the loader accepts the
// dotted key verbatim at the top level or as a nested path through objects.
type Field struct {
	Key  string
	Kind FieldKind
}

// FieldMap lists every Skill field in wire order. Table order is the column
// order of the output row: scalar section first, then the reagent and
// aspect list columns. The two enum-keyed maps sit between those sections
// and are only emitted when map flattening is switched on.
var FieldMap = []Field{
	{Key: "abilityName", Kind: KindString},
	{Key: "type", Kind: KindCategory},
	{Key: "shortDescription", Kind: KindString},
	{Key: "extendedDescription", Kind: KindString},
	{Key: "narrative", Kind: KindString},
	{Key: "cooldownSeconds", Kind: KindUint8},
	{Key: "damageType", Kind: KindDamageType},
	{Key: "requiredSkill", Kind: KindString},
	{Key: "requirements.actions", Kind: KindUint8},
	{Key: "requirements.conditions", Kind: KindString},
	{Key: "baseDamageMultiplier", Kind: KindMeasurement},
	{Key: "immediateDamagePerUse", Kind: KindMeasurement},
	{Key: "effectRange", Kind: KindMeasurement},
	{Key: "areaDamageArc", Kind: KindMeasurement},
	{Key: "proficiencyLevels", Kind: KindProficiencyMap},
	{Key: "debuffs", Kind: KindDebuffMap},
	{Key: "requiredReagents", Kind: KindReagentList},
	{Key: "aspects", Kind: KindAspectList},
}
