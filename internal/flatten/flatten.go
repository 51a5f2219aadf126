// Package flatten projects a loaded Skill onto one flat tabular row. The
// encoder walks the schema field-mapping table once and emits (column,
// value) pairs directly; the three sections are stitched in memory with an
// alignment check between each.
package flatten

import (
	"strconv"

	"github.com/skillforge/skillconv/internal/schema"
)

// DefaultDelimiter joins reagent and aspect list values inside their single
// column.
const DefaultDelimiter = "|"

// Options controls the projection.
type Options struct {
	// IncludeMaps also flattens the proficiency-level and debuff maps into
	// dot-path columns. Off by default: the historical output omitted both
	// maps, and downstream consumers depend on the historical column set.
	IncludeMaps bool
	// Delimiter overrides DefaultDelimiter for the list columns.
	Delimiter string
}

func (o Options) delimiter() string {
	if o.Delimiter == "" {
		return DefaultDelimiter
	}
	return o.Delimiter
}

// Row is one aligned header+value pair, ready for the sink.
type Row struct {
	Header []string
	Values []string
}

// Encode flattens sk into a single row: scalar section first, then the
// reagent column, then the aspect column. Header and value counts are
// checked per section and in total; a mismatch is encoding_failure, never a
// panic.
func Encode(sk *schema.Skill, opts Options) (*Row, error) {
	row := &Row{}

	header, values := scalarSection(sk, opts)
	if err := appendSection(row, "scalar", header, values); err != nil {
		return nil, err
	}
	header, values = reagentSection(sk, opts.delimiter())
	if err := appendSection(row, "requiredReagents", header, values); err != nil {
		return nil, err
	}
	header, values = aspectSection(sk, opts.delimiter())
	if err := appendSection(row, "aspects", header, values); err != nil {
		return nil, err
	}

	if len(row.Header) != len(row.Values) {
		return nil, schema.Errf(schema.CodeEncodingFailure, "",
			"assembled %d header columns but %d values", len(row.Header), len(row.Values))
	}
	return row, nil
}

// appendSection stitches one section onto the row, enforcing the alignment
// contract before the section is accepted.
func appendSection(row *Row, name string, header, values []string) error {
	if len(header) != len(values) {
		return schema.Errf(schema.CodeEncodingFailure, name,
			"section emitted %d header columns but %d values", len(header), len(values))
	}
	row.Header = append(row.Header, header...)
	row.Values = append(row.Values, values...)
	return nil
}

// scalarSection emits every non-map, non-list field in field-table order.
// Composites flatten to dot-joined column names; enums re-encode to their
// wire form. The two enum-keyed maps are skipped unless IncludeMaps is set.
func scalarSection(sk *schema.Skill, opts Options) (header, values []string) {
	for _, f := range schema.FieldMap {
		switch f.Kind {
		case schema.KindString:
			header = append(header, f.Key)
			values = append(values, stringField(sk, f.Key))
		case schema.KindUint8:
			header = append(header, f.Key)
			values = append(values, uintField(sk, f.Key))
		case schema.KindCategory:
			header = append(header, f.Key)
			values = append(values, schema.Categories.Wire(sk.Category))
		case schema.KindDamageType:
			header = append(header, f.Key)
			values = append(values, schema.DamageTypes.Wire(sk.DamageType))
		case schema.KindMeasurement:
			h, v := measurementColumns(f.Key, measurementField(sk, f.Key))
			header = append(header, h...)
			values = append(values, v...)
		case schema.KindProficiencyMap:
			if opts.IncludeMaps {
				h, v := proficiencyColumns(sk, f.Key)
				header = append(header, h...)
				values = append(values, v...)
			}
		case schema.KindDebuffMap:
			if opts.IncludeMaps {
				h, v := debuffColumns(sk, f.Key)
				header = append(header, h...)
				values = append(values, v...)
			}
		}
	}
	return header, values
}

func reagentSection(sk *schema.Skill, delim string) (header, values []string) {
	items := make([]string, len(sk.RequiredReagents))
	for i, r := range sk.RequiredReagents {
		items[i] = r.TabularForm()
	}
	return []string{"requiredReagents"}, []string{JoinList(items, delim)}
}

func aspectSection(sk *schema.Skill, delim string) (header, values []string) {
	return []string{"aspects"}, []string{JoinList(sk.Aspects, delim)}
}

func measurementColumns(key string, m schema.Measurement) (header, values []string) {
	header = []string{key + ".value", key + ".explanation", key + ".unit"}
	unit := ""
	if m.Unit != nil {
		unit = schema.Units.Wire(*m.Unit)
	}
	values = []string{formatFloat(m.Value), m.Explanation, unit}
	return header, values
}

// proficiencyColumns emits dot-path columns for every level present in the
// record, in wire-table order so the layout is deterministic.
func proficiencyColumns(sk *schema.Skill, key string) (header, values []string) {
	for _, lvl := range schema.ProficiencyLevels.Values() {
		p, ok := sk.ProficiencyLevels[lvl]
		if !ok {
			continue
		}
		prefix := key + "." + schema.ProficiencyLevels.Wire(lvl)
		header = append(header, prefix+".description", prefix+".damageMultiplier", prefix+".cooldownFactors")
		values = append(values, p.Description, formatFloat(p.DamageMultiplier), formatUint(p.CooldownFactors))
	}
	return header, values
}

func debuffColumns(sk *schema.Skill, key string) (header, values []string) {
	for _, deb := range schema.Debuffs.Values() {
		d, ok := sk.Debuffs[deb]
		if !ok {
			continue
		}
		prefix := key + "." + schema.Debuffs.Wire(deb)
		header = append(header, prefix+".description", prefix+".multiplier", prefix+".tickDuration")
		values = append(values, d.Description, formatFloat(d.Multiplier), formatUint(d.TickDuration))
	}
	return header, values
}

func stringField(sk *schema.Skill, key string) string {
	switch key {
	case "abilityName":
		return sk.AbilityName
	case "shortDescription":
		return sk.ShortDescription
	case "extendedDescription":
		return sk.ExtendedDescription
	case "narrative":
		return sk.Narrative
	case "requiredSkill":
		return sk.RequiredSkill
	case "requirements.conditions":
		return sk.Requirements.Conditions
	}
	return ""
}

func uintField(sk *schema.Skill, key string) string {
	switch key {
	case "cooldownSeconds":
		return formatUint(sk.CooldownSeconds)
	case "requirements.actions":
		return formatUint(sk.Requirements.Actions)
	}
	return ""
}

func measurementField(sk *schema.Skill, key string) schema.Measurement {
	switch key {
	case "baseDamageMultiplier":
		return sk.BaseDamageMultiplier
	case "immediateDamagePerUse":
		return sk.ImmediateDamagePerUse
	case "effectRange":
		return sk.EffectRange
	case "areaDamageArc":
		return sk.AreaDamageArc
	}
	return schema.Measurement{}
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func formatUint(v uint8) string {
	return strconv.FormatUint(uint64(v), 10)
}
