// Package loader reads a nested skill document (JSON or YAML) into a
// schema.Skill, applying the field-mapping table's aliases and enum
// wire-form lookups. Loading is fail-fast: the first structural problem
// aborts the load and no partial record is returned.
package loader

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/skillforge/skillconv/internal/schema"
)

// Format selects the document syntax.
type Format uint8

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatForPath picks the document format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, schema.Errf(schema.CodeSourceUnavailable, "",
			"unsupported document extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// Load parses raw document bytes and decodes them into a Skill. Parse
// problems surface as parse_failure; structural problems carry the dotted
// path of the offending field.
func Load(raw []byte, format Format) (*schema.Skill, error) {
	doc := map[string]any{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, schema.Wrap(schema.CodeParseFailure, "", err)
		}
	default:
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, schema.Wrap(schema.CodeParseFailure, "", err)
		}
	}
	return decode(doc)
}

// decode walks the field-mapping table and fills a Skill from the generic
// document. Every table entry is required; only Measurement.unit may be
// absent.
func decode(doc map[string]any) (*schema.Skill, error) {
	sk := &schema.Skill{
		ProficiencyLevels: map[schema.ProficiencyLevel]schema.Proficiency{},
		Debuffs:           map[schema.Debuff]schema.DebuffEffect{},
	}
	for _, f := range schema.FieldMap {
		raw, ok := resolve(doc, f.Key)
		if !ok {
			return nil, schema.Errf(schema.CodeMissingRequiredField, f.Key, "required field is absent")
		}
		if err := decodeField(sk, f, raw); err != nil {
			return nil, err
		}
	}
	return sk, nil
}

func decodeField(sk *schema.Skill, f schema.Field, raw any) error {
	switch f.Kind {
	case schema.KindString:
		v, err := asString(f.Key, raw)
		if err != nil {
			return err
		}
		switch f.Key {
		case "abilityName":
			sk.AbilityName = v
		case "shortDescription":
			sk.ShortDescription = v
		case "extendedDescription":
			sk.ExtendedDescription = v
		case "narrative":
			sk.Narrative = v
		case "requiredSkill":
			sk.RequiredSkill = v
		case "requirements.conditions":
			sk.Requirements.Conditions = v
		}

	case schema.KindUint8:
		v, err := asUint8(f.Key, raw)
		if err != nil {
			return err
		}
		switch f.Key {
		case "cooldownSeconds":
			sk.CooldownSeconds = v
		case "requirements.actions":
			sk.Requirements.Actions = v
		}

	case schema.KindCategory:
		s, err := asString(f.Key, raw)
		if err != nil {
			return err
		}
		v, err := schema.Categories.Parse(f.Key, s)
		if err != nil {
			return err
		}
		sk.Category = v

	case schema.KindDamageType:
		s, err := asString(f.Key, raw)
		if err != nil {
			return err
		}
		v, err := schema.DamageTypes.Parse(f.Key, s)
		if err != nil {
			return err
		}
		sk.DamageType = v

	case schema.KindMeasurement:
		m, err := decodeMeasurement(f.Key, raw)
		if err != nil {
			return err
		}
		switch f.Key {
		case "baseDamageMultiplier":
			sk.BaseDamageMultiplier = m
		case "immediateDamagePerUse":
			sk.ImmediateDamagePerUse = m
		case "effectRange":
			sk.EffectRange = m
		case "areaDamageArc":
			sk.AreaDamageArc = m
		}

	case schema.KindProficiencyMap:
		return decodeProficiencies(sk, f.Key, raw)

	case schema.KindDebuffMap:
		return decodeDebuffs(sk, f.Key, raw)

	case schema.KindReagentList:
		items, err := asList(f.Key, raw)
		if err != nil {
			return err
		}
		sk.RequiredReagents = make([]schema.Reagent, 0, len(items))
		for i, item := range items {
			path := fmt.Sprintf("%s[%d]", f.Key, i)
			s, err := asString(path, item)
			if err != nil {
				return err
			}
			r, err := schema.Reagents.Parse(path, s)
			if err != nil {
				return err
			}
			sk.RequiredReagents = append(sk.RequiredReagents, r)
		}

	case schema.KindAspectList:
		items, err := asList(f.Key, raw)
		if err != nil {
			return err
		}
		sk.Aspects = make([]string, 0, len(items))
		for i, item := range items {
			s, err := asString(fmt.Sprintf("%s[%d]", f.Key, i), item)
			if err != nil {
				return err
			}
			sk.Aspects = append(sk.Aspects, s)
		}
	}
	return nil
}

func decodeMeasurement(path string, raw any) (schema.Measurement, error) {
	var m schema.Measurement
	obj, err := asObject(path, raw)
	if err != nil {
		return m, err
	}
	rawVal, ok := obj["value"]
	if !ok {
		return m, schema.Errf(schema.CodeMissingRequiredField, path+".value", "required field is absent")
	}
	if m.Value, err = asFloat32(path+".value", rawVal); err != nil {
		return m, err
	}
	rawExpl, ok := obj["explanation"]
	if !ok {
		return m, schema.Errf(schema.CodeMissingRequiredField, path+".explanation", "required field is absent")
	}
	if m.Explanation, err = asString(path+".explanation", rawExpl); err != nil {
		return m, err
	}
	// unit is genuinely optional: absence means the value has no physical unit
	if rawUnit, ok := obj["unit"]; ok {
		s, err := asString(path+".unit", rawUnit)
		if err != nil {
			return m, err
		}
		u, err := schema.Units.Parse(path+".unit", s)
		if err != nil {
			return m, err
		}
		m.Unit = &u
	}
	return m, nil
}

func decodeProficiencies(sk *schema.Skill, path string, raw any) error {
	obj, err := asObject(path, raw)
	if err != nil {
		return err
	}
	for _, key := range sortedKeys(obj) {
		keyPath := path + "." + key
		lvl, err := schema.ProficiencyLevels.Parse(keyPath, key)
		if err != nil {
			return err
		}
		entry, err := asObject(keyPath, obj[key])
		if err != nil {
			return err
		}
		var p schema.Proficiency
		if p.Description, err = requireString(keyPath, entry, "description"); err != nil {
			return err
		}
		if p.DamageMultiplier, err = requireFloat32(keyPath, entry, "damageMultiplier"); err != nil {
			return err
		}
		if p.CooldownFactors, err = requireUint8(keyPath, entry, "cooldownFactors"); err != nil {
			return err
		}
		sk.ProficiencyLevels[lvl] = p
	}
	return nil
}

func decodeDebuffs(sk *schema.Skill, path string, raw any) error {
	obj, err := asObject(path, raw)
	if err != nil {
		return err
	}
	for _, key := range sortedKeys(obj) {
		keyPath := path + "." + key
		deb, err := schema.Debuffs.Parse(keyPath, key)
		if err != nil {
			return err
		}
		entry, err := asObject(keyPath, obj[key])
		if err != nil {
			return err
		}
		var d schema.DebuffEffect
		if d.Description, err = requireString(keyPath, entry, "description"); err != nil {
			return err
		}
		if d.Multiplier, err = requireFloat32(keyPath, entry, "multiplier"); err != nil {
			return err
		}
		if d.TickDuration, err = requireUint8(keyPath, entry, "tickDuration"); err != nil {
			return err
		}
		sk.Debuffs[deb] = d
	}
	return nil
}

// resolve finds key in the document: exact top-level match first, then the
// dotted key as a path through nested objects. This is what lets
// "requirements.actions" match both the pre-flattened and the nested form.
func resolve(doc map[string]any, key string) (any, bool) {
	if v, ok := doc[key]; ok {
		return v, true
	}
	if !strings.Contains(key, ".") {
		return nil, false
	}
	cur := any(doc)
	for _, part := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// --- shape and numeric coercion helpers ---

func asString(path string, raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", schema.Errf(schema.CodeTypeMismatch, path, "expected text, got %s", shapeName(raw))
	}
	return s, nil
}

func asObject(path string, raw any) (map[string]any, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, schema.Errf(schema.CodeTypeMismatch, path, "expected object, got %s", shapeName(raw))
	}
	return m, nil
}

func asList(path string, raw any) ([]any, error) {
	l, ok := raw.([]any)
	if !ok {
		return nil, schema.Errf(schema.CodeTypeMismatch, path, "expected list, got %s", shapeName(raw))
	}
	return l, nil
}

// asUint8 accepts the integer representations the JSON and YAML decoders
// produce and bounds the result to the 8-bit range.
func asUint8(path string, raw any) (uint8, error) {
	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	case uint64:
		v = float64(n)
	case map[string]any, []any:
		return 0, schema.Errf(schema.CodeTypeMismatch, path, "expected number, got %s", shapeName(raw))
	default:
		return 0, schema.Errf(schema.CodeInvalidNumericValue, path, "cannot read %v as a number", raw)
	}
	if v != math.Trunc(v) || v < 0 || v > math.MaxUint8 {
		return 0, schema.Errf(schema.CodeInvalidNumericValue, path, "%v is outside the 0-255 range", v)
	}
	return uint8(v), nil
}

// asFloat32 accepts any numeric representation that fits single precision.
func asFloat32(path string, raw any) (float32, error) {
	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	case uint64:
		v = float64(n)
	case map[string]any, []any:
		return 0, schema.Errf(schema.CodeTypeMismatch, path, "expected number, got %s", shapeName(raw))
	default:
		return 0, schema.Errf(schema.CodeInvalidNumericValue, path, "cannot read %v as a number", raw)
	}
	if math.Abs(v) > math.MaxFloat32 {
		return 0, schema.Errf(schema.CodeInvalidNumericValue, path, "%v overflows single precision", v)
	}
	return float32(v), nil
}

func requireString(parent string, obj map[string]any, key string) (string, error) {
	raw, ok := obj[key]
	if !ok {
		return "", schema.Errf(schema.CodeMissingRequiredField, parent+"."+key, "required field is absent")
	}
	return asString(parent+"."+key, raw)
}

func requireFloat32(parent string, obj map[string]any, key string) (float32, error) {
	raw, ok := obj[key]
	if !ok {
		return 0, schema.Errf(schema.CodeMissingRequiredField, parent+"."+key, "required field is absent")
	}
	return asFloat32(parent+"."+key, raw)
}

func requireUint8(parent string, obj map[string]any, key string) (uint8, error) {
	raw, ok := obj[key]
	if !ok {
		return 0, schema.Errf(schema.CodeMissingRequiredField, parent+"."+key, "required field is absent")
	}
	return asUint8(parent+"."+key, raw)
}

func shapeName(raw any) string {
	switch raw.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "list"
	case string:
		return "text"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", raw)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
