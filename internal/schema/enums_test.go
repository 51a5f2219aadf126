package schema

import (
	"errors"
	"testing"
)

// Every enum must round-trip: parse the canonical wire form, re-encode it,
// and get the identical string back.
func TestWireTableRoundTrip(t *testing.T) {
	roundTrip(t, Categories)
	roundTrip(t, DamageTypes)
	roundTrip(t, ProficiencyLevels)
	roundTrip(t, Debuffs)
	roundTrip(t, Reagents)
	roundTrip(t, Units)
}

func roundTrip[E comparable](t *testing.T, table *WireTable[E]) {
	t.Helper()
	for _, v := range table.Values() {
		wire := table.Wire(v)
		if wire == "" {
			t.Fatalf("%s: enumerator %v has no wire form", table.name, v)
		}
		got, err := table.Parse("field", wire)
		if err != nil {
			t.Fatalf("%s: Parse(%q) failed: %v", table.name, wire, err)
		}
		if got != v {
			t.Errorf("%s: Parse(Wire(%v)) = %v", table.name, v, got)
		}
	}
}

func TestCategoryWireForms(t *testing.T) {
	cases := map[SkillCategory]string{
		CategoryMelee:   "MeleeCombatSkill",
		CategoryRanged:  "RangedCombatSkill",
		CategoryUtility: "UtilitySkill",
		CategorySpell:   "SpellSkill",
		CategoryHealing: "HealingSkill",
	}
	for v, wire := range cases {
		if got := Categories.Wire(v); got != wire {
			t.Errorf("Wire(%d) = %q; want %q", v, got, wire)
		}
	}
}

func TestParseUnknownWire(t *testing.T) {
	_, err := Categories.Parse("type", "FireballSkill")
	if err == nil {
		t.Fatal("Parse accepted an unknown wire value")
	}
	if CodeOf(err) != CodeInvalidEnumValue {
		t.Errorf("code = %q; want %q", CodeOf(err), CodeInvalidEnumValue)
	}
	if PathOf(err) != "type" {
		t.Errorf("path = %q; want %q", PathOf(err), "type")
	}
}

func TestParseIsCaseSensitive(t *testing.T) {
	if _, err := ProficiencyLevels.Parse("proficiencyLevels.Novice", "Novice"); err == nil {
		t.Error("Parse accepted wrong-case key")
	}
}

func TestReagentTabularForm(t *testing.T) {
	if got := ReagentSparklingPowder.TabularForm(); got != "sparkling_powder" {
		t.Errorf("TabularForm() = %q; want sparkling_powder", got)
	}
	if got := ReagentBlood.TabularForm(); got != "blood" {
		t.Errorf("TabularForm() = %q; want blood", got)
	}
}

func TestFieldErrorWrapping(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(CodeSinkWriteFailure, "", cause)
	if !errors.Is(err, cause) {
		t.Error("Wrap lost the cause chain")
	}
	if CodeOf(err) != CodeSinkWriteFailure {
		t.Errorf("code = %q", CodeOf(err))
	}

	fe := Errf(CodeMissingRequiredField, "abilityName", "required field is absent")
	want := "missing_required_field at abilityName: required field is absent"
	if fe.Error() != want {
		t.Errorf("Error() = %q; want %q", fe.Error(), want)
	}
}
