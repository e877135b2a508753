package model

import (
	"errors"
	"reflect"
	"testing"
)

func TestModelPassthroughReadsReflectRecord(t *testing.T) {
	record := Record{"name": "Alice", "age": 30}
	m, err := New(record)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	name, ok, err := m.Get("name")
	if err != nil || !ok || name != "Alice" {
		t.Fatalf("unexpected name read: ok=%v value=%v err=%v", ok, name, err)
	}
	age, ok, err := m.Get("age")
	if err != nil || !ok || age != 30 {
		t.Fatalf("unexpected age read: ok=%v value=%v err=%v", ok, age, err)
	}

	record["age"] = 31
	age, ok, err = m.Get("age")
	if err != nil || !ok || age != 31 {
		t.Fatalf("expected external mutation to be visible: ok=%v value=%v err=%v", ok, age, err)
	}
}

func TestModelSetUpdatesRecordAndNothingElse(t *testing.T) {
	record := Record{"name": "Alice", "age": 30}
	m, err := New(record)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	if err := m.Set("age", 31); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if record["age"] != 31 {
		t.Fatalf("expected record age=31, got %v", record["age"])
	}
	if record["name"] != "Alice" {
		t.Fatalf("expected name untouched, got %v", record["name"])
	}
	if len(record) != 2 {
		t.Fatalf("expected no extra record fields, got %d", len(record))
	}
}

func TestModelSharedRecordAliasing(t *testing.T) {
	record := Record{"host": "localhost"}
	m, err := New(record)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	if got := m.Record(); !sameRecord(got, record) {
		t.Fatalf("expected the model to hold the record reference, not a copy")
	}

	record["host"] = "example.com"
	host, ok, err := m.Get("host")
	if err != nil || !ok || host != "example.com" {
		t.Fatalf("expected external write visible through accessor")
	}

	delete(record, "host")
	host, ok, err = m.Get("host")
	if err != nil || ok || host != nil {
		t.Fatalf("expected deleted field to read absent: ok=%v value=%v", ok, host)
	}

	if err := m.Set("host", "10.0.0.1"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if record["host"] != "10.0.0.1" {
		t.Fatalf("expected accessor write visible through original map")
	}
}

func sameRecord(a, b Record) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

func TestModelNilRecordFailsConstruction(t *testing.T) {
	m, err := New(nil)
	if m != nil {
		t.Fatalf("expected no instance on failure")
	}
	if !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
}

func TestModelSetErrors(t *testing.T) {
	m, err := New(Record{"id": 7}, WithRules(func(rules RuleSet) {
		rules["id"].Set = SetNone()
	}))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	if err := m.Set("missing", 1); !errors.Is(err, ErrUnknownProperty) {
		t.Fatalf("expected ErrUnknownProperty, got %v", err)
	}
	if err := m.Set("id", 8); !errors.Is(err, ErrReadOnlyProperty) {
		t.Fatalf("expected ErrReadOnlyProperty, got %v", err)
	}
	if id, ok, err := m.Get("id"); err != nil || !ok || id != 7 {
		t.Fatalf("expected read side unaffected: ok=%v value=%v err=%v", ok, id, err)
	}
}

func TestModelRenameAndDerivedGetter(t *testing.T) {
	record := Record{"age": 30}
	m, err := New(record, WithRules(func(rules RuleSet) {
		rules["age"].Key = "years"
		rules["age"].Get = GetFunc(func(raw any, field string, _ *Model) (any, bool, error) {
			if field != "age" {
				t.Fatalf("expected getter to receive original field name, got %q", field)
			}
			return raw.(int) * 2, true, nil
		})
	}))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	years, ok, err := m.Get("years")
	if err != nil || !ok || years != 60 {
		t.Fatalf("unexpected derived read: ok=%v value=%v err=%v", ok, years, err)
	}
	if m.Has("age") {
		t.Fatalf("expected original name to be unclaimed after rename")
	}
	if _, ok := record["years"]; ok {
		t.Fatalf("expected no alias created in the record")
	}

	// Mirror setter resolves to none for function getters.
	if err := m.Set("years", 10); !errors.Is(err, ErrReadOnlyProperty) {
		t.Fatalf("expected read-only property, got %v", err)
	}
}

func TestModelRuleDeletionSuppressesProperty(t *testing.T) {
	m, err := New(Record{"id": 7, "secret": "x"}, WithRules(func(rules RuleSet) {
		delete(rules, "secret")
	}))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	if m.Has("secret") {
		t.Fatalf("expected deleted rule to install nothing")
	}
	if _, ok, err := m.Get("secret"); err != nil || ok {
		t.Fatalf("expected absent read: ok=%v err=%v", ok, err)
	}
	if err := m.Set("secret", "y"); !errors.Is(err, ErrUnknownProperty) {
		t.Fatalf("expected unknown property on write, got %v", err)
	}
}

func TestModelBothSidesDisabledInstallsNothing(t *testing.T) {
	m, err := New(Record{"ghost": 1}, WithRules(func(rules RuleSet) {
		rules["ghost"].Get = GetNone()
		// Mirror set resolves to none because get is not the plain mirror.
	}))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if m.Has("ghost") {
		t.Fatalf("expected no property for fully disabled rule")
	}
}

func TestModelCustomSetterControlsRecordWrite(t *testing.T) {
	record := Record{"port": 80}
	m, err := New(record, WithRules(func(rules RuleSet) {
		rules["port"].Set = SetFunc(func(value any, _ string, _ *Model) (any, bool, error) {
			n, isInt := value.(int)
			if !isInt {
				return nil, false, errors.New("port must be an int")
			}
			if n < 0 {
				// Suppress the write entirely.
				return nil, false, nil
			}
			return n + 1000, true, nil
		})
	}))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	if err := m.Set("port", 8080); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if record["port"] != 9080 {
		t.Fatalf("expected transformed write, got %v", record["port"])
	}

	if err := m.Set("port", -1); err != nil {
		t.Fatalf("suppressed set failed: %v", err)
	}
	if record["port"] != 9080 {
		t.Fatalf("expected suppressed write to leave record untouched, got %v", record["port"])
	}

	if err := m.Set("port", "http"); err == nil || err.Error() != "port must be an int" {
		t.Fatalf("expected setter error to propagate unwrapped, got %v", err)
	}
}

func TestModelGetterErrorPropagatesUnwrapped(t *testing.T) {
	boom := errors.New("boom")
	m, err := New(Record{"x": 1}, WithRules(func(rules RuleSet) {
		rules["x"].Get = GetFunc(func(any, string, *Model) (any, bool, error) {
			return nil, false, boom
		})
	}))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if _, _, err := m.Get("x"); !errors.Is(err, boom) {
		t.Fatalf("expected getter error, got %v", err)
	}
}

func TestModelAttachmentsAndListing(t *testing.T) {
	parent := &struct{ name string }{name: "root"}
	m, err := New(Record{"b": 2, "a": 1}, WithParent(parent))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	for _, name := range []string{"_data", "_parent", "_memo"} {
		if !m.Has(name) {
			t.Fatalf("expected attachment %q installed", name)
		}
	}
	data, ok, err := m.Get("_data")
	if err != nil || !ok {
		t.Fatalf("record attachment read failed: ok=%v err=%v", ok, err)
	}
	if !sameRecord(data.(Record), m.Record()) {
		t.Fatalf("expected record attachment to expose the shared reference")
	}
	if got, ok, _ := m.Get("_parent"); !ok || got != any(parent) {
		t.Fatalf("unexpected parent attachment: ok=%v value=%v", ok, got)
	}
	if _, ok, _ := m.Get("_memo"); !ok {
		t.Fatalf("expected memo attachment readable")
	}
	if err := m.Set("_data", Record{}); !errors.Is(err, ErrReadOnlyProperty) {
		t.Fatalf("expected attachments to be read-only, got %v", err)
	}

	// Attachments are unlisted by default; properties are listed and sorted.
	names := m.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("unexpected names: %v", names)
	}
	if m.Len() != 2 {
		t.Fatalf("unexpected len: %d", m.Len())
	}
}

func TestModelNoParentMeansNoParentAccessor(t *testing.T) {
	m, err := New(Record{"a": 1})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if m.Has("_parent") {
		t.Fatalf("expected no parent accessor without a parent")
	}
	if m.Parent() != nil {
		t.Fatalf("expected nil parent")
	}
}

func TestModelListingFlags(t *testing.T) {
	m, err := New(Record{"a": 1},
		WithParent("p"),
		WithListedRecord(),
		WithListedParent(),
		WithUnlistedProperties(),
	)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	names := m.Names()
	if len(names) != 2 || names[0] != "_data" || names[1] != "_parent" {
		t.Fatalf("unexpected names under flipped flags: %v", names)
	}
	// Unlisted properties still resolve reads and writes.
	if v, ok, err := m.Get("a"); err != nil || !ok || v != 1 {
		t.Fatalf("expected unlisted property readable: ok=%v value=%v err=%v", ok, v, err)
	}
}

func TestModelConfigurableAttachmentKeys(t *testing.T) {
	m, err := NewWithConfig(Record{"a": 1}, Config{
		RecordKey: "$record",
		ParentKey: "$parent",
		MemoKey:   "$memo",
		Parent:    "p",
	})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	for _, name := range []string{"$record", "$parent", "$memo"} {
		if !m.Has(name) {
			t.Fatalf("expected renamed attachment %q", name)
		}
	}
	if m.Has("_data") || m.Has("_parent") || m.Has("_memo") {
		t.Fatalf("expected default attachment names unused")
	}
}

func TestModelRecordFieldNeverShadowsAttachment(t *testing.T) {
	record := Record{"_data": "impostor", "a": 1}
	m, err := New(record)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	data, ok, err := m.Get("_data")
	if err != nil || !ok {
		t.Fatalf("attachment read failed: ok=%v err=%v", ok, err)
	}
	if _, isRecord := data.(Record); !isRecord {
		t.Fatalf("expected attachment to win the collision, got %T", data)
	}
	// The colliding record field keeps its rule but installs no property.
	names := m.Names()
	if len(names) != 1 || names[0] != "a" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestModelManualAccessorWinsCollision(t *testing.T) {
	reads := 0
	m, err := New(Record{"version": 1},
		WithAccessor("version", func(m *Model) (any, bool, error) {
			reads++
			return "v1.0", true, nil
		}, nil),
	)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	v, ok, err := m.Get("version")
	if err != nil || !ok || v != "v1.0" {
		t.Fatalf("expected manual accessor to win: ok=%v value=%v err=%v", ok, v, err)
	}
	if reads != 1 {
		t.Fatalf("expected one read, got %d", reads)
	}
	if err := m.Set("version", 2); !errors.Is(err, ErrReadOnlyProperty) {
		t.Fatalf("expected nil write side to disable writes, got %v", err)
	}
}

func TestModelRenameCollisionLowestFieldWins(t *testing.T) {
	m, err := New(Record{"a": "from-a", "b": "from-b"}, WithRules(func(rules RuleSet) {
		rules["a"].Key = "shared"
		rules["b"].Key = "shared"
	}))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	v, ok, err := m.Get("shared")
	if err != nil || !ok || v != "from-a" {
		t.Fatalf("expected field a to claim the shared name: ok=%v value=%v", ok, v)
	}
	if m.Len() != 1 {
		t.Fatalf("expected a single installed property, got %d", m.Len())
	}
}

func TestModelRangeAndSnapshot(t *testing.T) {
	m, err := New(Record{"b": 2, "a": 1, "hidden": 3}, WithRules(func(rules RuleSet) {
		rules["hidden"].Get = GetNone()
		rules["hidden"].Set = SetPass()
	}))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	var order []string
	if err := m.Range(func(name string, value any) bool {
		order = append(order, name)
		return true
	}); err != nil {
		t.Fatalf("range failed: %v", err)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("expected sorted readable visits, got %v", order)
	}

	snap, err := m.Snapshot()
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if len(snap) != 2 || snap["a"] != 1 || snap["b"] != 2 {
		t.Fatalf("unexpected snapshot: %v", snap)
	}
	snap["a"] = 99
	if m.Record()["a"] != 1 {
		t.Fatalf("expected snapshot to be detached from the record")
	}
}

func TestModelRangeStopsOnGetterError(t *testing.T) {
	boom := errors.New("boom")
	m, err := New(Record{"a": 1, "b": 2}, WithRules(func(rules RuleSet) {
		rules["b"].Get = GetFunc(func(any, string, *Model) (any, bool, error) {
			return nil, false, boom
		})
	}))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	visited := 0
	err = m.Range(func(string, any) bool {
		visited++
		return true
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected getter error from range, got %v", err)
	}
	if visited != 1 {
		t.Fatalf("expected walk to stop at the failing getter, visited %d", visited)
	}
}

func TestModelIDsAreUniquePerInstance(t *testing.T) {
	a, err := New(Record{})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	b, err := New(Record{})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if a.ID() == "" || a.ID() == b.ID() {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", a.ID(), b.ID())
	}
}

func TestModelEmptyRecordStillGetsAttachments(t *testing.T) {
	m, err := New(Record{})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if !m.Has("_data") || !m.Has("_memo") {
		t.Fatalf("expected attachments on an empty record")
	}
	if m.Len() != 0 {
		t.Fatalf("expected no listed properties, got %d", m.Len())
	}
}
