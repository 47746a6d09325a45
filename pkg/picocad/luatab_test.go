package picocad

import "testing"

func TestEvalTable(t *testing.T) {
	tab, err := EvalTable("{1, 'two', true, {3}, key=4, nested={inner='x'}}")
	if err != nil {
		t.Fatalf("EvalTable failed: %v", err)
	}

	if len(tab.Seq) != 4 {
		t.Fatalf("got %d sequence entries, want 4", len(tab.Seq))
	}
	if tab.Seq[0].Kind != KindNumber || tab.Seq[0].Number != 1 {
		t.Errorf("entry 0 got %+v", tab.Seq[0])
	}
	if tab.Seq[1].Kind != KindString || tab.Seq[1].Str != "two" {
		t.Errorf("entry 1 got %+v", tab.Seq[1])
	}
	if tab.Seq[2].Kind != KindBool || !tab.Seq[2].Bool {
		t.Errorf("entry 2 got %+v", tab.Seq[2])
	}
	if tab.Seq[3].Kind != KindTable || len(tab.Seq[3].Table.Seq) != 1 {
		t.Errorf("entry 3 got %+v", tab.Seq[3])
	}

	if v, ok := tab.Named["key"]; !ok || v.Number != 4 {
		t.Errorf("key got %+v", v)
	}
	nested, ok := tab.Named["nested"]
	if !ok || nested.Kind != KindTable {
		t.Fatalf("nested got %+v", nested)
	}
	if v := nested.Table.Named["inner"]; v.Str != "x" {
		t.Errorf("inner got %+v", v)
	}
}

func TestEvalTable_Errors(t *testing.T) {
	if _, err := EvalTable("{1, 2"); err == nil {
		t.Error("accepted an unterminated table")
	}
	if _, err := EvalTable("42"); err == nil {
		t.Error("accepted a non-table value")
	}
}

func TestEvalTable_SequenceStopsAtNil(t *testing.T) {
	// Index 3 is absent, so the ordered part ends at two entries.
	tab, err := EvalTable("{1, 2, [4]=9}")
	if err != nil {
		t.Fatalf("EvalTable failed: %v", err)
	}
	if len(tab.Seq) != 2 {
		t.Errorf("got %d sequence entries, want 2", len(tab.Seq))
	}
}
