package catalog

import (
	"errors"
	"strings"
	"testing"
	"unicode"

	"github.com/danmuck/discodec/internal/dis/record"
	"github.com/danmuck/discodec/internal/testutil/testlog"
)

func TestEntriesMatchRecordNames(t *testing.T) {
	testlog.Start(t)
	seen := map[string]bool{}
	for _, e := range All() {
		r := e.New()
		if got := record.Name(r); got != e.Name {
			t.Fatalf("entry %q constructs %q", e.Name, got)
		}
		if seen[e.Name] {
			t.Fatalf("duplicate entry %q", e.Name)
		}
		seen[e.Name] = true
	}
	if len(Names()) != len(seen) {
		t.Fatalf("Names() returned %d names for %d entries", len(Names()), len(seen))
	}
}

func TestShapesMatchLayouts(t *testing.T) {
	testlog.Start(t)
	for _, e := range All() {
		var nested, lists int
		for _, f := range record.Layout(e.New()) {
			switch {
			case f.Kind == "list" || strings.HasPrefix(f.Kind, "list/"):
				lists++
			case f.Kind != "" && unicode.IsUpper(rune(f.Kind[0])):
				nested++
			}
		}
		var want Shape
		switch {
		case lists > 0:
			want = ShapeContainer
		case nested > 0:
			want = ShapeComposite
		default:
			want = ShapeLeaf
		}
		if e.Shape != want {
			t.Fatalf("%s: shape %s, layout says %s", e.Name, e.Shape, want)
		}
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	testlog.Start(t)
	e, ok := Lookup("  intercomidentifier ")
	if !ok || e.Name != "IntercomIdentifier" {
		t.Fatalf("lookup failed: %+v ok=%v", e, ok)
	}
	r, err := New("EntityID")
	if err != nil || record.Size(r) != 6 {
		t.Fatalf("New(EntityID): size=%d err=%v", record.Size(r), err)
	}
}

func TestNewUnknownRecord(t *testing.T) {
	testlog.Start(t)
	_, err := New("StandardVariableSpecification")
	var unknown UnknownRecordError
	if !errors.As(err, &unknown) || unknown.Name != "StandardVariableSpecification" {
		t.Fatalf("expected UnknownRecordError, got %v", err)
	}
}
