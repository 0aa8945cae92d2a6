// File: args_test.go
// Title: Typed Argument Accessor Tests
// Description: Tests for the tolerant numeric readers, sentinel handling
//              and node reference parsing states.

package parser

import (
	"testing"

	"github.com/rigworks/truckdef/pkg/rig/ast"
)

// newLineParser returns a prepared parser with the given line tokenized and
// the collector receiving its diagnostics.
func newLineParser(line string) (*Parser, *Collector) {
	collector := &Collector{}
	p := New(Options{Sink: collector})
	p.prepare("test.truck")
	p.currentLine = line
	p.tokenizeCurrentLine()
	return p, collector
}

func TestArgInt(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		want         int
		wantMessages int
	}{
		{"Plain integer", "42", 42, 0},
		{"Negative integer", "-7", -7, 0},
		{"Trailing garbage keeps prefix", "13rings", 13, 1},
		{"Float input keeps integer prefix", "2.8", 2, 1},
		{"Garbage yields zero", "wheel", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, collector := newLineParser(tt.input)
			if got := p.argInt(0); got != tt.want {
				t.Errorf("argInt(%q) = %d, want %d", tt.input, got, tt.want)
			}
			if len(collector.Messages) != tt.wantMessages {
				t.Errorf("message count = %d, want %d", len(collector.Messages), tt.wantMessages)
			}
		})
	}
}

func TestArgFloat(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		want         float64
		wantMessages int
	}{
		{"Plain float", "2.5", 2.5, 0},
		{"Integer input", "10", 10, 0},
		{"Negative exponent", "1e-3", 0.001, 0},
		{"Trailing garbage keeps prefix", "0.5m", 0.5, 1},
		{"Garbage yields zero", "default", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, collector := newLineParser(tt.input)
			if got := p.argFloat(0); got != tt.want {
				t.Errorf("argFloat(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if len(collector.Messages) != tt.wantMessages {
				t.Errorf("message count = %d, want %d", len(collector.Messages), tt.wantMessages)
			}
		})
	}
}

func TestArgBool(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"1", true},
		{"0", false},
		{"false", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, _ := newLineParser(tt.input)
			if got := p.argBool(0); got != tt.want {
				t.Errorf("argBool(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestArgNullableNode(t *testing.T) {
	p, _ := newLineParser("-1 17")

	none := p.argNullableNode(0)
	if none.IsValidAnyState() {
		t.Errorf("argNullableNode(-1) should be invalid in all states, got flags %b", none.Flags)
	}

	ref := p.argNullableNode(1)
	if !ref.IsValidAnyState() {
		t.Error("argNullableNode(17) should be a valid reference")
	}
	if ref.Num != 17 {
		t.Errorf("Num = %d, want 17", ref.Num)
	}
}

func TestArgRigidityNode(t *testing.T) {
	p, _ := newLineParser("9999 25")

	none := p.argRigidityNode(0)
	if none.IsValidAnyState() {
		t.Error("argRigidityNode(9999) should be invalid in all states")
	}
	ref := p.argRigidityNode(1)
	if !ref.IsValidAnyState() || ref.Num != 25 {
		t.Errorf("argRigidityNode(25) = %+v, want valid ref to 25", ref)
	}
}

func TestArgWheelSide(t *testing.T) {
	tests := []struct {
		input        string
		want         ast.WheelSide
		wantMessages int
	}{
		{"l", ast.WheelSideLeft, 0},
		{"r", ast.WheelSideRight, 0},
		{"x", ast.WheelSideLeft, 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, collector := newLineParser(tt.input)
			if got := p.argWheelSide(0); got != tt.want {
				t.Errorf("argWheelSide(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if len(collector.Messages) != tt.wantMessages {
				t.Errorf("message count = %d, want %d", len(collector.Messages), tt.wantMessages)
			}
		})
	}
}

func TestArgFlareType(t *testing.T) {
	p, collector := newLineParser("u q")

	if got := p.argFlareType(0); got != ast.FlareTypeUserDefined {
		t.Errorf("argFlareType('u') = %c, want 'u'", got)
	}
	if got := p.argFlareType(1); got != ast.FlareTypeHeadlight {
		t.Errorf("argFlareType('q') = %c, want fallback 'f'", got)
	}
	if len(collector.Messages) != 1 {
		t.Errorf("message count = %d, want 1", len(collector.Messages))
	}
}

func TestArgManagedTex(t *testing.T) {
	p, _ := newLineParser("diffuse.dds -")

	if got := p.argManagedTex(0); got != "diffuse.dds" {
		t.Errorf("argManagedTex = %q, want \"diffuse.dds\"", got)
	}
	if got := p.argManagedTex(1); got != "" {
		t.Errorf("argManagedTex(\"-\") = %q, want empty", got)
	}
}

func TestParseNodeRefStringImportMode(t *testing.T) {
	p, _ := newLineParser("")

	ref := p.parseNodeRefString("12")
	if !ref.IsValidImportState() || !ref.IsValidRegularState() {
		t.Fatalf("both states should be valid before finalization, flags %b", ref.Flags)
	}
	if ref.MustCheckNamedFirst() {
		t.Error("no named node was defined, named-first flag should be unset")
	}
	if ref.Num != 12 {
		t.Errorf("Num = %d, want 12", ref.Num)
	}

	p.anyNamedNode = true
	ref = p.parseNodeRefString("12")
	if !ref.MustCheckNamedFirst() {
		t.Error("named-first flag should be set after a named node definition")
	}
}

func TestParseNodeRefStringNegativeNumber(t *testing.T) {
	p, collector := newLineParser("")

	ref := p.parseNodeRefString("-3")
	if ref.Num != 3 {
		t.Errorf("Num = %d, want 3 (absolute value)", ref.Num)
	}
	if len(collector.Messages) != 1 || collector.Messages[0].Severity != SeverityWarning {
		t.Errorf("expected one warning, got %v", collector.Messages)
	}
}

func TestParseNodeRefStringNamedOnlyMode(t *testing.T) {
	p, _ := newLineParser("")
	p.seq.setFileFormatVersion(450)

	ref := p.parseNodeRefString("frame_left")
	if ref.IsValidImportState() {
		t.Error("import state must be unusable once legacy addressing is off")
	}
	if !ref.IsValidRegularState() || !ref.IsRegularNamed() {
		t.Errorf("regular named state expected, flags %b", ref.Flags)
	}
}
