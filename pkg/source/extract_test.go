package source

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAssignments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Assignment
	}{
		{
			name:  "round trip",
			input: "int a; int b; int c; c = a + b * 2;",
			want:  []Assignment{{Target: "c", Expr: "a + b * 2", Line: 1}},
		},
		{
			name:  "several statements over lines",
			input: "x = a * b;\ny = x + c;\n",
			want: []Assignment{
				{Target: "x", Expr: "a * b", Line: 1},
				{Target: "y", Expr: "x + c", Line: 2},
			},
		},
		{
			name:  "malformed expression is still extracted",
			input: "c = + b;",
			want:  []Assignment{{Target: "c", Expr: "+ b", Line: 1}},
		},
		{
			name:  "text after last semicolon ignored",
			input: "a = 1; b = 2",
			want:  []Assignment{{Target: "a", Expr: "1", Line: 1}},
		},
		{
			name:  "empty right-hand side skipped",
			input: "a =; b = 3;",
			want:  []Assignment{{Target: "b", Expr: "3", Line: 1}},
		},
		{
			name:  "first equals wins",
			input: "a = b = c;",
			want:  []Assignment{{Target: "a", Expr: "b = c", Line: 1}},
		},
		{
			name:  "no space around equals",
			input: "total=a+b;",
			want:  []Assignment{{Target: "total", Expr: "a+b", Line: 1}},
		},
		{
			name:  "leading digits are not part of the target",
			input: "9lives = 1;",
			want:  []Assignment{{Target: "lives", Expr: "1", Line: 1}},
		},
		{
			name:  "equals without identifier skipped",
			input: "= 4; 12 = 5;",
			want:  nil,
		},
		{
			name:  "comments and declarations removed",
			input: "// header\nint a = 1; /* note */\nb = a * 2; // tail\n",
			want:  []Assignment{{Target: "b", Expr: "a * 2", Line: 3}},
		},
		{
			name:  "declaration initializer is not an assignment",
			input: "float f = 1;",
			want:  nil,
		},
		{
			name:  "statement spanning lines reports target line",
			input: "\n\nz =\n  a\n  + b;",
			want:  []Assignment{{Target: "z", Expr: "a\n  + b", Line: 3}},
		},
		{
			name:  "no statements",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assignments(tt.input, nil)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Assignments(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestAssignmentString(t *testing.T) {
	a := Assignment{Target: "c", Expr: "a + b * 2"}
	if got := a.String(); got != "c = a + b * 2" {
		t.Errorf("String() = %q", got)
	}
}

func TestReadFileMissing(t *testing.T) {
	name := filepath.Join(t.TempDir(), "input.txt")
	_, err := ReadFile(name)
	if !errors.Is(err, ErrMissingSource) {
		t.Fatalf("expected ErrMissingSource, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected wrapped fs.ErrNotExist, got %v", err)
	}
	if !strings.Contains(err.Error(), name) {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestRead(t *testing.T) {
	got, err := Read(strings.NewReader("a = 1;"), "<stdin>")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "a = 1;" {
		t.Errorf("Read = %q", got)
	}
}
