package namepolicy_test

import (
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/sirkon/untrustedpy/internal/diag"
	"github.com/sirkon/untrustedpy/internal/namepolicy"
)

func TestCheckName(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "plain", input: "x", wantErr: false},
		{name: "lone underscore", input: "_", wantErr: false},
		{name: "leading underscore", input: "_tmp0", wantErr: true},
		{name: "roles suffix", input: "foo__roles__", wantErr: true},
		{name: "print", input: "print", wantErr: true},
		{name: "printed", input: "printed", wantErr: true},
		{name: "absent", input: "", wantErr: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var sink diag.Sink
			namepolicy.New(nil).CheckName(&sink, 1, tc.input)
			if got := sink.HasErrors(); got != tc.wantErr {
				t.Fatalf("CheckName(%q): HasErrors() = %v, want %v", tc.input, got, tc.wantErr)
			}
		})
	}
}

func TestCheckAttrName(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "plain", input: "b", wantErr: false},
		{name: "lone underscore rejected for attrs", input: "_", wantErr: true},
		{name: "leading underscore", input: "_b", wantErr: true},
		{name: "roles suffix", input: "x__roles__", wantErr: true},
		{name: "print allowed as attr", input: "print", wantErr: false},
		{name: "printed allowed as attr", input: "printed", wantErr: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var sink diag.Sink
			namepolicy.New(nil).CheckAttrName(&sink, 1, tc.input)
			if got := sink.HasErrors(); got != tc.wantErr {
				t.Fatalf("CheckAttrName(%q): HasErrors() = %v, want %v", tc.input, got, tc.wantErr)
			}
		})
	}
}

func TestExtraReservedSuffix(t *testing.T) {
	var sink diag.Sink
	p := namepolicy.New([]string{"__hook__"})
	p.CheckName(&sink, 1, "my__hook__")

	if !sink.HasErrors() {
		t.Fatal("expected extra reserved suffix to be rejected")
	}

	deepequal.SideBySide(t, "line", 1, sink.Errors()[0].Line)
}
