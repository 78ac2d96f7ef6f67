package blueprint

import (
	"testing"
)

func TestBuiltinBlueprintsAreValid(t *testing.T) {
	for _, b := range builtin() {
		if err := Validate(b); err != nil {
			t.Errorf("%s: %v", b.Exam, err)
		}
	}
}

func TestCFPWeights(t *testing.T) {
	b, ok := Get("CFP")
	if !ok {
		t.Fatal("CFP blueprint not registered")
	}
	tests := map[string]int{
		"TAX": 14,
		"GEN": 18,
		"PSY": 7,
		"XYZ": 0,
	}
	for domain, want := range tests {
		if got := b.Weight(domain); got != want {
			t.Errorf("Weight(%s) = %d, want %d", domain, got, want)
		}
	}
	if !b.Has("RET") || b.Has("XYZ") {
		t.Error("Has() mismatch")
	}
	if got := b.DisplayName("TAX"); got != "Tax Planning" {
		t.Errorf("DisplayName(TAX) = %q", got)
	}
	if got := b.DisplayName("XYZ"); got != "XYZ" {
		t.Errorf("DisplayName(XYZ) = %q, want XYZ", got)
	}
}

func TestByWeight(t *testing.T) {
	b := Blueprint{Exam: "T", Entries: []Entry{
		{Domain: "A", Weight: 20},
		{Domain: "B", Weight: 50},
		{Domain: "C", Weight: 20},
		{Domain: "D", Weight: 10},
	}}
	got := b.ByWeight()
	want := []string{"B", "A", "C", "D"}
	for i, e := range got {
		if e.Domain != want[i] {
			t.Fatalf("ByWeight()[%d] = %s, want %s", i, e.Domain, want[i])
		}
	}
	if b.Entries[0].Domain != "A" {
		t.Error("ByWeight modified the blueprint")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		b       Blueprint
		wantErr bool
	}{
		{
			name: "valid",
			b:    Blueprint{Exam: "X", Entries: []Entry{{Domain: "A", Weight: 40}, {Domain: "B", Weight: 60}}},
		},
		{
			name:    "missing exam",
			b:       Blueprint{Entries: []Entry{{Domain: "A", Weight: 100}}},
			wantErr: true,
		},
		{
			name:    "no entries",
			b:       Blueprint{Exam: "X"},
			wantErr: true,
		},
		{
			name:    "zero weight",
			b:       Blueprint{Exam: "X", Entries: []Entry{{Domain: "A", Weight: 100}, {Domain: "B", Weight: 0}}},
			wantErr: true,
		},
		{
			name:    "duplicate domain",
			b:       Blueprint{Exam: "X", Entries: []Entry{{Domain: "A", Weight: 50}, {Domain: "A", Weight: 50}}},
			wantErr: true,
		},
		{
			name:    "weights not 100",
			b:       Blueprint{Exam: "X", Entries: []Entry{{Domain: "A", Weight: 50}, {Domain: "B", Weight: 40}}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.b)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterAndFor(t *testing.T) {
	b := Blueprint{Exam: "ZZREG", Entries: []Entry{{Domain: "A", Weight: 100}}}
	if err := Register(b); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if got := For("ZZREG"); got.Weight("A") != 100 {
		t.Errorf("For(ZZREG).Weight(A) = %d, want 100", got.Weight("A"))
	}

	unknown := For("NOPE")
	if unknown.Exam != "NOPE" || len(unknown.Entries) != 0 {
		t.Errorf("For(NOPE) = %+v, want empty blueprint", unknown)
	}

	if err := Register(Blueprint{Exam: "ZZBAD", Entries: []Entry{{Domain: "A", Weight: 1}}}); err == nil {
		t.Error("expected error registering invalid blueprint")
	}
	if _, ok := Get("ZZBAD"); ok {
		t.Error("invalid blueprint was registered")
	}

	all := All()
	for i := 1; i < len(all); i++ {
		if all[i-1].Exam > all[i].Exam {
			t.Fatalf("All() not sorted: %s before %s", all[i-1].Exam, all[i].Exam)
		}
	}
}
