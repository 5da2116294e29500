package budget

import (
	"testing"
	"time"
)

func TestParseBotSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    BotSize
		wantErr bool
	}{
		{"uppercase", "MEDIUM", Medium, false},
		{"lowercase", "medium", Medium, false},
		{"mixed case", "Medium", Medium, false},
		{"xtralarge", "XtraLarge", XtraLarge, false},
		{"surrounding space", " ultimate ", Ultimate, false},
		{"unknown", "huge", "", true},
		{"empty", "", "", true},
		{"prefix only", "xtra", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBotSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBotSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseBotSize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefault_Budgets(t *testing.T) {
	want := map[BotSize]time.Duration{
		Small:     2 * time.Hour,
		Medium:    time.Hour,
		Large:     30 * time.Minute,
		XtraLarge: 5 * time.Minute,
		Ultimate:  2 * time.Minute,
	}

	table := Default()
	for size, d := range want {
		got, ok := table.Budget(size)
		if !ok {
			t.Errorf("Budget(%s) missing", size)
			continue
		}
		if got != d {
			t.Errorf("Budget(%s) = %s, want %s", size, got, d)
		}
	}
}

func TestDefault_TotalOverSizes(t *testing.T) {
	table := Default()
	for _, size := range Sizes() {
		if _, ok := table.Budget(size); !ok {
			t.Errorf("Budget(%s) missing from default table", size)
		}
	}

	if _, ok := table.Budget("GIGANTIC"); ok {
		t.Error("Budget() returned ok for unknown size")
	}
}

func TestTable_Entries(t *testing.T) {
	entries := Default().Entries()
	if len(entries) != len(Sizes()) {
		t.Fatalf("Entries() returned %d rows, want %d", len(entries), len(Sizes()))
	}

	for i, size := range Sizes() {
		if entries[i].Size != size {
			t.Errorf("Entries()[%d].Size = %s, want %s", i, entries[i].Size, size)
		}
	}

	// Mutating the returned slice must not affect the table.
	entries[0].Budget = time.Nanosecond
	if got, _ := Default().Budget(Small); got != 2*time.Hour {
		t.Errorf("Budget(SMALL) = %s after mutating Entries(), want 2h", got)
	}
}

func TestNewTable_Validation(t *testing.T) {
	full := func() map[BotSize]time.Duration {
		return map[BotSize]time.Duration{
			Small:     time.Hour,
			Medium:    time.Hour,
			Large:     time.Hour,
			XtraLarge: time.Hour,
			Ultimate:  time.Hour,
		}
	}

	if _, err := NewTable(full()); err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	missing := full()
	delete(missing, Large)
	if _, err := NewTable(missing); err == nil {
		t.Error("NewTable() expected error for missing size")
	}

	unknown := full()
	unknown["GIGANTIC"] = time.Hour
	if _, err := NewTable(unknown); err == nil {
		t.Error("NewTable() expected error for unknown size")
	}

	zero := full()
	zero[Small] = 0
	if _, err := NewTable(zero); err == nil {
		t.Error("NewTable() expected error for zero budget")
	}
}
