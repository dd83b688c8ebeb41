package wordstats

import "testing"

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		correct int
		want    Status
	}{
		{0, StatusNew},
		{1, StatusLearning},
		{2, StatusLearning},
		{4, StatusLearning},
		{5, StatusMastered},
		{6, StatusMastered},
		{100, StatusMastered},
	}

	for _, tt := range tests {
		got := DeriveStatus(tt.correct)
		if got != tt.want {
			t.Errorf("DeriveStatus(%d) = %q, want %q", tt.correct, got, tt.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"new", "learning", "mastered"} {
		got, err := ParseStatus(valid)
		if err != nil {
			t.Errorf("ParseStatus(%q): %v", valid, err)
		}
		if string(got) != valid {
			t.Errorf("ParseStatus(%q) = %q", valid, got)
		}
	}

	if _, err := ParseStatus("rusty"); err == nil {
		t.Error("ParseStatus(rusty) should fail")
	}
	if _, err := ParseStatus(""); err == nil {
		t.Error("ParseStatus of empty string should fail")
	}
}
