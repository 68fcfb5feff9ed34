package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestLine(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	tests := []struct {
		version, commit, date string
		want                  string
	}{
		{"1.2.3", "", "", "realign 1.2.3"},
		{"1.2.3", "abc123", "", "realign 1.2.3 (abc123)"},
		{"0.1.0-dev", "abc123", "2024-01-15", "realign 0.1.0-dev (abc123) built 2024-01-15"},
	}
	for _, tt := range tests {
		Version, GitCommit, BuildDate = tt.version, tt.commit, tt.date
		if got := Line(false); got != tt.want {
			t.Errorf("Line() = %q, want %q", got, tt.want)
		}
	}
}

func TestColored(t *testing.T) {
	origVersion := Version
	origNoColor := color.NoColor
	defer func() { Version, color.NoColor = origVersion, origNoColor }()

	color.NoColor = true
	for _, v := range []string{"1.2.3", "0.1.0-dev", "1.0.0-rc.1+build.5", "dev"} {
		Version = v
		if got := Colored(); got != v {
			t.Errorf("Colored() = %q, want %q with colors off", got, v)
		}
	}

	color.NoColor = false
	Version = "1.2.3"
	if got := Colored(); got == "1.2.3" {
		t.Error("expected escape sequences with colors on")
	}
}
