package lamda

import (
	"reflect"
	"testing"
)

func TestParseComment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"plain", "! Comment", "Comment", true},
		{"extra whitespace", "!  text   ", "text", true},
		{"leading whitespace", "   ! text", "text", true},
		{"bare marker", "!", "", true},
		{"no marker", "Comment", "", false},
		{"wrong marker", "# Comment", "", false},
		{"blank", "   ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseComment(tt.input)
			if ok != tt.ok {
				t.Fatalf("parseComment(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("parseComment(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCommentIdempotentTrim(t *testing.T) {
	a, _ := parseComment("!  text   ")
	b, _ := parseComment("! text")
	if a != b || a != "text" {
		t.Errorf("got %q and %q, want both \"text\"", a, b)
	}
}

func TestParseNameLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantInfo string
	}{
		{"name with comment", "  TEST ! Additional information  ", "TEST", "Additional information"},
		{"name only", "HCO+", "HCO+", ""},
		{"plain trailing text", "CO carbon monoxide", "CO", "carbon monoxide"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotName, gotInfo := parseNameLine(tt.input)
			if gotName != tt.wantName || gotInfo != tt.wantInfo {
				t.Errorf("parseNameLine(%q) = (%q, %q), want (%q, %q)",
					tt.input, gotName, gotInfo, tt.wantName, tt.wantInfo)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"  65 ", 65, true},
		{"0", 0, true},
		{"-1", 0, false},
		{"3.5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseCount(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseCount(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{" 32.3  ", 32.3, true},
		{"16", 16, true},
		{"2.7e1", 27, true},
		{"heavy", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseWeight(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseWeight(%q) = (%g, %v), want (%g, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParsePartnerLine(t *testing.T) {
	t.Run("all known codes", func(t *testing.T) {
		wantNames := map[PartnerID]string{
			PartnerH2:        "H2",
			PartnerParaH2:    "para-H2",
			PartnerOrthoH2:   "ortho-H2",
			PartnerElectrons: "electrons",
			PartnerH:         "H",
			PartnerHe:        "He",
			PartnerHPlus:     "H+",
		}
		for code := 1; code <= 7; code++ {
			id, _, ok := parsePartnerLine(string(rune('0'+code)) + " something")
			if !ok {
				t.Fatalf("code %d not accepted", code)
			}
			if int(id) != code {
				t.Errorf("code %d parsed as %d", code, int(id))
			}
			if id.String() != wantNames[id] {
				t.Errorf("PartnerID(%d).String() = %q, want %q", code, id.String(), wantNames[id])
			}
		}
	})

	t.Run("trailing info trimmed", func(t *testing.T) {
		id, info, ok := parsePartnerLine("2 ! Additional info ")
		if !ok || id != PartnerParaH2 || info != "Additional info" {
			t.Errorf("got (%v, %q, %v), want (para-H2, \"Additional info\", true)", id, info, ok)
		}
	})

	t.Run("rejections", func(t *testing.T) {
		for _, input := range []string{"0 H2", "8 mystery", "9 O + H", "-1 x", "He atomic", ""} {
			if _, _, ok := parsePartnerLine(input); ok {
				t.Errorf("parsePartnerLine(%q) accepted, want rejection", input)
			}
		}
	})
}

func TestParseTemperatures(t *testing.T) {
	t.Run("valid grid", func(t *testing.T) {
		temps, bad := parseTemperatures("10.1 20.2  30.3     40.4   ")
		if bad != "" {
			t.Fatalf("unexpected bad token %q", bad)
		}
		want := []float64{10.1, 20.2, 30.3, 40.4}
		if !reflect.DeepEqual(temps, want) {
			t.Errorf("temps = %v, want %v", temps, want)
		}
	})

	t.Run("first bad token reported", func(t *testing.T) {
		_, bad := parseTemperatures("10.0 warm 30.0 cold")
		if bad != "warm" {
			t.Errorf("bad = %q, want \"warm\"", bad)
		}
	})

	t.Run("empty line is an empty grid", func(t *testing.T) {
		temps, bad := parseTemperatures("   ")
		if bad != "" || len(temps) != 0 {
			t.Errorf("got (%v, %q), want empty grid", temps, bad)
		}
	})
}
