package common

import "testing"

func TestRoundedPercent(t *testing.T) {
	cases := []struct {
		part, total, want int
	}{
		{0, 0, 0},
		{2, 3, 67},
		{1, 3, 33},
		{1, 2, 50},
		{1, 8, 13},
		{5, 5, 100},
	}
	for _, c := range cases {
		if got := RoundedPercent(c.part, c.total); got != c.want {
			t.Errorf("RoundedPercent(%d, %d) = %d, expected %d", c.part, c.total, got, c.want)
		}
	}
}

func TestMeetsKPI(t *testing.T) {
	if MeetsKPI(999) {
		t.Error("Expected 999 impressions to miss KPI")
	}
	if !MeetsKPI(1000) {
		t.Error("Expected 1000 impressions to meet KPI")
	}
}

func TestAvatarURL(t *testing.T) {
	got := AvatarURL("jo doe")
	want := "https://api.dicebear.com/7.x/avataaars/svg?seed=jo+doe"
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestParseLeadingInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1500", 1500, true},
		{" 1500abc", 1500, true},
		{"12.5", 12, true},
		{"+7", 7, true},
		{"-3 views", -3, true},
		{"abc1", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"99999999999999999999", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseLeadingInt(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseLeadingInt(%q) = %d, %v, expected %d, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}
