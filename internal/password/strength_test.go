package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStrength_OrderAndText(t *testing.T) {
	reqs := CheckStrength("")

	require.Len(t, reqs, 4)
	assert.Equal(t, "At least 8 characters", reqs[0].Text)
	assert.Equal(t, "At least 1 number", reqs[1].Text)
	assert.Equal(t, "At least 1 uppercase letter", reqs[2].Text)
	assert.Equal(t, "At least 1 special character", reqs[3].Text)
	for _, req := range reqs {
		assert.False(t, req.Met)
	}
}

func TestCheckStrength(t *testing.T) {
	tests := []struct {
		name string
		pass string
		want [4]bool
	}{
		{"Lowercase short", "abc", [4]bool{false, false, false, false}},
		{"Lowercase long", "abcdefgh", [4]bool{true, false, false, false}},
		{"Seven characters", "Abc123!", [4]bool{false, true, true, true}},
		{"Digits only", "12345678", [4]bool{true, true, false, false}},
		{"All requirements", "Abcdef1!", [4]bool{true, true, true, true}},
		{"Space counts as special", "Abc def1", [4]bool{true, true, true, true}},
		{"Non-ASCII counts as special", "héllo", [4]bool{false, false, false, true}},
		{"Length counts characters", "ÅÅÅÅÅÅÅ", [4]bool{false, false, false, true}},
		{"Eight multibyte characters", "ÅÅÅÅÅÅÅÅ", [4]bool{true, false, false, true}},
		{"Lowercase-only letters do not count as uppercase", "password1!", [4]bool{true, true, false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqs := CheckStrength(tt.pass)
			require.Len(t, reqs, 4)
			for i, want := range tt.want {
				assert.Equal(t, want, reqs[i].Met, "requirement %q", reqs[i].Text)
			}
		})
	}
}

func TestCheckStrength_Deterministic(t *testing.T) {
	for _, pass := range []string{"", "a", "Abcdef1!", strings.Repeat("x", 100)} {
		assert.Equal(t, CheckStrength(pass), CheckStrength(pass))
	}
}

func TestScore(t *testing.T) {
	assert.Equal(t, 0, Score(nil))
	assert.Equal(t, 0, Score(CheckStrength("")))
	assert.Equal(t, 1, Score(CheckStrength("abcdefgh")))
	assert.Equal(t, 2, Score(CheckStrength("12345678")))
	assert.Equal(t, 3, Score(CheckStrength("Abc123!")))
	assert.Equal(t, 4, Score(CheckStrength("Abcdef1!")))
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		score int
		want  Tier
	}{
		{0, TierEmpty},
		{1, TierWeak},
		{2, TierWeak},
		{3, TierMedium},
		{4, TierStrong},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.score), "score %d", tt.score)
	}
}

func TestTierLabel(t *testing.T) {
	assert.Equal(t, "Enter a password", TierEmpty.Label())
	assert.Equal(t, "Weak password", TierWeak.Label())
	assert.Equal(t, "Medium password", TierMedium.Label())
	assert.Equal(t, "Strong password", TierStrong.Label())
}

func TestEvaluate(t *testing.T) {
	s := Evaluate("abc")
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, TierEmpty, s.Tier)
	assert.Equal(t, 0, s.Percent())

	s = Evaluate("Abc123!")
	assert.Equal(t, 3, s.Score)
	assert.Equal(t, TierMedium, s.Tier)
	assert.Equal(t, 75, s.Percent())

	s = Evaluate("Abcdef1!")
	assert.Equal(t, 4, s.Score)
	assert.Equal(t, TierStrong, s.Tier)
	assert.Equal(t, 100, s.Percent())
}

func TestMeterClass(t *testing.T) {
	assert.Equal(t, "bg-border", MeterClass(0))
	assert.Equal(t, "bg-red-500", MeterClass(1))
	assert.Equal(t, "bg-orange-500", MeterClass(2))
	assert.Equal(t, "bg-amber-500", MeterClass(3))
	assert.Equal(t, "bg-emerald-500", MeterClass(4))
	assert.Equal(t, "bg-border", MeterClass(-1))
	assert.Equal(t, "bg-emerald-500", MeterClass(9))
}
