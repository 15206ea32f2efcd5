package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want language.Tag
	}{
		{in: "", want: language.English},
		{in: "fr", want: language.French},
		{in: "fr_CA", want: language.French},
		{in: " en-US ", want: language.English},
		{in: "de", want: language.English},
		{in: "not a tag", want: language.English},
	}
	for _, tc := range tests {
		if got := ResolveTag(tc.in); got != tc.want {
			t.Fatalf("ResolveTag(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPrinterUsesRegisteredCatalog(t *testing.T) {
	t.Parallel()

	en := Printer(language.English).Sprintf(ZombieAttackKey, "Zombie")
	if en != "Zombie attacks slowly with its claws." {
		t.Fatalf("en = %q", en)
	}
	fr := Printer(language.French).Sprintf(ZombieAttackKey, "Zombie")
	if fr != "Zombie attaque lentement avec ses griffes." {
		t.Fatalf("fr = %q", fr)
	}
}

func TestSupportedReturnsCopy(t *testing.T) {
	t.Parallel()

	tags := Supported()
	tags[0] = language.German
	if Supported()[0] != language.English {
		t.Fatal("expected Supported to return a copy")
	}
}
