package cpf

import "testing"

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"known valid formatted", "529.982.247-25", true},
		{"known valid bare", "52998224725", true},
		{"known valid 111444", "111.444.777-35", true},
		{"known valid sequential", "123.456.789-09", true},
		{"valid with stray punctuation", "529 982 247/25", true},
		{"all zeros", "000.000.000-00", false},
		{"all ones", "11111111111", false},
		{"all nines", "99999999999", false},
		{"second check digit wrong", "529.982.247-24", false},
		{"first check digit wrong", "529.982.247-35", false},
		{"mutated leading digit", "629.982.247-25", false},
		{"ten digits", "529.982.247-2", false},
		{"twelve digits", "529.982.247-255", false},
		{"empty", "", false},
		{"letters only", "abc.def.ghi-jk", false},
		{"letters mixed in", "5a998224725", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.input); got != tt.want {
				t.Errorf("Valid(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"52998224725", "529.982.247-25"},
		{"529.982.247-25", "529.982.247-25"},
		{"529 982 247 25", "529.982.247-25"},
		{"12345678909", "123.456.789-09"},
		// Not 11 digits: stripped, never padded or truncated.
		{"1234", "1234"},
		{"", ""},
		{"abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Format(tt.input); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{
		"52998224725",
		"529.982.247-25",
		"111.444.777-35",
		"12345678909",
		"00000000000", // formatting does not validate
		"1234",
	}
	for _, in := range inputs {
		once := Format(in)
		if twice := Format(once); twice != once {
			t.Errorf("Format not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestStrip(t *testing.T) {
	if got := Strip("529.982.247-25"); got != "52998224725" {
		t.Errorf("Strip() = %q, want %q", got, "52998224725")
	}
	if got := Strip("no digits"); got != "" {
		t.Errorf("Strip() = %q, want empty", got)
	}
}
