package extract

import "testing"

func TestNarrow(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"prose around", "Sure! Here it is:\n{\"a\":1}\nEnjoy.", `{"a":1}`, true},
		{"markdown fence", "```json\n{\"a\":1}\n```", `{"a":1}`, true},
		{"nested braces", `x {"a":{"b":2}} y`, `{"a":{"b":2}}`, true},
		{"braces inside strings", `{"a":"}{"}`, `{"a":"}{"}`, true},
		{"empty", ``, ``, false},
		{"whitespace only", " \n\t ", ``, false},
		{"no braces", `just words`, ``, false},
		{"only open", `{"a":1`, ``, false},
		{"reversed", `} then {`, ``, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Narrow(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("Narrow() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Narrow() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNarrow_Idempotent(t *testing.T) {
	inputs := []string{
		`{"a":1}`,
		"prefix {\"a\":[1,2]} suffix",
		"```\n{\"x\":\"}\"}\n```",
		`{} {}`,
	}
	for _, in := range inputs {
		once, ok := Narrow(in)
		if !ok {
			t.Fatalf("Narrow(%q) failed", in)
		}
		twice, ok := Narrow(once)
		if !ok || twice != once {
			t.Errorf("Narrow not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
