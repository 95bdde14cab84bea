package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", "2023-02-29", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestValidateDateRange(t *testing.T) {
	cases := []struct {
		from, to string
		fields   []string
	}{
		{"2025-01-01", "2025-01-31", nil},
		{"2025-01-01", "2025-01-01", nil},
		{"2025-02-01", "2025-01-01", []string{"from"}},
		{"yesterday", "2025-01-01", []string{"from"}},
		{"2025-01-01", "", []string{"to"}},
		{"", "", []string{"from", "to"}},
	}
	for _, c := range cases {
		errs := ValidateDateRange(c.from, c.to)
		if len(errs) != len(c.fields) {
			t.Errorf("ValidateDateRange(%q, %q) = %v, want fields %v", c.from, c.to, errs, c.fields)
			continue
		}
		for i, field := range c.fields {
			if errs[i].Field != field {
				t.Errorf("ValidateDateRange(%q, %q)[%d].Field = %q, want %q", c.from, c.to, i, errs[i].Field, field)
			}
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "from", Message: "invalid"},
		{Field: "user_id", Message: "is required"},
	}
	got := errs.Error()
	want := "from: invalid; user_id: is required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "from", Message: "invalid"},
		{Field: "user_id", Message: "is required"},
		{Field: "from", Message: "must not be after to"},
	}
	got := errs.ToMap()
	want := map[string]string{"from": "invalid", "user_id": "is required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
