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

func TestIsNumeric(t *testing.T) {
	valid := []string{"0", "123", "0042"}
	invalid := []string{"", " ", "1.5", "-3", "12a", "abc"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-03-01", "2024-02-29", "1999-12-31"}
	invalid := []string{"", "soon", "2025-13-01", "2025-02-30", "03/01/2025", "2025-3-1"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"draft", "paid"}
	if !IsInSlice("draft", slice) {
		t.Error("IsInSlice(draft) = false, want true")
	}
	if IsInSlice("void", slice) {
		t.Error("IsInSlice(void) = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "employee_id", Message: "is required"},
		{Field: "start_date", Message: "must be YYYY-MM-DD"},
	}
	want := "employee_id: is required; start_date: must be YYYY-MM-DD"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}

	m := errs.ToMap()
	if m["employee_id"] != "is required" || m["start_date"] != "must be YYYY-MM-DD" {
		t.Errorf("ToMap() = %v", m)
	}
}
