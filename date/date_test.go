package date

import "testing"

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	valid := []string{
		"2017-12-15",
		"2020-02-29", // leap year: divisible by 4, not by 100
		"2000-02-29", // leap year: divisible by 400
		"1999-01-01",
	}
	for _, str := range valid {
		d, err := Parse(str)
		if err != nil {
			t.Errorf("Parse(%q) = %v, want no error", str, err)
			continue
		}
		if d.String() != str {
			t.Errorf("Parse(%q).String() = %q, want %q", str, d.String(), str)
		}
	}

	invalid := []string{
		"",
		"2023-02-30", // no such day
		"2021-02-29", // not a leap year
		"1900-02-29", // divisible by 100 but not 400
		"2023/01/01", // wrong separator
		"2023-1-1",   // unpadded
		"23-01-01",   // two-digit year
		"2023-13-01", // no such month
		"2023-00-10",
		"2023-01-00",
		"not a date",
		"2023-01-02 extra",
	}
	for _, str := range invalid {
		if _, err := Parse(str); err == nil {
			t.Errorf("Parse(%q) = nil error, want error", str)
		}
	}
}

func TestBeforeAfter(t *testing.T) {
	d1, d2 := New(2024, 12, 31), New(2025, 1, 1)

	if !d1.Before(d2) {
		t.Errorf("%v.Before(%v) = false, want true", d1, d2)
	}
	if !d2.After(d1) {
		t.Errorf("%v.After(%v) = false, want true", d2, d1)
	}
	if d1.Compare(d2) != -1 || d2.Compare(d1) != 1 || d1.Compare(d1) != 0 {
		t.Errorf("Compare is inconsistent for %v and %v", d1, d2)
	}
	if d1.Add(1) != d2 {
		t.Errorf("%v.Add(1) = %v, want %v", d1, d1.Add(1), d2)
	}
}

func TestRange(t *testing.T) {
	r := Range{From: MustParse("2020-01-01"), To: MustParse("2020-12-31")}

	if !r.Contains(MustParse("2020-06-15")) {
		t.Errorf("Contains(2020-06-15) = false, want true")
	}
	if !r.Contains(r.From) || !r.Contains(r.To) {
		t.Errorf("Contains must include both boundaries")
	}
	if r.Contains(MustParse("2019-12-31")) || r.Contains(MustParse("2021-01-01")) {
		t.Errorf("Contains accepted a date outside the range")
	}
	if got, want := r.String(), "2020-01-01 to 2020-12-31"; got != want {
		t.Errorf("Range.String() = %q, want %q", got, want)
	}
}
