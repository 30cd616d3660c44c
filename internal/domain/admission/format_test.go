package admission

import "testing"

func TestFormatName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"john", "John"},
		{"  john   doe ", "John Doe"},
		{"john ", "John "},
		{"john doe  ", "John Doe "},
		{"JOHN DOE", "John Doe"},
		{"mcDONALD o'brien", "Mcdonald O'brien"},
		{"élodie", "Élodie"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := FormatName(tt.in); got != tt.want {
				t.Fatalf("FormatName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatFileNumber(t *testing.T) {
	tests := map[string]string{
		"AB12-34": "1234",
		"":        "",
		"abc":     "",
		" 00 7 ":  "007",
	}
	for in, want := range tests {
		if got := FormatFileNumber(in); got != want {
			t.Fatalf("FormatFileNumber(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatCageNo(t *testing.T) {
	tests := map[string]string{
		"ip1":     "IP 1",
		"IP-12":   "IP 12",
		"ip 3":    "IP 3",
		" w2b ":   "W2B",
		"icu #4 ": "ICU 4",
		"":        "",
		"12":      "12",
	}
	for in, want := range tests {
		if got := FormatCageNo(in); got != want {
			t.Fatalf("FormatCageNo(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatWeight(t *testing.T) {
	tests := map[string]string{
		"4.8":    "4.8",
		"4.8kg":  "4.8",
		"4,8":    "4.8",
		"1.2.3":  "1.23",
		"":       "",
		"abc":    "",
		" 12 kg": "12",
	}
	for in, want := range tests {
		if got := FormatWeight(in); got != want {
			t.Fatalf("FormatWeight(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatDisplayDate(t *testing.T) {
	if got := FormatDisplayDate("2025-12-05"); got != "05-Dec-2025" {
		t.Fatalf("unexpected display date %q", got)
	}
	if got := FormatDisplayDate("not a date"); got != "not a date" {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if got := FormatDisplayDate(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestHeader_Normalize(t *testing.T) {
	h := Header{
		FileNo:    "F-123",
		PetName:   "bruno",
		OwnerName: "ahmed  rahman",
		CageNo:    "ip12",
		Weight:    "4,8 kg",
		Diagnosis: "acute gastroenteritis",
	}.Normalize()

	if h.FileNo != "123" || h.PetName != "Bruno" || h.OwnerName != "Ahmed Rahman" {
		t.Fatalf("unexpected normalized header: %#v", h)
	}
	if h.CageNo != "IP 12" || h.Weight != "4.8" || h.Diagnosis != "Acute Gastroenteritis" {
		t.Fatalf("unexpected normalized header: %#v", h)
	}
}
