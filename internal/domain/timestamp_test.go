package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestStaff_DecodesNaiveHireDate(t *testing.T) {
	raw := `{"id":3,"first_name":"Ava","last_name":"Nguyen","email":"ava@ndis.com","phone":null,"position":"Nurse","status":"on_leave","hire_date":"2024-03-05T09:30:00.123456"}`

	var s Staff
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.HireDate == nil {
		t.Fatal("hire_date not decoded")
	}
	want := time.Date(2024, 3, 5, 9, 30, 0, 123456000, time.UTC)
	if !s.HireDate.Equal(want) {
		t.Errorf("hire_date = %v, want %v", s.HireDate.Time, want)
	}
	if s.Phone != nil {
		t.Errorf("phone = %v, want nil", *s.Phone)
	}
	if s.Status != StaffStatusOnLeave || !s.Status.Valid() {
		t.Errorf("status = %q", s.Status)
	}
	if s.FullName() != "Ava Nguyen" {
		t.Errorf("FullName = %q", s.FullName())
	}
}

func TestTimestamp_NullAndEmpty(t *testing.T) {
	for _, raw := range []string{`null`, `""`} {
		var ts Timestamp
		if err := json.Unmarshal([]byte(raw), &ts); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if !ts.IsZero() {
			t.Errorf("%s decoded to %v", raw, ts.Time)
		}
	}
	var missing *Timestamp
	if got := missing.DateString(); got != "N/A" {
		t.Errorf("DateString on nil = %q", got)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2024-03-05T09:30:00Z", false},
		{"2024-03-05T09:30:00+10:00", false},
		{"2024-03-05T09:30:00", false},
		{"2024-03-05", false},
		{"05/03/2024", true},
	}
	for _, tt := range tests {
		_, err := ParseTimestamp(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTimestamp(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestStaffStatus_Valid(t *testing.T) {
	if StaffStatus("retired").Valid() {
		t.Error("unknown status reported valid")
	}
}
