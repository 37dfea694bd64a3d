package views

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ndis-platform/admin-console/internal/domain"
)

func TestEngine_RendersPagesInsideLayout(t *testing.T) {
	e := New()
	if err := e.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	phone := "0400 000 000"
	var buf bytes.Buffer
	err := e.Render(&buf, "staff_list", map[string]interface{}{
		"Title":         "Staff",
		"Authenticated": true,
		"Staff": []domain.Staff{
			{ID: 1, FirstName: "Ava", LastName: "Nguyen", Email: "ava@ndis.com", Phone: &phone, Status: domain.StaffStatusOnLeave},
		},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<title>Staff - NDIS Platform</title>", "Ava Nguyen", "0400 000 000", "N/A", "chip-warning", `action="/logout"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestEngine_EscapesBackendText(t *testing.T) {
	e := New()
	var buf bytes.Buffer
	if err := e.Render(&buf, "login", map[string]interface{}{"Error": "<script>x</script>"}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Fatal("error text rendered unescaped")
	}
	if strings.Contains(buf.String(), `action="/logout"`) {
		t.Fatal("anonymous page shows navigation")
	}
}

func TestEngine_UnknownPage(t *testing.T) {
	if err := New().Render(&bytes.Buffer{}, "missing", nil); err == nil {
		t.Fatal("expected error for unknown page")
	}
}

func TestOrNA(t *testing.T) {
	blank := "  "
	val := "Nurse"
	tests := []struct {
		in   *string
		want string
	}{
		{nil, "N/A"},
		{&blank, "N/A"},
		{&val, "Nurse"},
	}
	for _, tt := range tests {
		if got := orNA(tt.in); got != tt.want {
			t.Errorf("orNA = %q, want %q", got, tt.want)
		}
	}
}
