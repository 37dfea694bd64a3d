package dto

import (
	"encoding/json"
	"testing"
)

func TestLoginResponse_NumericUserID(t *testing.T) {
	raw := `{"token":"abc","user":{"id":42,"email":"admin@ndis.com","role":"admin"}}`

	var resp LoginResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	ident := resp.User.Identity()
	if ident.ID != "42" || ident.Email != "admin@ndis.com" || !ident.IsAdmin() {
		t.Fatalf("identity = %+v", ident)
	}
}

func TestID_Variants(t *testing.T) {
	tests := map[string]ID{
		`"u-1"`: "u-1",
		`17`:    "17",
		`null`:  "",
	}
	for raw, want := range tests {
		var id ID
		if err := json.Unmarshal([]byte(raw), &id); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if id != want {
			t.Errorf("%s decoded to %q, want %q", raw, id, want)
		}
	}
	var id ID
	if err := json.Unmarshal([]byte(`{}`), &id); err == nil {
		t.Error("expected error for object id")
	}
}

func TestStaffUpdateRequest_OmitsUnsetFields(t *testing.T) {
	name := "Sam"
	body, err := json.Marshal(StaffUpdateRequest{FirstName: &name})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(body) != `{"first_name":"Sam"}` {
		t.Errorf("body = %s", body)
	}
}
