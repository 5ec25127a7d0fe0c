package access

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in  string
		out Role
	}{
		{"", -1},
		{"foo", -1},
		{RoleSuperAdmin.String(), RoleSuperAdmin},
		{RoleAdmin.String(), RoleAdmin},
		{RoleParticipant.String(), RoleParticipant},
	}

	for _, c := range cases {
		out := ParseRole(c.in)
		if out != c.out {
			t.Errorf("ParseRole(%q) => %d, want %d", c.in, out, c.out)
		}
	}
}

func TestInvitable(t *testing.T) {
	cases := []struct {
		in  Role
		out Role
	}{
		{RoleAdmin, RoleAdmin},
		{RoleParticipant, RoleParticipant},
		{RoleSuperAdmin, RoleParticipant},
		{Role(-1), RoleParticipant},
	}

	for _, c := range cases {
		if out := Invitable(c.in); out != c.out {
			t.Errorf("Invitable(%s) => %s, want %s", c.in, out, c.out)
		}
	}
}

func TestRoleTextRoundTrip(t *testing.T) {
	for _, r := range []Role{RoleParticipant, RoleAdmin, RoleSuperAdmin} {
		text, err := r.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Role
		if err := got.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if got != r {
			t.Errorf("round-trip %s => %s", r, got)
		}
	}

	var r Role
	if err := r.UnmarshalText([]byte("owner")); err == nil {
		t.Error("UnmarshalText(owner) => nil error, want error")
	}
}
