package caller

import "testing"

func TestCaller_SameIdentity(t *testing.T) {
	t.Parallel()

	base := Caller{Role: "SALES", ProfileID: "u1"}

	tests := []struct {
		name  string
		other Caller
		want  bool
	}{
		{name: "identical", other: Caller{Role: "SALES", ProfileID: "u1"}, want: true},
		{name: "role changed", other: Caller{Role: RoleAdmin, ProfileID: "u1"}, want: false},
		{name: "profile changed", other: Caller{Role: "SALES", ProfileID: "u2"}, want: false},
		{name: "zero", other: Caller{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := base.SameIdentity(tt.other); got != tt.want {
				t.Errorf("SameIdentity(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestCaller_IsAdmin(t *testing.T) {
	t.Parallel()

	if !(Caller{Role: RoleAdmin}).IsAdmin() {
		t.Error("ADMIN.IsAdmin() = false")
	}
	if (Caller{Role: "admin"}).IsAdmin() {
		t.Error("lowercase admin treated as admin")
	}
	if !(Caller{}).IsZero() {
		t.Error("Caller{}.IsZero() = false")
	}
}

func TestCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		creds       Credentials
		wantPresent bool
		wantBearer  string
	}{
		{
			name:        "raw token",
			creds:       Credentials{Token: "abc", OrgID: "7"},
			wantPresent: true,
			wantBearer:  "Bearer abc",
		},
		{
			name:        "token already prefixed",
			creds:       Credentials{Token: "Bearer abc", OrgID: "7"},
			wantPresent: true,
			wantBearer:  "Bearer abc",
		},
		{
			name:        "missing org",
			creds:       Credentials{Token: "abc"},
			wantPresent: false,
			wantBearer:  "Bearer abc",
		},
		{
			name:        "blank token",
			creds:       Credentials{Token: "  ", OrgID: "7"},
			wantPresent: false,
			wantBearer:  "Bearer ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.creds.Present(); got != tt.wantPresent {
				t.Errorf("Present() = %v, want %v", got, tt.wantPresent)
			}
			if got := tt.creds.BearerToken(); got != tt.wantBearer {
				t.Errorf("BearerToken() = %q, want %q", got, tt.wantBearer)
			}
		})
	}
}
