package model

import "testing"

func TestMapRole_KnownRoles(t *testing.T) {
	tests := []struct {
		input string
		want  Role
	}{
		{"button", RoleButton},
		{"submit", RoleButton},
		{"a", RoleLink},
		{"link", RoleLink},
		{"input", RoleInput},
		{"textbox", RoleInput},
		{"searchbox", RoleInput},
		{"textarea", RoleTextArea},
		{"select", RoleSelect},
		{"combobox", RoleSelect},
		{"checkbox", RoleCheckbox},
		{"radio", RoleRadio},
		{"menuitem", RoleMenuItem},
		{"tab", RoleTab},
		{"option", RoleOption},
		{"text", RoleText},
		{"heading", RoleHeading},
		{"img", RoleImage},
		{"group", RoleGroup},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := MapRole(tt.input)
			if got != tt.want {
				t.Errorf("MapRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMapRole_UnknownFallback(t *testing.T) {
	unknowns := []string{"slider", "progressbar", "marquee", ""}
	for _, raw := range unknowns {
		got := MapRole(raw)
		if got != RoleOther {
			t.Errorf("MapRole(%q) = %q, want %q", raw, got, RoleOther)
		}
	}
}

func TestIsInteractive(t *testing.T) {
	interactive := []Role{RoleButton, RoleLink, RoleInput, RoleTextArea, RoleSelect, RoleCheckbox, RoleRadio, RoleMenuItem, RoleTab, RoleOption}
	for _, r := range interactive {
		if !r.IsInteractive() {
			t.Errorf("Role(%q).IsInteractive() = false, want true", r)
		}
	}
	static := []Role{RoleText, RoleHeading, RoleImage, RoleGroup, RoleOther}
	for _, r := range static {
		if r.IsInteractive() {
			t.Errorf("Role(%q).IsInteractive() = true, want false", r)
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"form", CategoryForm, false},
		{"Menu", CategoryMenu, false},
		{"  link ", CategoryLink, false},
		{"BUTTON", CategoryButton, false},
		{"field", CategoryField, false},
		{"text", CategoryText, false},
		{"home", CategoryHome, false},
		{"banner", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseCategory(%q) expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCategory(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestMatchesCategory(t *testing.T) {
	tests := []struct {
		role Role
		cat  Category
		want bool
	}{
		{RoleInput, CategoryForm, true},
		{RoleCheckbox, CategoryForm, true},
		{RoleButton, CategoryForm, false},
		{RoleButton, CategoryButton, true},
		{RoleLink, CategoryLink, true},
		{RoleLink, CategoryButton, false},
		{RoleSelect, CategoryField, true},
		{RoleCheckbox, CategoryField, false},
		{RoleMenuItem, CategoryMenu, true},
		{RoleHeading, CategoryText, true},
		{RoleLink, CategoryHome, true},
	}
	for _, tt := range tests {
		if got := tt.role.MatchesCategory(tt.cat); got != tt.want {
			t.Errorf("Role(%q).MatchesCategory(%q) = %v, want %v", tt.role, tt.cat, got, tt.want)
		}
	}
}
