package namespace

import "testing"

func TestPath_Segments(t *testing.T) {
	tests := []struct {
		path     Path
		expected []string
	}{
		{Path("Model.Project.State.update"), []string{"Model", "Project", "State", "update"}},
		{Path("Config.update"), []string{"Config", "update"}},
		{Path("App"), []string{"App"}},
		{Path(""), nil},
	}

	for _, tt := range tests {
		t.Run(tt.path.String(), func(t *testing.T) {
			got := tt.path.Segments()
			if len(got) != len(tt.expected) {
				t.Fatalf("Segments() = %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Segments()[%d] = %q, want %q", i, got[i], tt.expected[i])
				}
			}
			if tt.path.Depth() != len(tt.expected) {
				t.Errorf("Depth() = %d, want %d", tt.path.Depth(), len(tt.expected))
			}
		})
	}
}

func TestPath_Navigation(t *testing.T) {
	p := Path("Cookie.State.update")

	if got := p.Parent(); got != "Cookie.State" {
		t.Errorf("Parent() = %q, want Cookie.State", got)
	}
	if got := p.Base(); got != "update" {
		t.Errorf("Base() = %q, want update", got)
	}
	if got := p.Domain(); got != "Cookie" {
		t.Errorf("Domain() = %q, want Cookie", got)
	}
	if !p.IsState() {
		t.Error("IsState() = false, want true")
	}
	if Path("Cookie.update").IsState() {
		t.Error("Cookie.update should not be a State path")
	}
	if got := Path("Cookie").Child("listAll"); got != "Cookie.listAll" {
		t.Errorf("Child() = %q, want Cookie.listAll", got)
	}
	if got := Path("").Child("App"); got != "App" {
		t.Errorf("Child() on empty = %q, want App", got)
	}
	if got := Path("App").Parent(); got != "" {
		t.Errorf("Parent() of top level = %q, want empty", got)
	}
}

func TestPath_HasPrefix(t *testing.T) {
	tests := []struct {
		path, prefix Path
		want         bool
	}{
		{"Model.Project.read", "Model", true},
		{"Model.Project.read", "Model.Project", true},
		{"Model.Project.read", "Model.Project.read", true},
		{"Model.ProjectX.read", "Model.Project", false},
		{"Config.read", "Model", false},
		{"Config.read", "", true},
	}
	for _, tt := range tests {
		if got := tt.path.HasPrefix(tt.prefix); got != tt.want {
			t.Errorf("%q.HasPrefix(%q) = %v, want %v", tt.path, tt.prefix, got, tt.want)
		}
	}
}

func TestPath_IsValid(t *testing.T) {
	tests := []struct {
		path Path
		want bool
	}{
		{"Config.update", true},
		{"App", true},
		{"", false},
		{".Config", false},
		{"Config.", false},
		{"Config..update", false},
		{"Config.*", false},
		{"**", false},
	}
	for _, tt := range tests {
		if got := tt.path.IsValid(); got != tt.want {
			t.Errorf("%q.IsValid() = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestPath_Matches(t *testing.T) {
	tests := []struct {
		path, pattern Path
		want          bool
	}{
		{"Cookie.update", "Cookie.*", true},
		{"Cookie.State.update", "Cookie.*", false},
		{"Cookie.State.update", "Cookie.**", true},
		{"Cookie.State.update", "**.State.*", true},
		{"Model.Project.State.update", "**.State.*", true},
		{"Model.Project.read", "Model.*.read", true},
		{"Model.Project.read", "Model.*.update", false},
		{"Config.update", "**", true},
		{"Config.update", "Config.update", true},
		{"Config.update", "Config.update.**", true},
	}
	for _, tt := range tests {
		if got := tt.path.Matches(tt.pattern); got != tt.want {
			t.Errorf("%q.Matches(%q) = %v, want %v", tt.path, tt.pattern, got, tt.want)
		}
	}
}
