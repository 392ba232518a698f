package diagram

import "testing"

func TestIsFence(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		isFence bool
		tag     string
	}{
		{"backticks", "```", true, ""},
		{"tildes", "~~~", true, ""},
		{"tag", "```python", true, "python"},
		{"tag with spaces", "```  text  ", true, "text"},
		{"tag is lower-cased", "~~~ ASCII", true, "ascii"},
		{"first word only", "```text title=\"x\"", true, "text"},
		{"indented", "   ```", true, ""},
		{"plain text", "some text", false, ""},
		{"two backticks", "``", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isFence, tag := IsFence(tt.line)
			if isFence != tt.isFence || tag != tt.tag {
				t.Errorf("IsFence(%q) = (%v, %q), want (%v, %q)", tt.line, isFence, tag, tt.isFence, tt.tag)
			}
		})
	}
}

func TestIsDiagramBlock(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  bool
	}{
		{
			name:  "unicode box",
			lines: []string{"┌──────┐", "│ text │", "├──────┤", "│ more │", "└──────┘"},
			want:  true,
		},
		{
			name:  "ascii box",
			lines: []string{"+------+", "| text |", "+------+", "| more |", "+------+"},
			want:  true,
		},
		{
			name:  "double rule",
			lines: []string{"│ a", "│ b", "│ ═══"},
			want:  true,
		},
		{
			name:  "borders without a rule",
			lines: []string{"│ text │", "│ more │", "│ even │"},
			want:  false,
		},
		{
			name:  "too few border lines",
			lines: []string{"┌──────┐", "some text", "└──────┘"},
			want:  false,
		},
		{
			name:  "plain text",
			lines: []string{"This is just text.", "No box-drawing chars here.", "Just plain content."},
			want:  false,
		},
		{
			name:  "indented borders count",
			lines: []string{"  ┌──┐", "  │ x", "  └──┘"},
			want:  true,
		},
		{
			name:  "rule outside border lines counts",
			lines: []string{"| a |", "| b |", "| c |", "a - b"},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDiagramBlock(tt.lines); got != tt.want {
				t.Errorf("IsDiagramBlock() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShouldProcess(t *testing.T) {
	box := []string{"┌──┐", "│ x", "└──┘"}

	tests := []struct {
		name  string
		fixer *Fixer
		tag   string
		want  bool
	}{
		{"untagged", New(), "", true},
		{"text tag", New(), "text", true},
		{"txt tag", New(), "txt", true},
		{"code tag", New(), "python", false},
		{"unknown tag", New(), "mermaid", false},
		{"extra diagram tag", New(WithDiagramTags("Mermaid")), "mermaid", true},
		{"code tag wins over diagram tag", New(WithDiagramTags("go")), "go", false},
		{"extra code tag", New(WithCodeTags("text")), "text", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fixer.ShouldProcess(tt.tag, box); got != tt.want {
				t.Errorf("ShouldProcess(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}
