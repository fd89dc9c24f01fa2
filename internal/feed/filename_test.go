package feed

import "testing"

func TestNormalizeTemplate(t *testing.T) {
	tests := []struct {
		name        string
		template    string
		want        string
		wantChanged bool
	}{
		{
			name:        "placeholder present",
			template:    "show_%d.rss",
			want:        "show_%d.rss",
			wantChanged: false,
		},
		{
			name:        "missing placeholder inserted before extension",
			template:    "show.rss",
			want:        "show%d.rss",
			wantChanged: true,
		},
		{
			name:        "missing placeholder and no extension",
			template:    "show",
			want:        "show%d",
			wantChanged: true,
		},
		{
			name:        "default template untouched",
			template:    "ardaudiothek_%d.rss",
			want:        "ardaudiothek_%d.rss",
			wantChanged: false,
		},
		{
			name:        "placeholder inserted before last extension",
			template:    "show.feed.rss",
			want:        "show.feed%d.rss",
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := NormalizeTemplate(tt.template)
			if got != tt.want {
				t.Errorf("NormalizeTemplate(%q) = %q, want %q", tt.template, got, tt.want)
			}
			if changed != tt.wantChanged {
				t.Errorf("NormalizeTemplate(%q) changed = %v, want %v", tt.template, changed, tt.wantChanged)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	got := Filename("ardaudiothek_%d.rss", 5945518)
	want := "ardaudiothek_5945518.rss"
	if got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}
