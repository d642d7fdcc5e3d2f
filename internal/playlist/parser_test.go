package playlist

import (
	"testing"
)

func TestParse_BasicPlaylist(t *testing.T) {
	lines := []string{
		"#EXTM3U",
		"#EXTINF:-1,Channel A",
		"http://good.example/stream",
		"#EXTINF:-1,Channel B",
		"https://bad.example/stream",
	}

	entries := Parse(lines)
	want := []Entry{
		{Name: "Channel A", URL: "http://good.example/stream"},
		{Name: "Channel B", URL: "https://bad.example/stream"},
	}

	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestParse_PreservesOrder(t *testing.T) {
	lines := []string{
		"#EXTINF:-1,Third",
		"http://c.example/3",
		"#EXTINF:-1,First",
		"http://a.example/1",
		"#EXTINF:-1,Second",
		"http://b.example/2",
	}

	entries := Parse(lines)
	wantURLs := []string{"http://c.example/3", "http://a.example/1", "http://b.example/2"}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	for i, u := range wantURLs {
		if entries[i].URL != u {
			t.Errorf("entry %d URL = %q, want %q", i, entries[i].URL, u)
		}
	}
}

func TestParse_PendingNameNotReset(t *testing.T) {
	// Two URL lines under one directive both inherit its name.
	// Legacy behavior, kept on purpose.
	lines := []string{
		"#EXTINF:-1,Shared Name",
		"http://one.example/stream",
		"http://two.example/stream",
	}

	entries := Parse(lines)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Name != "Shared Name" || entries[1].Name != "Shared Name" {
		t.Errorf("names = %q, %q, want both %q", entries[0].Name, entries[1].Name, "Shared Name")
	}
}

func TestParse_URLWithoutDirective(t *testing.T) {
	entries := Parse([]string{"http://orphan.example/stream"})
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Name != "" {
		t.Errorf("name = %q, want empty", entries[0].Name)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	if got := Parse(nil); len(got) != 0 {
		t.Errorf("Parse(nil) = %v, want no entries", got)
	}
	if got := Parse([]string{}); len(got) != 0 {
		t.Errorf("Parse(empty) = %v, want no entries", got)
	}
}

func TestParse_TrimsWhitespaceAndCR(t *testing.T) {
	lines := []string{
		"#EXTINF:-1,Channel A\r",
		"  http://good.example/stream \r",
	}

	entries := Parse(lines)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Name != "Channel A" {
		t.Errorf("name = %q, want %q", entries[0].Name, "Channel A")
	}
	if entries[0].URL != "http://good.example/stream" {
		t.Errorf("URL = %q, want trimmed URL", entries[0].URL)
	}
}

func TestParse_SchemeCaseInsensitive(t *testing.T) {
	lines := []string{
		"HTTP://upper.example/stream",
		"Https://mixed.example/stream",
		"RTMP://live.example/app",
	}

	entries := Parse(lines)
	if len(entries) != 3 {
		t.Errorf("got %d entries, want 3 (schemes should match case-insensitively)", len(entries))
	}
}

func TestParse_NameAfterLastComma(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"plain", "#EXTINF:-1,News 24", "News 24"},
		{"with attributes", `#EXTINF:-1 tvg-id="x" group-title="News",News 24`, "News 24"},
		{"comma in attributes", "#EXTINF:-1,Sports,Extra", "Extra"},
		{"trailing spaces", "#EXTINF:-1,  Padded  ", "Padded"},
		{"empty after comma", "#EXTINF:-1,", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := Parse([]string{tt.line, "http://x.example/stream"})
			if len(entries) != 1 {
				t.Fatalf("got %d entries, want 1", len(entries))
			}
			if entries[0].Name != tt.want {
				t.Errorf("name = %q, want %q", entries[0].Name, tt.want)
			}
		})
	}
}

func TestParse_IgnoresOtherLines(t *testing.T) {
	lines := []string{
		"#EXTM3U",
		"",
		"# a comment",
		"#EXTINF without comma",
		"not a url at all",
		"ftp://wrong.scheme/file",
		"#EXTINF:-1,Real",
		"http://real.example/stream",
	}

	entries := Parse(lines)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Name != "Real" {
		t.Errorf("name = %q, want %q", entries[0].Name, "Real")
	}
}

func TestIsStreamURL(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"http://a.example/s", true},
		{"https://a.example/s", true},
		{"rtmp://a.example/live", true},
		{"HTTP://a.example/s", true},
		{"http://", false},
		{"ftp://a.example/s", false},
		{"#EXTINF:-1,Name", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsStreamURL(tt.line); got != tt.want {
			t.Errorf("IsStreamURL(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
