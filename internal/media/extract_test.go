package media

import "testing"

func TestValidVideoFormat(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"lecture.mp4", true},
		{"lecture.MP4", true},
		{"talk.recording.mp4", true},
		{"lecture.mov", false},
		{"lecture.avi", false},
		{"lecture.wav", false},
		{"lecture", false},
		{"", false},
		{"mp4", false},
		{".mp4", true},
	}

	for _, tt := range tests {
		if got := ValidVideoFormat(tt.filename); got != tt.want {
			t.Errorf("ValidVideoFormat(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}
