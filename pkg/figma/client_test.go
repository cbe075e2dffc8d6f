package figma

import (
	"testing"
)

func TestExtractFileKey(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name:    "valid /file/ URL",
			url:     "https://www.figma.com/file/ABC123XYZ/Design-Name",
			want:    "ABC123XYZ",
			wantErr: false,
		},
		{
			name:    "valid /design/ URL",
			url:     "https://www.figma.com/design/ABC123XYZ/Design-Name",
			want:    "ABC123XYZ",
			wantErr: false,
		},
		{
			name:    "URL with node-id parameter",
			url:     "https://www.figma.com/design/4gkABR5gEZnIvlCaXmA4KI/Makis-s-file?node-id=11933-305884",
			want:    "4gkABR5gEZnIvlCaXmA4KI",
			wantErr: false,
		},
		{
			name:    "URL without www subdomain",
			url:     "https://figma.com/file/ABC123XYZ/Design-Name",
			want:    "ABC123XYZ",
			wantErr: false,
		},
		{
			name:    "URL with http protocol",
			url:     "http://www.figma.com/file/ABC123XYZ/Design-Name",
			want:    "ABC123XYZ",
			wantErr: false,
		},
		{
			name:    "URL with trailing slash",
			url:     "https://www.figma.com/file/ABC123XYZ/",
			want:    "ABC123XYZ",
			wantErr: false,
		},
		{
			name:    "invalid URL - missing file key",
			url:     "https://www.figma.com/file/",
			want:    "",
			wantErr: true,
		},
		{
			name:    "invalid URL - wrong domain",
			url:     "https://www.example.com/file/ABC123XYZ",
			want:    "",
			wantErr: true,
		},
		{
			name:    "invalid URL - wrong path",
			url:     "https://www.figma.com/dashboard/ABC123XYZ",
			want:    "",
			wantErr: true,
		},
		{
			name:    "empty URL",
			url:     "",
			want:    "",
			wantErr: true,
		},
		{
			name:    "file key with mixed alphanumeric",
			url:     "https://www.figma.com/file/aB1cD2eF3gH4iJ5kL6/MyDesign",
			want:    "aB1cD2eF3gH4iJ5kL6",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractFileKey(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ExtractFileKey() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ExtractFileKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaintHidden(t *testing.T) {
	truth := true
	falsity := false

	tests := []struct {
		name  string
		paint Paint
		want  bool
	}{
		{name: "flag absent", paint: Paint{Type: PaintTypeSolid}, want: false},
		{name: "explicitly true", paint: Paint{Type: PaintTypeSolid, Visible: &truth}, want: false},
		{name: "explicitly false", paint: Paint{Type: PaintTypeSolid, Visible: &falsity}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.paint.Hidden(); got != tt.want {
				t.Errorf("Hidden() = %v, want %v", got, tt.want)
			}
		})
	}
}
