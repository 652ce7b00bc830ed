package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestProcfsProviderWithMockFile(t *testing.T) {
	tmpDir := t.TempDir()

	// Format: uptime_seconds idle_seconds
	uptimeContent := "12345.67 8901.23\n"
	uptimePath := filepath.Join(tmpDir, "uptime")
	if err := os.WriteFile(uptimePath, []byte(uptimeContent), 0o644); err != nil {
		t.Fatalf("failed to write mock uptime: %v", err)
	}

	provider := &procfsProvider{
		procUptimePath: uptimePath,
	}

	ms, err := provider.Milliseconds()
	if err != nil {
		t.Fatalf("Milliseconds() error = %v", err)
	}

	if ms != 12345670 {
		t.Errorf("Milliseconds() = %d, want 12345670", ms)
	}
}

func TestProcfsProviderBootTime(t *testing.T) {
	tmpDir := t.TempDir()

	uptimePath := filepath.Join(tmpDir, "uptime")
	if err := os.WriteFile(uptimePath, []byte("3600.00 7200.00\n"), 0o644); err != nil {
		t.Fatalf("failed to write mock uptime: %v", err)
	}

	provider := &procfsProvider{
		procUptimePath: uptimePath,
	}

	boot, err := provider.BootTime()
	if err != nil {
		t.Fatalf("BootTime() error = %v", err)
	}

	elapsed := time.Since(boot)
	if elapsed < time.Hour || elapsed > time.Hour+5*time.Second {
		t.Errorf("BootTime() places boot %v ago, want ~1h", elapsed)
	}
}

func TestProcfsProviderMissingFile(t *testing.T) {
	provider := &procfsProvider{
		procUptimePath: "/nonexistent/uptime",
	}

	_, err := provider.Milliseconds()
	if err == nil {
		t.Fatal("Milliseconds() should return error for missing file")
	}

	var se *SourceError
	if !errors.As(err, &se) {
		t.Fatalf("error should be a SourceError, got %T", err)
	}
	if se.Kind != KindAccess {
		t.Errorf("Kind = %v, want access", se.Kind)
	}
	if se.Source != "procfs" {
		t.Errorf("Source = %q, want procfs", se.Source)
	}
}

func TestParseProcUptime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    uint64
		wantErr bool
	}{
		{
			name:    "two fields",
			content: "12345.67 8901.23\n",
			want:    12345670,
		},
		{
			name:    "single field",
			content: "42.5\n",
			want:    42500,
		},
		{
			name:    "extra whitespace",
			content: "  12345.67   8901.23  \n",
			want:    12345670,
		},
		{
			name:    "fraction truncated",
			content: "0.0015\n",
			want:    1,
		},
		{
			name:    "zero uptime",
			content: "0.00 0.00\n",
			want:    0,
		},
		{
			name:    "not a number",
			content: "not-a-number\n",
			wantErr: true,
		},
		{
			name:    "empty file",
			content: "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			content: "   \n",
			wantErr: true,
		},
		{
			name:    "negative uptime",
			content: "-5.0 0.0\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProcUptime([]byte(tt.content), "procfs")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseProcUptime(%q) should return error", tt.content)
				}
				var se *SourceError
				if !errors.As(err, &se) {
					t.Fatalf("error should be a SourceError, got %T", err)
				}
				if se.Kind != KindFormat {
					t.Errorf("Kind = %v, want format", se.Kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseProcUptime(%q) error = %v", tt.content, err)
			}
			if got != tt.want {
				t.Errorf("ParseProcUptime(%q) = %d, want %d", tt.content, got, tt.want)
			}
		})
	}
}
