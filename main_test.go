package main

import (
	"strings"
	"testing"
)

func TestLoadConfigScale(t *testing.T) {
	tests := []struct {
		scale   int
		want    int
		wantErr string
	}{
		{0, 2, ""},
		{4, 4, ""},
		{8, 8, ""},
		{9, 0, "Scale"},
		{100, 0, "Scale"},
	}
	for _, tt := range tests {
		cfg, err := loadConfig("", tt.scale)
		if tt.wantErr != "" {
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("loadConfig(scale=%d) err = %v, want mention of %q", tt.scale, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("loadConfig(scale=%d) err = %v", tt.scale, err)
		}
		if cfg.Window.Scale != tt.want {
			t.Fatalf("loadConfig(scale=%d).Window.Scale = %d, want %d", tt.scale, cfg.Window.Scale, tt.want)
		}
	}
}
