package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	tests := []struct {
		name                          string
		version, date, commit         string
		wantVersion, wantDate, wantCm string
	}{
		{
			name:        "all values set",
			version:     "v1.2.0",
			date:        "2026-10-01",
			commit:      "a1b2c3d",
			wantVersion: "v1.2.0",
			wantDate:    "2026-10-01",
			wantCm:      "a1b2c3d",
		},
		{
			name:        "nothing injected",
			wantVersion: "N/A",
			wantDate:    "N/A",
			wantCm:      "N/A",
		},
		{
			name:        "only version injected",
			version:     "v0.1.0",
			wantVersion: "v0.1.0",
			wantDate:    "N/A",
			wantCm:      "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewAppBuildInfo(tt.version, tt.date, tt.commit)

			assert.Equal(t, tt.wantVersion, info.BuildVersion())
			assert.Equal(t, tt.wantDate, info.BuildDate())
			assert.Equal(t, tt.wantCm, info.BuildCommit())
		})
	}
}

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("v1.0.0", "", "deadbeef")

	assert.Equal(t, "Build version: v1.0.0\nBuild date: N/A\nBuild commit: deadbeef\n", info.String())
}
