package errors

import (
	"strings"
	"testing"
)

func TestValidateDashboardName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "service health", false},
		{"valid with dashes", "prod-us-east", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 129), true},
		{"control character", "dash\x01board", true},
		{"path traversal", "../etc/passwd", true},
		{"double slash", "a//b", true},
		{"backslash", "a\\b", true},
		{"null byte", "a\x00b", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDashboardName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDashboardName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidInput {
				t.Errorf("code = %q, want %q", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateRegion(t *testing.T) {
	tests := []struct {
		region  string
		wantErr bool
	}{
		{"", false},
		{"us-east-1", false},
		{"eu-west-2", false},
		{"ap-southeast-2", false},
		{"us-gov-west-1", false},
		{"US-EAST-1", true},
		{"useast1", true},
		{"us-east-", true},
		{"-east-1", true},
		{"us east 1", true},
	}
	for _, tt := range tests {
		err := ValidateRegion(tt.region)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateRegion(%q) error = %v, wantErr %v", tt.region, err, tt.wantErr)
		}
	}
}

func TestValidateDefinitionPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid relative", "dashboards/prod.toml", false},
		{"valid simple", "dash.toml", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"traversal", "a/../b.toml", true},
		{"backslash", "a\\b.toml", true},
		{"null byte", "a\x00b", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDefinitionPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDefinitionPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
