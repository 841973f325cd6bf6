package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantOK  bool
		wantMsg string
	}{
		{name: "合法姓名", input: "Alice", wantOK: true},
		{name: "带空格", input: "Mary Jane", wantOK: true},
		{name: "首尾空格被忽略", input: "  Bob  ", wantOK: true},
		{name: "空姓名", input: "", wantMsg: "Name is required"},
		{name: "纯空格", input: "   ", wantMsg: "Name is required"},
		{name: "过短", input: "A", wantMsg: "Name must be at least 2 characters long"},
		{name: "过长", input: strings.Repeat("a", 21), wantMsg: "Name must be 20 characters or less"},
		{name: "含数字", input: "Alice2", wantMsg: "Name can only contain letters and spaces"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateName(tt.input)
			if tt.wantOK {
				assert.Empty(t, errs)
			} else {
				assert.Contains(t, errs, tt.wantMsg)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantOK  bool
		wantMsg string
	}{
		{name: "合法口令", input: "Str0ng!pass", wantOK: true},
		{name: "空口令", input: "", wantMsg: "Password is required"},
		{name: "过短", input: "S1!a", wantMsg: "Password must be at least 8 characters long"},
		{name: "缺小写", input: "STRONG1!PASS", wantMsg: "Password must contain at least one lowercase letter"},
		{name: "缺大写", input: "str0ng!pass", wantMsg: "Password must contain at least one uppercase letter"},
		{name: "缺数字", input: "Strong!pass", wantMsg: "Password must contain at least one number"},
		{name: "缺特殊字符", input: "Str0ngpass", wantMsg: "Password must contain at least one special character"},
		{name: "过长", input: "S1!" + strings.Repeat("a", 128), wantMsg: "Password must be less than 128 characters"},
		{name: "常见弱口令", input: "Password123", wantMsg: "This password is too common. Please choose a stronger password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePassword(tt.input)
			if tt.wantOK {
				assert.Empty(t, errs)
			} else {
				assert.Contains(t, errs, tt.wantMsg)
			}
		})
	}
}

func TestValidatePasswordChange(t *testing.T) {
	// 改密只卡最短长度，不套注册时的完整策略
	assert.True(t, ValidatePasswordChange("simple"))
	assert.True(t, ValidatePasswordChange("abc123"))
	assert.False(t, ValidatePasswordChange("12345"))
	assert.False(t, ValidatePasswordChange(""))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("student@example.com"))
	assert.True(t, ValidateEmail("a.b+c@sub.example.co"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("user@-bad-.com"))
	assert.False(t, ValidateEmail("@example.com"))
	assert.False(t, ValidateEmail(strings.Repeat("a", 250)+"@x.co"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM  "))
}
