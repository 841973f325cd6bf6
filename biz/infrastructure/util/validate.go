package util

import (
	"regexp"
	"strings"
)

var (
	nameRegexp  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

	lowerRegexp   = regexp.MustCompile(`[a-z]`)
	upperRegexp   = regexp.MustCompile(`[A-Z]`)
	digitRegexp   = regexp.MustCompile(`\d`)
	specialRegexp = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?~` + "`" + `]`)

	commonPasswords = []string{
		"password", "password123", "123456789", "qwerty123",
		"admin123", "welcome123", "letmein123", "password1",
	}
)

// ValidateName 姓名校验：2-20位，仅字母与空格
func ValidateName(name string) []string {
	var errs []string
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return []string{"Name is required"}
	}
	if len(trimmed) > 20 {
		errs = append(errs, "Name must be 20 characters or less")
	}
	if len(trimmed) < 2 {
		errs = append(errs, "Name must be at least 2 characters long")
	}
	if !nameRegexp.MatchString(trimmed) {
		errs = append(errs, "Name can only contain letters and spaces")
	}
	return errs
}

// ValidatePassword 注册口令策略：长度、大小写、数字、特殊字符、常见弱口令
func ValidatePassword(password string) []string {
	var errs []string
	if password == "" {
		return []string{"Password is required"}
	}
	if len(password) < 8 {
		errs = append(errs, "Password must be at least 8 characters long")
	}
	if len(password) > 128 {
		errs = append(errs, "Password must be less than 128 characters")
	}
	if !lowerRegexp.MatchString(password) {
		errs = append(errs, "Password must contain at least one lowercase letter")
	}
	if !upperRegexp.MatchString(password) {
		errs = append(errs, "Password must contain at least one uppercase letter")
	}
	if !digitRegexp.MatchString(password) {
		errs = append(errs, "Password must contain at least one number")
	}
	if !specialRegexp.MatchString(password) {
		errs = append(errs, "Password must contain at least one special character")
	}
	lowered := strings.ToLower(password)
	for _, p := range commonPasswords {
		if lowered == p {
			errs = append(errs, "This password is too common. Please choose a stronger password")
			break
		}
	}
	return errs
}

// ValidatePasswordChange 修改口令只做最短长度校验
func ValidatePasswordChange(password string) bool {
	return len(password) >= 6
}

// ValidateEmail 邮箱格式校验
func ValidateEmail(email string) bool {
	if len(email) > 254 {
		return false
	}
	return emailRegexp.MatchString(email)
}

// NormalizeEmail 邮箱归一化：去空格并转小写
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// TrimName 去除姓名首尾空格
func TrimName(name string) string {
	return strings.TrimSpace(name)
}
