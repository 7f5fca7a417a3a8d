package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bytedance/sonic"
)

// Request size limits (in bytes)
const (
	MaxParamsSize  = 1 * 1024 * 1024 // 1MB - serialized tool params
	MaxQuerySize   = 1024            // discovery query
	MaxParamsDepth = 8
)

// String length limits
const (
	MaxToolIDLength   = 128
	MaxCategoryLength = 64
)

var (
	// ToolIDPattern allows alphanumeric, hyphens, underscores, and dots (for service.tool format)
	ToolIDPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
	// CategoryPattern allows lowercase letters, numbers, and hyphens
	CategoryPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// ValidateString validates a string field with length and content checks
func ValidateString(value, fieldName string, minLen, maxLen int, required bool) error {
	if required && value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}

	if value == "" && !required {
		return nil
	}

	length := utf8.RuneCountInString(value)
	if length < minLen {
		return fmt.Errorf("%s must be at least %d characters", fieldName, minLen)
	}
	if length > maxLen {
		return fmt.Errorf("%s must not exceed %d characters", fieldName, maxLen)
	}

	if strings.Contains(value, "\x00") {
		return fmt.Errorf("%s contains invalid characters", fieldName)
	}

	return nil
}

// ValidateToolID validates a tool ID field (allows dots for service.tool format)
func ValidateToolID(id string) error {
	if err := ValidateString(id, "tool_id", 1, MaxToolIDLength, true); err != nil {
		return err
	}

	if !ToolIDPattern.MatchString(id) {
		return fmt.Errorf("tool_id contains invalid characters (only alphanumeric, dots, hyphens, and underscores allowed)")
	}

	return nil
}

// ValidateCategory validates a category field
func ValidateCategory(category string, required bool) error {
	if err := ValidateString(category, "category", 0, MaxCategoryLength, required); err != nil {
		return err
	}

	if category != "" && !CategoryPattern.MatchString(category) {
		return fmt.Errorf("category must contain only lowercase letters, numbers, and hyphens")
	}

	return nil
}

// ValidateQuery validates a free-text discovery query
func ValidateQuery(query string) error {
	return ValidateString(query, "q", 1, MaxQuerySize, true)
}

// ValidateParams checks the serialized size and nesting depth of tool params
func ValidateParams(params map[string]interface{}) error {
	data, err := sonic.Marshal(params)
	if err != nil {
		return fmt.Errorf("params are not serializable: %w", err)
	}
	if len(data) > MaxParamsSize {
		return fmt.Errorf("params size %d bytes exceeds maximum %d bytes", len(data), MaxParamsSize)
	}
	return ValidateDepth(params, MaxParamsDepth)
}

// ValidateDepth checks if JSON nesting depth is within limits
func ValidateDepth(data interface{}, maxDepth int) error {
	return checkDepth(data, 0, maxDepth)
}

func checkDepth(data interface{}, currentDepth int, maxDepth int) error {
	if currentDepth > maxDepth {
		return fmt.Errorf("nesting depth %d exceeds maximum %d", currentDepth, maxDepth)
	}

	switch v := data.(type) {
	case map[string]interface{}:
		for _, value := range v {
			if err := checkDepth(value, currentDepth+1, maxDepth); err != nil {
				return err
			}
		}
	case []interface{}:
		for _, value := range v {
			if err := checkDepth(value, currentDepth+1, maxDepth); err != nil {
				return err
			}
		}
	}

	return nil
}
