// Package utils validates inbound API requests before they reach the
// service registry.
//
// Validation:
//   - Tool IDs (service.tool format) and categories
//   - Discovery query length
//   - Serialized params size and nesting depth
//
// Example Usage:
//
//	if err := utils.ValidateToolID(req.ToolID); err != nil {
//	    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
//	}
package utils
