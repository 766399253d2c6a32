package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

// JSONSuccessWithWarnings is JSONSuccess plus the non-blocking problems met while serving the request.
func JSONSuccessWithWarnings(c *gin.Context, code int, data interface{}, warnings []string) {
	if len(warnings) == 0 {
		JSONSuccess(c, code, data)
		return
	}
	c.JSON(code, gin.H{"success": true, "data": data, "warnings": warnings})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}
