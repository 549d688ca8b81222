package handler

import "github.com/gin-gonic/gin"

// respondData 返回成功响应
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"status": "success",
		"data":   data,
	})
}

// respondMessage 返回不携带数据的成功响应
func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"status":  "success",
		"message": message,
	})
}

// respondFail 返回客户端错误响应
func respondFail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"status":  "fail",
		"message": message,
	})
}
