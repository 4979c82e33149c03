package handlers

import (
	"net/http"

	"github.com/arnavshah/team-optimizer-go/pkg/models"
	"github.com/gin-gonic/gin"
)

// ValidateInput reports whether a payload would be accepted by the analysis
// endpoints, without running the engine.
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.AnalyzeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if err := input.Validate(); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"developer_count":   len(input.Developers),
			"task_count":        len(input.Tasks),
			"requirement_count": len(input.Requirements),
		},
	})
}
