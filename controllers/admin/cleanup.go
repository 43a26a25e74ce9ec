package admin

import (
	"github.com/gin-gonic/gin"

	"anke-go-api/pkg/response"
)

// CountOrphans scans every dependent relation against live posts and
// reports orphan counts and ids without deleting anything.
func CountOrphans(c *gin.Context) {
	report, err := cleanupScanner.Scan(c.Request.Context())
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{
		"counts": report.Counts(),
		"total":  report.Total(),
		"detail": report,
	})
}

// ExecuteCleanup scans and deletes the orphans in one transaction.
func ExecuteCleanup(c *gin.Context) {
	counts, err := cleanupScanner.Cleanup(c.Request.Context())
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"deleted": counts})
}

// LinkKeywords runs the keyword-to-post linking batch on demand.
func LinkKeywords(c *gin.Context) {
	result, err := keywordLinker.Run(c.Request.Context())
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, result)
}
