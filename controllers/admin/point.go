package admin

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"anke-go-api/inout"
	"anke-go-api/pkg/response"
	"anke-go-api/services/admin_service"
)

// GrantPoints appends one ledger row for a user, optionally backdated.
func GrantPoints(c *gin.Context) {
	var params inout.PointGrantReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	var createdAt time.Time
	if params.CreatedAt != "" {
		var err error
		createdAt, err = time.Parse(time.RFC3339, params.CreatedAt)
		if err != nil {
			response.Error(c, response.INVALID_PARAMS, "createdAt must be RFC3339")
			return
		}
	}

	rec, err := pointAdminService.Grant(c.Request.Context(), params.UserID, params.Amount, params.Type, createdAt)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, rec)
}

// DeletePoint removes one ledger row.
func DeletePoint(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Error(c, response.INVALID_PARAMS, "invalid point id")
		return
	}

	affected, err := pointAdminService.BulkDelete(c.Request.Context(), []int{id})
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	if affected == 0 {
		response.Error(c, response.NOT_FOUND, "point record not found")
		return
	}
	response.SuccessMsg(c, "point record deleted", nil)
}

// BulkDeletePoints removes ledger rows by id.
func BulkDeletePoints(c *gin.Context) {
	var params inout.PointBulkDeleteReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	affected, err := pointAdminService.BulkDelete(c.Request.Context(), params.IDs)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"deleted": affected})
}

// FindOrphanedPoints flags ledger rows with a missing user or a creation
// time before the user's own.
func FindOrphanedPoints(c *gin.Context) {
	suspects, err := cleanupScanner.AuditPoints(c.Request.Context())
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"items": suspects, "total": len(suspects)})
}

// RenumberPointIDs compacts the ledger's ids to 1..n in creation order.
func RenumberPointIDs(c *gin.Context) {
	count, err := pointAdminService.RenumberIDs(c.Request.Context())
	if err != nil {
		if errors.Is(err, admin_service.ErrNoPointRecords) {
			response.Error(c, response.NOT_FOUND, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, gin.H{"renumbered": count})
}
