package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tnqbao/gau-drive-service/http/controller/dto"
	"github.com/tnqbao/gau-drive-service/utils"
)

// CreateFolder creates a folder under the given parent, or at the root when
// parent_id is omitted.
func (ctrl *Controller) CreateFolder(c *gin.Context) {
	ownerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "unauthorized")
		return
	}

	var req dto.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "invalid request body")
		return
	}

	folder, err := ctrl.Service.CreateFolder(c.Request.Context(), ownerID, req.Name, req.ParentID)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON201(c, folder)
}

// ListFolderContent lists the folders and documents directly under parent_id,
// or under the root when the query param is absent.
func (ctrl *Controller) ListFolderContent(c *gin.Context) {
	ownerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "unauthorized")
		return
	}

	parentID, err := parseOptionalUUID(c.Query("parent_id"))
	if err != nil {
		utils.JSON400(c, "invalid parent_id")
		return
	}

	content, err := ctrl.Service.ListFolderContent(c.Request.Context(), ownerID, parentID)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON200(c, content)
}

func (ctrl *Controller) GetFolderByID(c *gin.Context) {
	ownerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "unauthorized")
		return
	}

	folderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "invalid folder id")
		return
	}

	folder, err := ctrl.Service.GetFolderByID(c.Request.Context(), ownerID, folderID)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON200(c, folder)
}

// DeleteFolder removes an empty folder. A folder that still contains child
// folders or documents is rejected with a conflict.
func (ctrl *Controller) DeleteFolder(c *gin.Context) {
	ownerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "unauthorized")
		return
	}

	folderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "invalid folder id")
		return
	}

	if err := ctrl.Service.DeleteFolder(c.Request.Context(), ownerID, folderID); err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON200(c, gin.H{"message": "folder deleted"})
}

// MoveFolder reparents a folder. Moving a folder into itself or into its own
// subtree is rejected.
func (ctrl *Controller) MoveFolder(c *gin.Context) {
	ownerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "unauthorized")
		return
	}

	folderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "invalid folder id")
		return
	}

	var req dto.MoveFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "invalid request body")
		return
	}

	folder, err := ctrl.Service.MoveFolder(c.Request.Context(), ownerID, folderID, req.DestinationParentID)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON200(c, folder)
}

func (ctrl *Controller) RenameFolder(c *gin.Context) {
	ownerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "unauthorized")
		return
	}

	folderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "invalid folder id")
		return
	}

	var req dto.RenameFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "invalid request body")
		return
	}

	folder, err := ctrl.Service.UpdateFolderName(c.Request.Context(), ownerID, folderID, req.Name)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON200(c, folder)
}

func (ctrl *Controller) GetFolderStats(c *gin.Context) {
	ownerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "unauthorized")
		return
	}

	folderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "invalid folder id")
		return
	}

	stats, err := ctrl.Service.GetFolderStats(c.Request.Context(), ownerID, folderID)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON200(c, stats)
}

func (ctrl *Controller) GetTreeStats(c *gin.Context) {
	ownerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "unauthorized")
		return
	}

	stats, err := ctrl.Service.GetTreeStats(c.Request.Context(), ownerID)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON200(c, stats)
}

// GetFoldersByIDs resolves a batch of folder ids. Unknown or foreign ids are
// silently omitted from the result.
func (ctrl *Controller) GetFoldersByIDs(c *gin.Context) {
	ownerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "unauthorized")
		return
	}

	var req dto.BatchGetFoldersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "invalid request body")
		return
	}

	folders, err := ctrl.Service.GetFoldersByIDs(c.Request.Context(), ownerID, req.IDs)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON200(c, folders)
}
