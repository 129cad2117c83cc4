package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tnqbao/gau-drive-service/http/controller/dto"
	"github.com/tnqbao/gau-drive-service/utils"
)

func (ctrl *Controller) GetDocumentByID(c *gin.Context) {
	ownerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "unauthorized")
		return
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "invalid document id")
		return
	}

	doc, err := ctrl.Service.GetDocumentByID(c.Request.Context(), ownerID, documentID)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON200(c, doc)
}

// ListDocuments lists documents in one folder, or root documents when the
// folder_id query param is absent.
func (ctrl *Controller) ListDocuments(c *gin.Context) {
	ownerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "unauthorized")
		return
	}

	folderID, err := parseOptionalUUID(c.Query("folder_id"))
	if err != nil {
		utils.JSON400(c, "invalid folder_id")
		return
	}

	docs, err := ctrl.Service.ListDocuments(c.Request.Context(), ownerID, folderID)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON200(c, docs)
}

func (ctrl *Controller) ListAllDocuments(c *gin.Context) {
	ownerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "unauthorized")
		return
	}

	docs, err := ctrl.Service.ListAllUserDocuments(c.Request.Context(), ownerID)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON200(c, docs)
}

func (ctrl *Controller) GetRecentDocuments(c *gin.Context) {
	ownerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "unauthorized")
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	docs, err := ctrl.Service.GetRecentDocuments(c.Request.Context(), ownerID, limit)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON200(c, docs)
}

func (ctrl *Controller) GetFavoriteDocuments(c *gin.Context) {
	ownerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "unauthorized")
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	docs, err := ctrl.Service.GetFavoriteDocuments(c.Request.Context(), ownerID, limit)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON200(c, docs)
}

func (ctrl *Controller) GetDocumentStats(c *gin.Context) {
	ownerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "unauthorized")
		return
	}

	stats, err := ctrl.Service.GetDocumentStats(c.Request.Context(), ownerID)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON200(c, stats)
}

func (ctrl *Controller) ToggleDocumentFavorite(c *gin.Context) {
	ownerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "unauthorized")
		return
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "invalid document id")
		return
	}

	var req dto.ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "invalid request body")
		return
	}

	doc, err := ctrl.Service.ToggleDocumentFavorite(c.Request.Context(), ownerID, documentID, *req.IsFavorite)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON200(c, doc)
}

// MoveDocument relocates a document to another folder, or to the root when
// destination_folder_id is null.
func (ctrl *Controller) MoveDocument(c *gin.Context) {
	ownerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "unauthorized")
		return
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "invalid document id")
		return
	}

	var req dto.MoveDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "invalid request body")
		return
	}

	doc, err := ctrl.Service.MoveDocument(c.Request.Context(), ownerID, documentID, req.DestinationFolderID)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON200(c, doc)
}

func (ctrl *Controller) RenameDocument(c *gin.Context) {
	ownerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "unauthorized")
		return
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "invalid document id")
		return
	}

	var req dto.RenameDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "invalid request body")
		return
	}

	doc, err := ctrl.Service.UpdateDocumentName(c.Request.Context(), ownerID, documentID, req.Name)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON200(c, doc)
}
