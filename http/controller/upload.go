package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tnqbao/gau-drive-service/http/controller/dto"
	"github.com/tnqbao/gau-drive-service/utils"
)

// GenerateUploadURL issues a presigned PUT URL for a direct client upload.
// No document row exists until the client confirms the upload.
func (ctrl *Controller) GenerateUploadURL(c *gin.Context) {
	ownerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "unauthorized")
		return
	}

	var req dto.GenerateUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "invalid request body")
		return
	}

	ticket, err := ctrl.Service.GenerateUploadURL(c.Request.Context(), ownerID, req.Filename, req.MimeType, req.FolderID)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON200(c, ticket)
}

// ConfirmUpload registers the uploaded object as a document. Confirming the
// same storage key twice is a conflict.
func (ctrl *Controller) ConfirmUpload(c *gin.Context) {
	ownerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "unauthorized")
		return
	}

	var req dto.ConfirmUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "invalid request body")
		return
	}

	doc, err := ctrl.Service.ConfirmUpload(c.Request.Context(), ownerID, req.StorageKey, req.Name, req.MimeType, req.Size, req.FolderID)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON201(c, doc)
}

func (ctrl *Controller) GenerateDownloadURL(c *gin.Context) {
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

	signedURL, err := ctrl.Service.GenerateDownloadURL(c.Request.Context(), ownerID, documentID)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON200(c, gin.H{"download_url": signedURL})
}

func (ctrl *Controller) DeleteDocument(c *gin.Context) {
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

	if err := ctrl.Service.DeleteDocument(c.Request.Context(), ownerID, documentID); err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	utils.JSON200(c, gin.H{"message": "document deleted"})
}
