package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-drive-service/http/controller"
	middlewares "github.com/tnqbao/gau-drive-service/http/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()

	mdw, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic("Failed to initialize middlewares: " + err.Error())
	}

	r.Use(mdw.CORSMiddleware)

	apiRoutes := r.Group("/api/v1/drive")
	{
		apiRoutes.GET("/status", ctrl.CheckStatus)

		folderRoutes := apiRoutes.Group("/folders")
		folderRoutes.Use(mdw.AuthMiddleware)
		{
			folderRoutes.POST("", ctrl.CreateFolder)
			folderRoutes.GET("", ctrl.ListFolderContent)
			folderRoutes.GET("/stats", ctrl.GetTreeStats)
			folderRoutes.POST("/batch", ctrl.GetFoldersByIDs)
			folderRoutes.GET("/:id", ctrl.GetFolderByID)
			folderRoutes.GET("/:id/stats", ctrl.GetFolderStats)
			folderRoutes.DELETE("/:id", ctrl.DeleteFolder)
			folderRoutes.PUT("/:id/move", ctrl.MoveFolder)
			folderRoutes.PUT("/:id/rename", ctrl.RenameFolder)
		}

		documentRoutes := apiRoutes.Group("/documents")
		documentRoutes.Use(mdw.AuthMiddleware)
		{
			documentRoutes.POST("/upload-url", ctrl.GenerateUploadURL)
			documentRoutes.POST("/confirm", ctrl.ConfirmUpload)
			documentRoutes.GET("", ctrl.ListDocuments)
			documentRoutes.GET("/all", ctrl.ListAllDocuments)
			documentRoutes.GET("/recent", ctrl.GetRecentDocuments)
			documentRoutes.GET("/favorites", ctrl.GetFavoriteDocuments)
			documentRoutes.GET("/stats", ctrl.GetDocumentStats)
			documentRoutes.GET("/:id", ctrl.GetDocumentByID)
			documentRoutes.GET("/:id/download-url", ctrl.GenerateDownloadURL)
			documentRoutes.DELETE("/:id", ctrl.DeleteDocument)
			documentRoutes.PUT("/:id/move", ctrl.MoveDocument)
			documentRoutes.PUT("/:id/rename", ctrl.RenameDocument)
			documentRoutes.PUT("/:id/favorite", ctrl.ToggleDocumentFavorite)
		}
	}

	return r
}
