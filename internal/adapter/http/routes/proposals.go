package routes

import (
	"bidtrack/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProposals = "/proposals"
	PathFiles     = "/files"
)

func addProposalRoutes(rg *gin.RouterGroup, proposalHandler *handlers.ProposalHandler, fileHandler *handlers.FileHandler) {
	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", proposalHandler.CreateProposal)
		proposals.GET("", proposalHandler.GetProposals)
		proposals.PUT("", proposalHandler.UpdateProposal)
		proposals.DELETE("", proposalHandler.DeleteProposal)
	}

	files := rg.Group(PathFiles)
	{
		files.POST("", fileHandler.CreateFiles)
		files.GET("", fileHandler.GetFiles)
		files.DELETE("", fileHandler.DeleteFile)
	}
}
