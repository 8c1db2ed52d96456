package server

import (
	"freightbid/internal/lifecycle"
	handler "freightbid/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *lifecycle.Service) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(ActorMiddleware)         // request-scoped actor identity

	auctionHandler := handler.NewAuctionHandler(auctionService)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("/open", auctionHandler.OpenAuctionsHandler)
		auctions.GET("/review", auctionHandler.AuctionsInReviewHandler)
		auctions.GET("/approval", auctionHandler.AuctionsPendingApprovalHandler)
		auctions.GET("/history", auctionHandler.HistoryHandler)

		auctions.GET("/:auction_id/offers", auctionHandler.OffersByAuctionHandler)
		auctions.GET("/:auction_id/rankings", auctionHandler.RankingsHandler)
		auctions.POST("/:auction_id/offers", auctionHandler.PlaceOfferHandler)
		auctions.POST("/:auction_id/close", auctionHandler.CloseNowHandler)
		auctions.POST("/:auction_id/winner", auctionHandler.SelectWinnerHandler)
		auctions.POST("/:auction_id/deserted", auctionHandler.FinalizeDesertedHandler)
		auctions.POST("/:auction_id/approve", auctionHandler.ApproveHandler)
		auctions.POST("/:auction_id/reject", auctionHandler.RejectHandler)
		auctions.POST("/:auction_id/photo", auctionHandler.UploadPhotoHandler)
	}

	return router
}
