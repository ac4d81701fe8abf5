package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tripora/travel-booking-backend/internal/middleware"
)

// RegisterRoutes attaches the full API route table to the given group.
// Identity resolution happens in the Authenticate middleware installed
// by the caller; routes that need an identity add RequireUser here.
func RegisterRoutes(api *gin.RouterGroup, auth *AuthHandler, catalog *CatalogHandler, booking *BookingHandler) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", auth.Signup)
		authGroup.POST("/signin", auth.Signin)
		authGroup.POST("/signout", auth.Signout)
	}

	user := api.Group("/user")
	user.Use(middleware.RequireUser())
	{
		user.GET("/profile", auth.GetProfile)
		user.PUT("/profile", auth.UpdateProfile)
	}

	destinations := api.Group("/destinations")
	{
		destinations.GET("", catalog.ListDestinations)
		destinations.GET("/:id", catalog.GetDestination)
		destinations.POST("", catalog.CreateDestination)
	}

	hotels := api.Group("/hotels")
	{
		hotels.GET("", catalog.ListHotels)
		hotels.GET("/:id", catalog.GetHotel)
		hotels.POST("", catalog.CreateHotel)
	}

	restaurants := api.Group("/restaurants")
	{
		restaurants.GET("", catalog.ListRestaurants)
		restaurants.GET("/:id", catalog.GetRestaurant)
		restaurants.POST("", catalog.CreateRestaurant)
	}

	tripPlanners := api.Group("/trip-planners")
	{
		tripPlanners.GET("", catalog.ListTripPlanners)
		tripPlanners.GET("/:id", catalog.GetTripPlanner)
		tripPlanners.POST("", catalog.CreateTripPlanner)
	}

	buses := api.Group("/buses")
	{
		buses.GET("", catalog.ListBuses)
		buses.GET("/:id", catalog.GetBus)
		buses.POST("", catalog.CreateBus)
	}

	privateCars := api.Group("/private-cars")
	{
		privateCars.GET("", catalog.ListPrivateCars)
		privateCars.GET("/:id", catalog.GetPrivateCar)
		privateCars.POST("", catalog.CreatePrivateCar)
	}

	travelPackages := api.Group("/travel-packages")
	{
		travelPackages.GET("", catalog.ListTravelPackages)
		travelPackages.GET("/:id", catalog.GetTravelPackage)
		travelPackages.POST("", catalog.CreateTravelPackage)
	}

	bookings := api.Group("/bookings")
	{
		bookings.POST("", booking.Create)
		bookings.GET("", booking.List)
		bookings.GET("/seats", booking.OccupiedSeats)
		bookings.GET("/:id", booking.Get)
		bookings.GET("/:id/receipt", booking.Receipt)
		bookings.PUT("/:id/cancel", middleware.RequireUser(), booking.Cancel)
	}
}
