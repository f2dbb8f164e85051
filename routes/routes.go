package routes

import (
	"github.com/LimeLiteSRL/my-fullstack-app-sub001/controllers"
	"github.com/LimeLiteSRL/my-fullstack-app-sub001/middlewares"

	"github.com/gin-gonic/gin"
)

// Controllers collects everything SetupRouter wires up.
type Controllers struct {
	Intake     *controllers.IntakeController
	Discovery  *controllers.DiscoveryController
	EatenFood  *controllers.EatenFoodController
	Review     *controllers.ReviewController
	Restaurant *controllers.RestaurantController
	Food       *controllers.FoodController
	Device     *controllers.DeviceController
	Alert      *controllers.AlertController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Public discovery routes
	discovery := r.Group("/discovery")
	{
		discovery.GET("/nearby", ctl.Discovery.SearchNearby)
	}

	// Public catalog reads
	r.GET("/restaurants/:id", ctl.Restaurant.GetRestaurant)
	r.GET("/foods/:id", ctl.Food.GetFood)
	r.GET("/foods/:id/summary", ctl.Review.GetFoodSummary)
	r.GET("/foods/:id/reviews", ctl.Review.ListReviews)

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.DELETE("/account", controllers.DeleteAccount)
	}

	// Protected meal log and intake routes
	logGroup := r.Group("/log")
	logGroup.Use(middlewares.AuthMiddleware())
	{
		logGroup.POST("", ctl.EatenFood.LogEatenFood)
		logGroup.POST("/photo", ctl.EatenFood.LogEatenFoodPhoto)
		logGroup.GET("", ctl.EatenFood.ListEatenFoods)
		logGroup.DELETE("/:id", ctl.EatenFood.DeleteEatenFood)
	}
	intake := r.Group("/intake")
	intake.Use(middlewares.AuthMiddleware())
	{
		intake.GET("/summary", ctl.Intake.GetIntakeSummary)
	}

	// Protected review writes
	reviews := r.Group("/")
	reviews.Use(middlewares.AuthMiddleware())
	{
		reviews.POST("foods/:id/reviews", ctl.Review.CreateReview)
		reviews.PUT("reviews/:id", ctl.Review.UpdateReview)
		reviews.DELETE("reviews/:id", ctl.Review.DeleteReview)
	}

	// Protected catalog management
	catalog := r.Group("/")
	catalog.Use(middlewares.AuthMiddleware())
	{
		catalog.POST("restaurants", ctl.Restaurant.CreateRestaurant)
		catalog.PUT("restaurants/:id", ctl.Restaurant.UpdateRestaurant)
		catalog.POST("restaurants/:id/hero", ctl.Restaurant.UploadHeroImage)
		catalog.DELETE("restaurants/:id", ctl.Restaurant.DeleteRestaurant)
		catalog.POST("restaurants/:id/foods", ctl.Food.CreateFood)
		catalog.PUT("foods/:id", ctl.Food.UpdateFood)
		catalog.DELETE("foods/:id", ctl.Food.DeleteFood)
	}

	// Protected devices and alerts
	devices := r.Group("/devices")
	devices.Use(middlewares.AuthMiddleware())
	{
		devices.POST("", ctl.Device.RegisterDevice)
		devices.PUT("/notifications", ctl.Device.ToggleNotifications)
	}
	alerts := r.Group("/alerts")
	alerts.Use(middlewares.AuthMiddleware())
	{
		alerts.GET("", ctl.Alert.ListAlerts)
		alerts.GET("/ws", ctl.Alert.AlertsWS)
	}

	return r
}
