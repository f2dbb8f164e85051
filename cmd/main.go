package main

import (
	"log"

	"github.com/LimeLiteSRL/my-fullstack-app-sub001/config"
	"github.com/LimeLiteSRL/my-fullstack-app-sub001/controllers"
	"github.com/LimeLiteSRL/my-fullstack-app-sub001/repositories"
	"github.com/LimeLiteSRL/my-fullstack-app-sub001/routes"
	"github.com/LimeLiteSRL/my-fullstack-app-sub001/services"
	"github.com/LimeLiteSRL/my-fullstack-app-sub001/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	store := repositories.NewStore(config.DB)

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Println("push disabled:", err)
	}
	services.InitAlertDeps(config.DB, hub, push)

	rek, err := services.NewRekognitionService()
	if err != nil {
		log.Println("photo recognition disabled:", err)
	}

	ctl := routes.Controllers{
		Intake:     controllers.NewIntakeController(services.NewIntakeService(store)),
		Discovery:  controllers.NewDiscoveryController(services.NewDiscoveryService(store)),
		EatenFood:  controllers.NewEatenFoodController(services.NewEatenFoodService(config.DB, rek)),
		Review:     controllers.NewReviewController(services.NewReviewService(config.DB, store)),
		Restaurant: controllers.NewRestaurantController(services.NewRestaurantService(config.DB)),
		Food:       controllers.NewFoodController(services.NewFoodService(config.DB)),
		Device:     controllers.NewDeviceController(push),
		Alert:      controllers.NewAlertController(hub),
	}

	r := routes.SetupRouter(ctl)
	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
