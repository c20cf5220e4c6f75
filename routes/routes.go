package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gaurabwebdev/bistro-boss-server/configs"
	"github.com/gaurabwebdev/bistro-boss-server/controllers"
	"github.com/gaurabwebdev/bistro-boss-server/middlewares"
	"github.com/gaurabwebdev/bistro-boss-server/repository"
	"github.com/gaurabwebdev/bistro-boss-server/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	cartRepo := repository.NewCartRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Services
	userSvc := services.NewUserService(userRepo)
	menuSvc := services.NewMenuService(menuRepo)
	reviewSvc := services.NewReviewService(reviewRepo)
	cartSvc := services.NewCartService(cartRepo)
	paymentSvc := services.NewPaymentService(db, paymentRepo, cartRepo, services.NewStripeGateway(cfg.StripeSecretKey))

	// Controllers
	tokenCtrl := controllers.NewTokenController(cfg.JWTSecret, cfg.JWTTTL)
	userCtrl := controllers.NewUserController(userSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)

	verifyJWT := middlewares.VerifyJWT(cfg.JWTSecret)
	verifyAdmin := middlewares.VerifyAdmin(userRepo)

	// Liveness
	r.GET("/", func(c *gin.Context) { c.String(200, "BISTRO-BOSS Is Here") })

	// Token issue (public)
	r.POST("/jwt", tokenCtrl.Issue)

	// Users
	r.GET("/users", verifyJWT, verifyAdmin, userCtrl.List)
	r.POST("/users", userCtrl.Register)
	r.GET("/users/admin/:email", verifyJWT, userCtrl.CheckAdmin)
	r.PATCH("/users/admin/:id", userCtrl.PromoteToAdmin)
	r.DELETE("/users/:id", userCtrl.Delete)

	// Menu
	r.GET("/menu", menuCtrl.List)
	r.POST("/menu", verifyJWT, verifyAdmin, menuCtrl.Create)
	r.DELETE("/menu/:id", verifyJWT, verifyAdmin, menuCtrl.Delete)

	// Reviews
	r.GET("/reviews", reviewCtrl.List)

	// Carts
	r.GET("/carts", verifyJWT, cartCtrl.List)
	r.POST("/carts", cartCtrl.Add)
	r.DELETE("/carts/:id", cartCtrl.Remove)

	// Payments
	r.POST("/create-payment-content", verifyJWT, paymentCtrl.CreateIntent)
	r.POST("/payment", verifyJWT, paymentCtrl.Record)
}
