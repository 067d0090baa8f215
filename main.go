package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Danieliragi/johnserviceMotel-sub002/routes"
	"github.com/Danieliragi/johnserviceMotel-sub002/storage"
	"github.com/Danieliragi/johnserviceMotel-sub002/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	// Only load .env in development
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	// JWT verifiers
	resetTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("EMAIL_TOKEN_SECRET")))
	resetTokenVerifier.WithDefaultBlocklist()
	resetTokenVerifierMiddleware := resetTokenVerifier.Verify(func() interface{} {
		return new(utils.ForgotPasswordToken)
	})

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok", "database": storage.Available()})
	})

	user := app.Party("/api/user")
	{
		user.Post("/register", routes.Register)
		user.Post("/login", routes.Login)
		user.Post("/google", routes.GoogleLoginOrSignUp)
		user.Post("/forgotpassword", routes.ForgotPassword)
		user.Post("/resetpassword", resetTokenVerifierMiddleware, routes.ResetPassword)
		user.Get("/profile", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.GetUserProfile)
		user.Patch("/profile", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.UpdateUserProfile)
	}

	chambre := app.Party("/api/chambre")
	{
		chambre.Get("/", routes.GetChambres)
		chambre.Get("/{id:uint}", routes.GetChambre)
	}

	availability := app.Party("/api/availability")
	{
		availability.Get("/", routes.GetChambreAvailability)
	}

	reservation := app.Party("/api/reservation")
	{
		reservation.Post("/", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreateReservation)
		reservation.Get("/mine", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.GetUserReservations)
		reservation.Get("/code/{code:string}", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.GetReservationByCode)
		reservation.Delete("/{id:uint}", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CancelReservation)
	}

	servicesParty := app.Party("/api/services")
	{
		servicesParty.Get("/", routes.GetServices)
	}

	reviews := app.Party("/api/reviews")
	{
		reviews.Get("/", routes.GetReviews)
		reviews.Post("/", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreateReview)
	}

	payment := app.Party("/api/payment")
	{
		payment.Post("/intent", routes.CreatePaymentIntent)
	}

	// Back office
	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/users", routes.AdminListUsers)
		admin.Get("/users/{id:uint}", routes.AdminGetUser)
		admin.Patch("/users/{id:uint}/role", utils.SuperAdminOnlyMiddleware, routes.AdminChangeUserRole)

		admin.Post("/chambres", routes.CreateChambre)
		admin.Patch("/chambres/{id:uint}", routes.UpdateChambre)
		admin.Delete("/chambres/{id:uint}", routes.DeactivateChambre)

		admin.Get("/reservations", routes.AdminListReservations)
		admin.Get("/reservations/{id:uint}", routes.AdminGetReservation)
		admin.Post("/reservations/{id:uint}/cancel", routes.AdminCancelReservation)
		admin.Patch("/reservations/{id:uint}/status", routes.AdminUpdateReservationStatus)

		admin.Get("/invoices", routes.AdminListInvoices)
		admin.Get("/invoices/{id:uint}", routes.AdminGetInvoice)
		admin.Post("/invoices", routes.AdminCreateInvoice)
		admin.Patch("/invoices/{id:uint}", routes.AdminUpdateInvoice)
		admin.Post("/invoices/{id:uint}/issue", routes.AdminIssueInvoice)
		admin.Post("/invoices/{id:uint}/mark-paid", routes.AdminMarkInvoicePaid)
		admin.Post("/invoices/{id:uint}/void", routes.AdminVoidInvoice)

		admin.Get("/payments", routes.AdminListPayments)
		admin.Get("/payments/{id:uint}", routes.AdminGetPayment)

		admin.Get("/emails", routes.AdminListEmailLogs)
		admin.Get("/emails/{id:uint}", routes.AdminGetEmailLog)

		admin.Get("/reviews", routes.AdminListReviews)
		admin.Patch("/reviews/{id:uint}/visibility", routes.AdminUpdateReviewVisibility)
		admin.Delete("/reviews/{id:uint}", routes.AdminDeleteReview)

		admin.Get("/stats", routes.AdminStats)
	}

	app.Post("/api/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	addr := ":" + port

	fmt.Println("Starting server on", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
