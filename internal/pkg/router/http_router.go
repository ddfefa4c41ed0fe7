package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alexandreventurin/AvalinxGHL/app/controllers"
	"github.com/alexandreventurin/AvalinxGHL/app/repository"
	"github.com/alexandreventurin/AvalinxGHL/internal/pkg/constants"
	"github.com/alexandreventurin/AvalinxGHL/internal/pkg/ghl"
	"github.com/alexandreventurin/AvalinxGHL/internal/pkg/reviewlinks"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	factory := repository.NewFactory()
	repos := factory.GetRepositories()

	ghlClient := ghl.NewClientFromEnv()
	reviewService := reviewlinks.NewService(ghlClient, repos.EmployeeLink, reviewlinks.BaseRedirectDomainFromEnv())

	authController := controllers.NewAuthController(ghlClient, repos)
	reviewController := controllers.NewReviewController(reviewService, repos.Token)
	linkController := controllers.NewLinkController(reviewService, repos.Token)

	// liveness
	app.Get(constants.StatusRoute, controllers.HandleAPIStatus)

	// OAuth lifecycle
	app.Get(constants.AuthConnectRoute, authController.HandleConnect)
	app.Get(constants.AuthCallbackRoute, authController.HandleCallback)
	app.Get(constants.MeRoute, authController.HandleMe)
	app.Post(constants.AuthDisconnectRoute, authController.HandleDisconnect)

	// canonical review destination
	app.Post(constants.SetReviewLinkRoute, reviewController.HandleSetReviewLink)
	app.Get(constants.GetReviewLinkRoute, reviewController.HandleGetReviewLink)

	// employee short links
	app.Post(constants.CreateLinkRoute, linkController.HandleCreateEmployeeLink)
	app.Get(constants.ListLinksRoute, linkController.HandleListEmployeeLinks)
	app.Get(constants.ResolveLinkRoute, linkController.HandleResolveEmployeeLink)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
