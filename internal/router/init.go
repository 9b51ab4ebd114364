package router

import (
	"github.com/wtwr-app/wtwr-backend/internal/application"
	"github.com/wtwr-app/wtwr-backend/internal/container"
	"github.com/wtwr-app/wtwr-backend/internal/infrastructure/mongodb"
	handlers "github.com/wtwr-app/wtwr-backend/internal/interface/http"
	"github.com/wtwr-app/wtwr-backend/internal/router/modules"
)

// InitModules builds the feature modules from container singletons and adds
// them to the registry. Called once during startup.
func InitModules(r *Registry) {
	db := container.GetMongo()
	logger := container.GetLogger()
	jwt := container.GetJWT()
	opTimeout := container.GetConfig().MongoOpTimeout

	userSvc := application.NewUserService(mongodb.NewUserRepository(db, opTimeout), jwt, logger)
	itemSvc := application.NewItemService(mongodb.NewItemRepository(db, opTimeout), logger)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc), jwt))
	r.Add(modules.NewItemModule(handlers.NewItemHandler(itemSvc), jwt))
}
