package service

import (
	"github.com/MKhiriev/lost-and-found/internal/adapter"
	"github.com/MKhiriev/lost-and-found/internal/config"
	"github.com/MKhiriev/lost-and-found/internal/logger"
	"github.com/MKhiriev/lost-and-found/internal/store"
)

// Services bundles every business-logic dependency of the HTTP layer.
type Services struct {
	AuthService  AuthService
	ResetService ResetService
	ItemService  ItemService
}

// NewServices wires all services over the shared storages and configuration.
func NewServices(storages *store.Storages, notifier adapter.ResetNotifier, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, storages.SessionRepository, cfg.Auth, logger),
		ResetService: NewResetService(storages.UserRepository, storages.ResetTokenRepository, notifier, cfg.Auth, logger),
		ItemService:  NewItemService(storages.ItemRepository, storages.ImageStore, logger),
	}
}
