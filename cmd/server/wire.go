//go:build wireinject

package main

import (
	"github.com/google/wire"

	"aura-server/internal/config"
	"aura-server/internal/domain/account"
	"aura-server/internal/domain/conversation"
	"aura-server/internal/infrastructure/repository/accountrepo"
	"aura-server/internal/infrastructure/repository/conversationrepo"
	"aura-server/internal/interfaces/httpserver"
)

var platformSet = wire.NewSet(
	accountrepo.NewRepository,
	wire.Bind(new(account.Repository), new(*accountrepo.Repository)),
	conversationrepo.NewConversationGormRepository,
	conversationrepo.NewMessageGormRepository,
	newPasswordHasher,
	newTokenService,
	newRegistrationValidator,
	account.NewAccountService,
	conversation.NewConversationService,
)

// BuildApplication assembles the full service graph.
func BuildApplication() (*Application, error) {
	wire.Build(
		config.Load,
		newLogger,
		newGormDB,
		platformSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}
