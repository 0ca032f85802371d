package rpc

import (
	"log/slog"

	"github.com/daniilsolovey/news-management/internal/newsportal"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

func New(logger *slog.Logger, manager *newsportal.Manager) *zenrpc.Server {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("catalog", NewCatalogService(manager))
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "news-management", nil))

	return rpcServer
}
