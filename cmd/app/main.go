package main

import (
	"context"
	"errors"
	"net/http"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"vitatrack/cmd/fx/account_fx"
	"vitatrack/cmd/fx/config_fx"
	"vitatrack/cmd/fx/controllers_fx"
	"vitatrack/cmd/fx/dashboard"
	"vitatrack/cmd/fx/db_fx"
	"vitatrack/cmd/fx/logs_fx"
	"vitatrack/cmd/fx/mail_fx"
	"vitatrack/cmd/fx/memcache_fx"
	"vitatrack/cmd/fx/plan_fx"
	"vitatrack/cmd/fx/profile_fx"
	"vitatrack/internal/infra"
	"vitatrack/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		profile_fx.Module,
		account_fx.Module,
		logs_fx.Module,
		plan_fx.Module,
		dashboard.Module,
		controllers_fx.Module,

		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg infra.Config, engine *gin.Engine, log *zap.Logger) {
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.JWTSecret == "" {
				return errors.New("JWT_SECRET is required")
			}
			if err := utils.RegisterValidators(); err != nil {
				return err
			}
			go func() {
				log.Info("starting HTTP server", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}
