package mail_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"vitatrack/internal/infra"
	"vitatrack/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg infra.Config, log *zap.Logger) (services.IMailService, error) {
	from := cfg.SMTP.From
	if from == "" {
		from = cfg.SMTP.Username
	}

	mailService, err := services.NewSMTPMailService(services.SMTPConfig{
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port,
		Username:   cfg.SMTP.Username,
		Password:   cfg.SMTP.Password,
		From:       from,
		FromName:   "VitaTrack",
		UseSSL:     cfg.SMTP.Port == 465,
		RequireTLS: true,

		AppName:    "VitaTrack",
		AppBaseURL: cfg.AppBaseURL,
	})
	if err != nil {
		return nil, err
	}

	if cfg.SMTP.Password == "" {
		log.Warn("SMTP_PASSWORD is empty, password reset mails will fail")
	}
	return mailService, nil
}
