package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"go.uber.org/zap"

	dm "vitatrack/internal/models/domain_models"
	resp "vitatrack/internal/models/response_models"
	"vitatrack/internal/stats"
)

var staticTips = []string{
	"Bebe agua antes de cada comida para mantener una buena hidratación.",
	"Intenta dormir 7-8 horas cada noche para una mejor recuperación.",
	"Incluye proteínas en cada comida para mantener tu masa muscular.",
	"Realiza ejercicios de estiramiento para mejorar tu flexibilidad.",
	"Practica la respiración profunda para reducir el estrés.",
}

const (
	tipSourceStatic = "static"
	tipTimeout      = 8 * time.Second
)

// TipProvider writes a one sentence tip from a prompt.
type TipProvider interface {
	Name() string
	Tip(ctx context.Context, prompt string) (string, error)
}

type TipService interface {
	DailyTip(ctx context.Context, identity dm.Identity) (*resp.DailyTipResponse, error)
}

type tipService struct {
	provider  TipProvider
	dashboard DashboardService
	location  *time.Location
	log       *zap.Logger
	now       func() time.Time
}

// NewTipService accepts a nil provider, in which case only the static list
// is used.
func NewTipService(provider TipProvider, dashboard DashboardService, location *time.Location, log *zap.Logger) TipService {
	return &tipService{provider: provider, dashboard: dashboard, location: location, log: log, now: time.Now}
}

func (s *tipService) DailyTip(ctx context.Context, identity dm.Identity) (*resp.DailyTipResponse, error) {
	if err := guard(identity, ""); err != nil {
		return nil, err
	}
	day := s.now().In(s.location).Format("2006-01-02")
	out := &resp.DailyTipResponse{
		Tip:    StaticTip(identity.UserID.String(), day),
		Source: tipSourceStatic,
		Date:   day,
	}
	if s.provider == nil {
		return out, nil
	}

	summary, err := s.dashboard.WeeklySummary(ctx, identity)
	if err != nil {
		s.log.Warn("tip without summary", zap.Error(err))
		return out, nil
	}

	pctx, cancel := context.WithTimeout(ctx, tipTimeout)
	defer cancel()
	tip, err := s.provider.Tip(pctx, tipPrompt(summary))
	tip = strings.TrimSpace(tip)
	if err != nil || tip == "" {
		s.log.Warn("tip provider failed, using static tip", zap.String("provider", s.provider.Name()), zap.Error(err))
		return out, nil
	}
	out.Tip = tip
	out.Source = s.provider.Name()
	return out, nil
}

// StaticTip picks the same tip for a user for the whole day.
func StaticTip(userID, day string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID + "|" + day))
	return staticTips[h.Sum32()%uint32(len(staticTips))]
}

func tipPrompt(summary stats.WeeklySummary) string {
	return fmt.Sprintf(`Eres un asistente de bienestar. Escribe UN solo consejo de salud en español, de una frase y menos de 25 palabras, sin emojis.
Datos de esta semana del usuario:
- minutos de ejercicio: %d
- calorías medias por comida: %d
- horas de sueño medias: %.1f
Devuelve solo el consejo.`, summary.TotalExerciseMinutes, summary.AverageCalories, summary.AverageSleep)
}
