package handler

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lightning-wallet-daemon/internal/adapter/http/dto"
	"lightning-wallet-daemon/internal/core/ports"
	"lightning-wallet-daemon/pkg/apperror"
	"lightning-wallet-daemon/pkg/response"
)

// ScreenTracker remembers the client's active screen so incoming-payment
// handling can tell whether the receive screen is showing.
type ScreenTracker struct {
	mu     sync.RWMutex
	screen string
}

func NewScreenTracker() *ScreenTracker {
	return &ScreenTracker{}
}

func (t *ScreenTracker) CurrentScreen() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.screen
}

func (t *ScreenTracker) SetScreen(screen string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen = screen
}

// SystemHandler exposes daemon status, onboarding and navigation.
type SystemHandler struct {
	lifecycle  ports.WalletLifecycle
	onboarding ports.Onboarding
	screens    *ScreenTracker
	log        zerolog.Logger
}

func NewSystemHandler(
	lifecycle ports.WalletLifecycle,
	onboarding ports.Onboarding,
	screens *ScreenTracker,
	log zerolog.Logger,
) *SystemHandler {
	return &SystemHandler{lifecycle: lifecycle, onboarding: onboarding, screens: screens, log: log}
}

// Status handles GET /status.
func (h *SystemHandler) Status(c *gin.Context) {
	response.OK(c, dto.StatusResponse{
		Lifecycle: h.lifecycle.Status(),
		Stage:     h.onboarding.Stage(),
	})
}

// SetStage handles POST /onboarding/stage.
func (h *SystemHandler) SetStage(c *gin.Context) {
	var req dto.StageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if err := h.onboarding.SetStage(c.Request.Context(), req.Stage); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"stage": h.onboarding.Stage()})
}

// SetNavigation handles PUT /navigation.
func (h *SystemHandler) SetNavigation(c *gin.Context) {
	var req dto.NavigationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	h.screens.SetScreen(req.Screen)
	response.OK(c, gin.H{"screen": req.Screen})
}

// HealthCheck probes every registered dependency. Any failing check
// degrades the report and flips the status code to 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		deps := make(map[string]string, len(checkers))
		for _, checker := range checkers {
			if err := checker.Healthy(c.Request.Context()); err != nil {
				deps[checker.Name()] = err.Error()
				status = "degraded"
				code = http.StatusServiceUnavailable
				continue
			}
			deps[checker.Name()] = "ok"
		}
		c.JSON(code, gin.H{"status": status, "dependencies": deps})
	}
}
