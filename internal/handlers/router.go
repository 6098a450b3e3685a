package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/snapchallan/rewards/internal/middleware"
	"github.com/snapchallan/rewards/internal/models"
	"github.com/snapchallan/rewards/internal/service"
	"golang.org/x/time/rate"
)

type Handler struct {
	userService       service.UserService
	walletService     service.WalletService
	withdrawalService service.WithdrawalService
	violationService  service.ViolationService
	rewardService     service.RewardService
	secretKey         string
}

func NewHandler(
	userService service.UserService,
	walletService service.WalletService,
	withdrawalService service.WithdrawalService,
	violationService service.ViolationService,
	rewardService service.RewardService,
	secretKey string,
) *Handler {
	return &Handler{
		userService:       userService,
		walletService:     walletService,
		withdrawalService: withdrawalService,
		violationService:  violationService,
		rewardService:     rewardService,
		secretKey:         secretKey,
	}
}

func NewRouter(handler *Handler, secretKey, internalKey string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging())
	r.Use(middleware.WithGzip())
	r.Use(middleware.RateLimitMiddleware(middleware.NewCallerLimiter(rate.Limit(20), 40)))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	r.Get("/api/violation-types", handler.GetViolationTypes)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTMiddleware(secretKey))
			r.Get("/wallet", handler.GetWallet)
			r.Post("/wallet/withdraw", handler.Withdraw)
			r.Get("/wallet/withdrawals", handler.GetWithdrawals)
			r.Post("/violations", handler.SubmitViolation)
			r.Get("/violations", handler.GetMyViolations)
		})
	})

	r.Route("/api/officer", func(r chi.Router) {
		r.Use(middleware.JWTMiddleware(secretKey))
		r.Use(middleware.RequireRole(models.RoleOfficer))
		r.Post("/violations/{id}/verify", handler.VerifyViolation)
		r.Post("/violations/{id}/reject", handler.RejectViolation)
	})

	r.Route("/api/internal", func(r chi.Router) {
		r.Use(middleware.InternalAuth(internalKey))
		r.Post("/challans/paid", handler.ChallanPaid)
	})

	return r
}
