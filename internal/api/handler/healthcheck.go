package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/dailysale/pkg/apiErrors"
)

type HealthcheckResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// HealthcheckHandler responde ok com o horário do servidor, usado pelo balanceador
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteJSON(w, http.StatusOK, HealthcheckResponse{
			Status: "ok",
			Time:   time.Now().UTC().Format(time.RFC3339),
		})
	})
}
