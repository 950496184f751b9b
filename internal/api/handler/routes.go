package handler

import (
	"net/http"

	"github.com/vfg2006/dailysale/internal/api/handler/router"
	"github.com/vfg2006/dailysale/internal/usecases/licensing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// License expõe a verificação de licença. A própria chave autentica a chamada.
func License(service licensing.Licenser) []router.Route {
	return []router.Route{
		{
			Path:    "/api/license/check-and-consume",
			Method:  http.MethodPost,
			Handler: CheckAndConsume(service),
		},
	}
}
