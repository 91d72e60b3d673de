package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
)

type StatusHandler struct {
	statusUsecase usecase.StatusUC
}

func NewStatusHandler(statusUsecase usecase.StatusUC) *StatusHandler {
	return &StatusHandler{statusUsecase: statusUsecase}
}

// storeStatus
//
//	@Summary		Состояние удалённого хранилища
//	@Description	configured=false означает работу на встроенном каталоге
//	@Tags			status
//	@Produce		json
//	@Success		200	{object}	StatusResponse
//	@Router			/status [get]
func (s *StatusHandler) storeStatus(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toStatusResponse(s.statusUsecase.Check(r.Context())))
}
