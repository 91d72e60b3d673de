package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

// createOrder
//
//	@Summary		Оформление заказа
//	@Description	Цена каждой строки фиксируется по текущей цене товара
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		CreateOrderRequest	true	"Заказ"
//	@Success		201		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Failure		503		{object}	ErrorResponse
//	@Router			/orders [post]
func (o *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var body CreateOrderRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeLoggedError(o.logger, w, r, err)
		return
	}

	order, err := o.orderUsecase.CreateOrder(r.Context(), body.toUsecase())
	if err != nil {
		writeLoggedError(o.logger, w, r, err)
		return
	}

	o.logger.Infof("order created. order_id: %d, user_id: %s, total: %s", order.ID, order.UserID, order.TotalAmount.String())
	WriteSuccess(w, http.StatusCreated, toOrderResponse(order))
}

// getOrder
//
//	@Summary	Заказ по идентификатору
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"Идентификатор заказа"
//	@Success	200	{object}	OrderResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [get]
func (o *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := o.orderUsecase.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if !ok {
		WriteError(w, e.ErrNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponse(order))
}

// listUserOrders
//
//	@Summary	Заказы пользователя
//	@Tags		orders
//	@Produce	json
//	@Param		userID	path	string	true	"Идентификатор пользователя"
//	@Success	200		{array}	OrderResponse
//	@Router		/users/{userID}/orders [get]
func (o *OrderHandler) listUserOrders(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toOrderResponses(o.orderUsecase.ListUserOrders(r.Context(), chi.URLParam(r, "userID"))))
}

// updateOrder
//
//	@Summary	Смена статуса заказа
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Идентификатор заказа"
//	@Param		patch	body		UpdateOrderRequest	true	"Новый статус"
//	@Success	200		{object}	OrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	503		{object}	ErrorResponse
//	@Router		/orders/{id} [patch]
func (o *OrderHandler) updateOrder(w http.ResponseWriter, r *http.Request) {
	var body UpdateOrderRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeLoggedError(o.logger, w, r, err)
		return
	}

	order, err := o.orderUsecase.UpdateOrder(r.Context(), chi.URLParam(r, "id"), body.toPatch())
	if err != nil {
		writeLoggedError(o.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponse(order))
}

// deleteOrder
//
//	@Summary	Удаление заказа
//	@Tags		orders
//	@Param		id	path	int	true	"Идентификатор заказа"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	503	{object}	ErrorResponse
//	@Router		/orders/{id} [delete]
func (o *OrderHandler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := o.orderUsecase.DeleteOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeLoggedError(o.logger, w, r, err)
		return
	}

	WriteNoContent(w)
}
