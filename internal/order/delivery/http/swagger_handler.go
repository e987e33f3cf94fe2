package http

// PlaceOrder godoc
// @Summary Place a new order
// @Description Place an order for a product, allocating stock
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{productId=int,quantity=int} true "Order data"
// @Success 201 {object} object{message=string,order=object}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /orders [post]
func (h *OrderHandler) PlaceOrderDoc() {}

// ListMyOrders godoc
// @Summary List my orders
// @Description List the authenticated user's orders in creation order
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} object{orderId=int,productId=int,productName=string,quantity=int,username=string}
// @Failure 401 {object} object{error=string}
// @Router /orders [get]
func (h *OrderHandler) ListMyOrdersDoc() {}

// GetOrder godoc
// @Summary Get a single order
// @Description Get one of the authenticated user's orders by ID
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} object{orderId=int,productId=int,productName=string,quantity=int,username=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrderDoc() {}

// UpdateOrder godoc
// @Summary Update an order's quantity
// @Description Change the quantity of an owned order, adjusting stock by the difference
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body object{quantity=int} true "New quantity"
// @Success 200 {object} object{message=string,order=object}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /orders/{id} [put]
func (h *OrderHandler) UpdateOrderDoc() {}

// DeleteOrder godoc
// @Summary Delete an order
// @Description Delete an owned order, releasing its stock allocation
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /orders/{id} [delete]
func (h *OrderHandler) DeleteOrderDoc() {}
