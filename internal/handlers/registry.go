package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	UserHandler    *UserHandler
	ProductHandler *ProductHandler
	OrderHandler   *OrderHandler
	PostHandler    *PostHandler
}
