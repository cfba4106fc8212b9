package services

import (
	"renta_backend/internal/email"
	"renta_backend/internal/queue"
	"renta_backend/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService    AuthService
	UserService    UserService
	ProductService ProductService
	OrderService   OrderService
	PostService    PostService
	EmailProvider  email.Provider
	Publisher      queue.Publisher
}

// NewServiceContainer собирает сервисы поверх репозиториев
func NewServiceContainer(
	userRepo repositories.UserRepository,
	productRepo repositories.ProductRepository,
	orderRepo repositories.OrderRepository,
	postRepo repositories.PostRepository,
	emailProvider email.Provider,
	publisher queue.Publisher,
) *ServiceContainer {
	return &ServiceContainer{
		AuthService:    NewAuthService(userRepo),
		UserService:    NewUserService(userRepo),
		ProductService: NewProductService(productRepo),
		OrderService:   NewOrderService(orderRepo, productRepo, publisher, emailProvider),
		PostService:    NewPostService(postRepo),
		EmailProvider:  emailProvider,
		Publisher:      publisher,
	}
}
