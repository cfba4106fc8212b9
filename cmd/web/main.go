// @title           renta API
// @version         1.0
// @description     API платформы аренды товаров (заказы, каталог, блог).
// @contact.name    Renta Team
// @contact.email   support@renta.local
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "renta_backend/internal/app"

func main() {
	app.Run()
}
