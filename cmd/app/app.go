package main

import "github.com/Liso15/UbuntuExpress/internal/app"

//	@title			UbuntuExpress API
//	@version		1.0
//	@description	Сервис сравнения розничных цен: каталог, цены ритейлеров, подписки и уведомления.
//	@BasePath		/api/v1
func main() {
	app.Run()
}
