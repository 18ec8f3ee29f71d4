package main

import (
	"SmartStudentHub/internal/bootstrap"
	pkg "SmartStudentHub/pkg/routes"

	"go.uber.org/fx"
)

func main() {
	bootstrap.LoadEnv()

	app := fx.New(
		pkg.HubModules,
	)

	app.Run()
}
