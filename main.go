// @title CTC Webbase API
// @version 1.0
// @description Event registration forms, submissions and technical-lead referrals.
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"ctc-webbase/cmd"
	_ "ctc-webbase/docs"
)

//go:generate swag init -g main.go -o docs --outputTypes go

func main() {
	cmd.Execute()
}
