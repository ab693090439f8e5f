package main

import (
	"os"

	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/auth"
	"github.com/trezcool/mentorhub/core/navigation"
	logsvc "github.com/trezcool/mentorhub/services/logger"
	sessionstore "github.com/trezcool/mentorhub/storage/session"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.New("ADMIN : ", conf)
	defer logger.Close()
	validate, _ := core.NewValidator()

	// start CLI
	cli := commandLine{
		gateway: auth.NewGateway(
			auth.Options{SuperAdminEmail: conf.Auth.SuperAdminEmail, LoginDelay: conf.Auth.LoginDelay},
			validate,
		),
		store:  sessionstore.NewFileStore(conf.CLI.SessionDir, conf.Auth.SessionKey),
		policy: navigation.NewPolicy(),
		out:    os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("command failed", err)
		}
		os.Exit(1)
	}
}
