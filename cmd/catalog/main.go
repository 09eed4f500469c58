package main

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Debug("未找到 .env 文件，使用系统环境变量")
	}

	app := cli.NewApp()
	app.Name = "catalog"
	app.Usage = "movie catalog schema tool"
	app.Version = "0.1.0"
	configure(app)

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("failed to run app")
	}
}

func configure(app *cli.App) {
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "db-driver",
			Usage:  "postgres or sqlite",
			EnvVar: "DB_DRIVER",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "logrus level (debug, info, warn, error)",
			EnvVar: "LOG_LEVEL",
		},
	}
	app.Commands = []cli.Command{
		makeMigrateCMD(),
		makeSeedCMD(),
		makeSchemaCMD(),
		makeStatsCMD(),
	}
}
