package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/user/moviecatalog/internal/config"
	"github.com/user/moviecatalog/internal/fixture"
	"github.com/user/moviecatalog/internal/repository"
	"gorm.io/gorm"
)

func makeMigrateCMD() cli.Command {
	return cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Creates or updates catalog tables",
		Action: func(c *cli.Context) error {
			db, err := openDB(c)
			if err != nil {
				return err
			}
			defer closeDB(db)
			if err := repository.Migrate(db); err != nil {
				return err
			}
			log.Info("migration done")
			return nil
		},
	}
}

func makeSeedCMD() cli.Command {
	return cli.Command{
		Name:  "seed",
		Usage: "Migrates and loads a YAML fixture",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "file, f",
				Usage: "fixture file path",
			},
		},
		Action: func(c *cli.Context) error {
			path := c.String("file")
			if path == "" {
				return cli.NewExitError("--file is required", 1)
			}
			db, err := openDB(c)
			if err != nil {
				return err
			}
			defer closeDB(db)
			if err := repository.Migrate(db); err != nil {
				return err
			}
			_, err = fixture.LoadFile(context.Background(), repository.NewRepositories(db), path)
			return err
		},
	}
}

func makeSchemaCMD() cli.Command {
	return cli.Command{
		Name:  "schema",
		Usage: "Prints delete rules between tables",
		Action: func(c *cli.Context) error {
			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PARENT\tCHILD\tCOLUMN\tON DELETE")
			for _, rel := range repository.Catalog().AllRelationships() {
				onDelete := rel.OnDelete.String()
				if rel.Junction {
					onDelete += " (link)"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rel.ParentTable, rel.ChildTable, rel.ForeignKey, onDelete)
			}
			return w.Flush()
		},
	}
}

func makeStatsCMD() cli.Command {
	return cli.Command{
		Name:  "stats",
		Usage: "Prints row counts per table",
		Action: func(c *cli.Context) error {
			db, err := openDB(c)
			if err != nil {
				return err
			}
			defer closeDB(db)
			stats, err := repository.NewRepositories(db).Stats(context.Background())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TABLE\tROWS")
			for _, s := range stats {
				fmt.Fprintf(w, "%s\t%d\n", s.Table, s.Rows)
			}
			return w.Flush()
		},
	}
}

// openDB 命令行参数优先于环境变量
func openDB(c *cli.Context) (*gorm.DB, error) {
	cfg := config.Load()
	if v := c.GlobalString("db-driver"); v != "" {
		cfg.DBDriver = v
	}
	if v := c.GlobalString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	db, err := repository.InitDB(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to init db")
	}
	log.WithFields(log.Fields{
		"driver": cfg.DBDriver,
		"env":    cfg.Env,
	}).Debug("database connected")
	return db, nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.WithError(err).Warn("failed to close db")
	}
}
