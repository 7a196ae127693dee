package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/config"
	"github.com/timka1983/WorkTrackerPRO-sub001/internal/db"
	"github.com/timka1983/WorkTrackerPRO-sub001/internal/monitor"
	"github.com/timka1983/WorkTrackerPRO-sub001/internal/notify"
	"github.com/timka1983/WorkTrackerPRO-sub001/internal/routes"
)

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("config error")
	}

	database, err := db.Open(cfg.DbDsn)
	if err != nil {
		log.WithError(err).Fatal("db error")
	}

	var runner *monitor.Runner
	if cfg.FeatureAnalytics {
		runner = monitor.New(database, clockwork.NewRealClock(), notify.FromConfig(cfg, log), log,
			cfg.OvertimePollSeconds, cfg.OvertimeBufferMinutes)
		go runner.Run(context.Background())
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	routes.Register(router, database, cfg, runner)

	if err := router.Run(cfg.Addr); err != nil {
		log.WithError(err).Fatal("server error")
	}
}
