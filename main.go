package main

import (
	"kadai-note/biz/infrastructure/config"
	"kadai-note/biz/infrastructure/util/log"
	"kadai-note/provider"

	"github.com/cloudwego/hertz/pkg/app/server"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
)

func main() {
	provider.Init()
	c := config.GetConfig()

	log.Info("kadai-note starting, listen on %s", c.ListenOn)

	h := server.Default(
		server.WithHostPorts(c.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(c.Metrics.ListenOn, c.Metrics.Path)),
	)

	customizedRegister(h)
	h.Spin()
}
