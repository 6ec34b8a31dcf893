package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/golang/glog"

	fx "github.com/robotracks/odom.go/pkg/framework"
	"github.com/robotracks/odom.go/pkg/node"
)

func init() {
	node.SetupFlags()
}

func main() {
	flag.Parse()

	conf := node.NewConfig()
	n := conf.MustNewNode()

	loop := fx.NewLoop().At(conf.PublishHz)
	loop.Add(n)

	runner := fx.NewRunner().HandleSignals()
	runner.Go(fx.NamedRun("loop", loop))
	if err := runner.Wait(); err != nil {
		glog.Exit(err)
	}
}
