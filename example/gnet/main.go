package main

import (
	"os"

	"github.com/panjf2000/gnet/v2"

	"github.com/varkala/alog/compat"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	// Route gnet's internal logging into the platform log under one tag
	adapter := compat.NewGnetAdapter(
		compat.WithGnetTag("EchoSrv"),
		compat.WithFatalHandler(func(msg string) {
			os.Exit(1)
		}),
	)

	err := gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(adapter),
	)
	if err != nil {
		adapter.Errorf("server exited: %v", err)
	}
}
