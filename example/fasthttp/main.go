package main

import (
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/varkala/alog"
	"github.com/varkala/alog/compat"
)

func main() {
	// Route fasthttp's internal logging into the platform log
	adapter := compat.NewFastHTTPAdapter(
		compat.WithFastHTTPTag("HTTPSrv"),
		compat.WithDefaultPriority(alog.PriorityInfo),
	)

	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  adapter,

		Name:         "alog-demo",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	alog.Printf("starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		alog.Eprintf("server failed: %v", err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}
