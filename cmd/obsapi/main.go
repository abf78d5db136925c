// Command obsapi fetches, inspects, and saves XML documents served
// by a build service API.
package main

//
// Main
//

import (
	"context"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/osc-go/obsapi/internal/logx"
	"github.com/osc-go/obsapi/internal/runtimex"
)

func main() {
	logHandler := logx.NewHandlerWithDefaultSettings()
	log.Log = &log.Logger{Level: log.InfoLevel, Handler: logHandler}

	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("%+v", r)
		}
	}()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	root := newRootCommand(os.Stdout)
	err := root.ExecuteContext(ctx)
	runtimex.PanicOnError(err, "root.Execute")
}
