package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/emberlabs/emberd/log"
)

// interruptListener returns a channel that will be closed when an interrupt
// signal such as SIGINT (Ctrl+C) or SIGTERM is received.
func interruptListener() <-chan struct{} {
	c := make(chan struct{})
	go func() {
		interruptChannel := make(chan os.Signal, 1)
		signal.Notify(interruptChannel, os.Interrupt, syscall.SIGTERM)

		sig := <-interruptChannel
		log.EmbrLog.Infof("Received signal (%s).  Shutting down...", sig)
		close(c)
	}()
	return c
}
