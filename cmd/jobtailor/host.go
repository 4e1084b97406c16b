package main

import (
	"os"

	"github.com/fwojciec/jobtailor/goquery"
	"github.com/fwojciec/jobtailor/nativemsg"
	"github.com/fwojciec/jobtailor/watch"
)

// Run executes the host command. It speaks the Chrome native-messaging
// protocol on stdin/stdout until the browser closes the pipe, so all
// human-readable output goes to stderr.
func (c *HostCmd) Run(deps *Dependencies) error {
	handler := &nativemsg.Handler{
		Snapshot:      goquery.Snapshot,
		Classifier:    deps.Classifier,
		Extractor:     deps.Extractor,
		Optimizer:     deps.Optimizer,
		Templates:     deps.Templates,
		Registrations: deps.Registrations,
		Settings:      deps.Settings,
		Stats:         deps.Stats,
		History:       deps.History,
	}

	// SPA job boards rewrite the URL without a page load. The extension
	// reports every change; the watcher debounces them and the settled
	// URL is pushed back so the extension re-runs detection once.
	watcher := watch.NewWatcher(func(url string) {
		_ = handler.Notify(os.Stdout, &nativemsg.Response{OK: true, SettledURL: url})
	})
	defer watcher.Close()
	handler.Observe = watcher.Observe

	return handler.Serve(deps.Ctx, os.Stdin, os.Stdout)
}
