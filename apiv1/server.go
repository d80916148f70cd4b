package apiv1

import (
	"net/http"

	"darlinggo.co/trout"
)

func (a APIv1) Server(prefix string) http.Handler {
	var router trout.Router
	router.SetPrefix(prefix)

	router.Endpoint("/webhook").Methods("POST").Handler(http.HandlerFunc(a.handleWebhook))
	router.Endpoint("/data.cfg").Methods("GET").Handler(http.HandlerFunc(a.handleExport))

	return router
}
