// Package apiv1 is the HTTP surface of the bot: the webhook that
// ingests grant requests and the raw export of the admin file.
package apiv1

import (
	"encoding/json"
	"net/http"
	"strconv"

	admins "github.com/Le4nar/WLBot"
)

// APIv1 serves the bot's HTTP endpoints using the collaborators wired
// into its Dependencies.
type APIv1 struct {
	admins.Dependencies
}

type webhookRequest struct {
	SteamID json.RawMessage `json:"steam_id"`
	UserID  json.RawMessage `json:"user_id"`
}

type webhookResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (a APIv1) returnStatus(w http.ResponseWriter, code int, resp webhookResponse) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	err := enc.Encode(resp)
	if err != nil {
		a.Log.WithError(err).Error("Error writing response")
	}
}

// scalarString renders a JSON scalar the way the webhook contract
// expects it: strings verbatim, numbers and booleans in their literal
// form. Absent fields, null, objects, and arrays all come out empty.
func scalarString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		return num.String()
	}
	var boolean bool
	if err := json.Unmarshal(raw, &boolean); err == nil {
		return strconv.FormatBool(boolean)
	}
	return ""
}
