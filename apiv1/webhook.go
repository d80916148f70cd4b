package apiv1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hashicorp/go-uuid"
	yall "yall.in"

	admins "github.com/Le4nar/WLBot"
)

// handleWebhook ingests one grant request. Validation and persistence
// failures both surface as a 400 with the failure text; a profile
// lookup failure doesn't fail the request, and notification delivery is
// not waited on.
func (a APIv1) handleWebhook(w http.ResponseWriter, r *http.Request) {
	log := a.Log
	requestID, err := uuid.GenerateUUID()
	if err == nil {
		log = log.WithField("request_id", requestID)
	}
	ctx := yall.InContext(r.Context(), log)

	var body webhookRequest
	dec := json.NewDecoder(r.Body)
	err = dec.Decode(&body)
	if err != nil {
		log.WithError(err).Debug("Error decoding webhook body")
		a.returnStatus(w, http.StatusBadRequest, webhookResponse{
			Status:  "error",
			Message: "invalid request body",
		})
		return
	}

	steamID := scalarString(body.SteamID)
	userID := scalarString(body.UserID)
	admin, err := a.GrantSeeder(ctx, steamID, userID)
	if err != nil {
		if !errors.Is(err, admins.ErrNoSteamID) {
			log.WithError(err).Error("Error granting seeder access")
		}
		a.returnStatus(w, http.StatusBadRequest, webhookResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	log.WithField("steam_id", admin.SteamID).WithField("expires", admin.ExpiresAt).Debug("Webhook grant complete")
	a.returnStatus(w, http.StatusOK, webhookResponse{Status: "success"})
}
