package apiv1

import (
	"net/http"
	"os"
)

// handleExport serves the admin file exactly as stored, so game servers
// can consume it directly. It reads the file without coordinating with
// the store; the store's rename-into-place saves guarantee the bytes
// read are always a complete snapshot.
func (a APIv1) handleExport(w http.ResponseWriter, r *http.Request) {
	content, err := os.ReadFile(a.Storer.Path())
	if os.IsNotExist(err) {
		w.Header().Set("content-type", "text/plain")
		w.WriteHeader(http.StatusNotFound)
		_, err = w.Write([]byte("not found"))
		if err != nil {
			a.Log.WithError(err).Error("Error writing response")
		}
		return
	}
	if err != nil {
		a.Log.WithError(err).Error("Error reading admin file")
		w.Header().Set("content-type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("content-type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(content)
	if err != nil {
		a.Log.WithError(err).Error("Error writing response")
	}
}
