package workers

import (
	"github.com/MKhiriev/lost-and-found/internal/config"
	"github.com/MKhiriev/lost-and-found/internal/logger"
	"github.com/MKhiriev/lost-and-found/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers enabled by the configuration.
// A zero purge interval disables the purge worker.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	ws := new(Workers)

	if cfg.PurgeInterval > 0 {
		ws.workers = append(ws.workers, NewPurgeWorker(
			storages.ResetTokenRepository,
			storages.SessionRepository,
			cfg.PurgeInterval,
			logger,
		))
	}

	return ws
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
