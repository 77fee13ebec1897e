package httpapi

import (
	"net/http"

	"github.com/coastwatch/sea-level-service/internal/dataset"
	"github.com/coastwatch/sea-level-service/internal/domain"
	"github.com/coastwatch/sea-level-service/internal/export"
)

type seriesResponse struct {
	BaselineYear int                  `json:"baseline_year"`
	Points       []domain.SeriesPoint `json:"points"`
}

type sitesResponse struct {
	Sites   []domain.DamageSite `json:"sites"`
	MapView domain.MapView      `json:"map_view"`
}

type mentalHealthResponse struct {
	SymptomTrends []domain.SymptomTrend `json:"symptom_trends"`
	DailyImpacts  []domain.DailyImpact  `json:"daily_impacts"`
}

type projectionsResponse struct {
	Projections         []domain.Projection `json:"projections"`
	RiskThresholdCM     float64             `json:"risk_threshold_cm"`
	DisasterThresholdCM float64             `json:"disaster_threshold_cm"`
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	points, err := s.catalog.Series()
	if err != nil {
		s.logger.Error("series build failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, seriesResponse{
		BaselineYear: dataset.BaselineYear,
		Points:       points,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.catalog.Summary()
	if err != nil {
		s.logger.Error("summary build failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleSeriesCSV(w http.ResponseWriter, r *http.Request) {
	points, err := s.catalog.Series()
	if err != nil {
		s.logger.Error("series build failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.DefaultFilename+`"`)
	if err := export.WriteCSV(w, points); err != nil {
		// Headers are gone; all we can do is log.
		s.logger.Error("csv export failed", "error", err)
		return
	}
	s.metrics.CSVExports.Inc()
}

func (s *Server) handleSites(w http.ResponseWriter, r *http.Request) {
	coast := r.URL.Query().Get("coast")
	if coast != "" && !domain.ValidCoast(coast) {
		writeError(w, http.StatusBadRequest, "unknown coast: "+coast)
		return
	}

	view := dataset.DefaultMapView()
	for _, v := range dataset.MapViews() {
		if v.Coast == domain.Coast(coast) {
			view = v
			break
		}
	}

	writeJSON(w, http.StatusOK, sitesResponse{
		Sites:   s.catalog.Sites(domain.Coast(coast)),
		MapView: view,
	})
}

func (s *Server) handleMentalHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, mentalHealthResponse{
		SymptomTrends: dataset.SymptomTrends(),
		DailyImpacts:  dataset.DailyImpacts(),
	})
}

func (s *Server) handleProjections(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, projectionsResponse{
		Projections:         dataset.Projections(),
		RiskThresholdCM:     domain.RiskThresholdCM,
		DisasterThresholdCM: domain.DisasterThresholdCM,
	})
}

func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request) {
	if s.publisher == nil {
		writeError(w, http.StatusNotImplemented, "snapshot publishing is disabled")
		return
	}

	snapshot, err := s.catalog.Snapshot()
	if err != nil {
		s.logger.Error("snapshot build failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := s.publisher.PublishSnapshot(r.Context(), snapshot); err != nil {
		s.logger.Error("snapshot publish failed", "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]any{
		"status": "published",
		"points": len(snapshot.Points),
	})
}
