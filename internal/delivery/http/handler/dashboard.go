package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const defaultDashboardDays = 30

// HandleDashboard renders a bar chart of posts per archived day. The window
// defaults to the newest 30 days and can be changed with ?days=N.
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	limit := defaultDashboardDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.writeJSONError(w, "days must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	counts, err := h.dayManager.RecentCounts(r.Context(), limit)
	if err != nil {
		slog.Error("Failed to collect day counts", "error", err)
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	days := make([]string, 0, len(counts))
	values := make([]opts.BarData, 0, len(counts))
	for _, c := range counts {
		days = append(days, c.Day)
		values = append(values, opts.BarData{Value: c.Posts})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Front page posts per day"}))
	bar.SetXAxis(days).AddSeries("Posts", values)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := bar.Render(w); err != nil {
		slog.Error("Failed to render dashboard", "error", err)
	}
}
