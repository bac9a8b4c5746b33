package ports

import "github.com/RafaLima14028/CoinFlow/internal/domain/model"

// ChartRenderer owns the single live chart configuration handed to the
// external charting collaborator. Create must dispose any previous instance
// first; at most one instance is live at any time. Restyle mutates the live
// instance's colors in place without touching its data.
type ChartRenderer interface {
	Create(label string, labels []string, points []float64, theme model.Theme)
	Restyle(theme model.Theme)
	Dispose()
	Config() (any, bool)
}
