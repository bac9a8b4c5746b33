package chartjs

import (
	"sync"

	"github.com/RafaLima14028/CoinFlow/internal/domain/model"
)

// Palette holds the per-theme colors applied to the chart configuration.
type Palette struct {
	Accent        string
	AccentFill    string
	TextPrimary   string
	TextSecondary string
	Border        string
}

var palettes = map[model.Theme]Palette{
	model.ThemeLight: {
		Accent:        "#2563eb",
		AccentFill:    "rgba(37, 99, 235, 0.2)",
		TextPrimary:   "#1f2937",
		TextSecondary: "#6b7280",
		Border:        "#e5e7eb",
	},
	model.ThemeDark: {
		Accent:        "#60a5fa",
		AccentFill:    "rgba(96, 165, 250, 0.2)",
		TextPrimary:   "#f9fafb",
		TextSecondary: "#9ca3af",
		Border:        "#374151",
	},
}

func paletteFor(theme model.Theme) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[model.ThemeLight]
}

// Config is the line-chart configuration the browser's charting
// collaborator consumes verbatim; the json tags are its field names.
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor"`
	BackgroundColor string    `json:"backgroundColor"`
	BorderWidth     int       `json:"borderWidth"`
	Fill            bool      `json:"fill"`
	Tension         float64   `json:"tension"`
}

type Options struct {
	Responsive          bool    `json:"responsive"`
	MaintainAspectRatio bool    `json:"maintainAspectRatio"`
	Scales              Scales  `json:"scales"`
	Plugins             Plugins `json:"plugins"`
}

type Scales struct {
	X Axis `json:"x"`
	Y Axis `json:"y"`
}

type Axis struct {
	Ticks Colored `json:"ticks"`
	Grid  Colored `json:"grid"`
}

type Colored struct {
	Color string `json:"color"`
}

type Plugins struct {
	Legend Legend `json:"legend"`
}

type Legend struct {
	Labels Colored `json:"labels"`
}

// Renderer owns the widget's single live chart configuration. Create
// disposes any previous instance before building the next one, so at most
// one instance exists at a time; Restyle recolors the live instance in
// place without touching its data.
type Renderer struct {
	mu   sync.Mutex
	live *Config
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Create(label string, labels []string, points []float64, theme model.Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.live = nil // dispose the previous instance first

	p := paletteFor(theme)
	r.live = &Config{
		Type: "line",
		Data: Data{
			Labels: labels,
			Datasets: []Dataset{{
				Label:           label,
				Data:            points,
				BorderColor:     p.Accent,
				BackgroundColor: p.AccentFill,
				BorderWidth:     2,
				Fill:            true,
				Tension:         0.4,
			}},
		},
		Options: Options{
			Responsive:          true,
			MaintainAspectRatio: false,
			Scales: Scales{
				X: Axis{Ticks: Colored{p.TextSecondary}, Grid: Colored{p.Border}},
				Y: Axis{Ticks: Colored{p.TextSecondary}, Grid: Colored{p.Border}},
			},
			Plugins: Plugins{
				Legend: Legend{Labels: Colored{p.TextPrimary}},
			},
		},
	}
}

func (r *Renderer) Restyle(theme model.Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.live == nil {
		return
	}

	p := paletteFor(theme)
	r.live.Data.Datasets[0].BorderColor = p.Accent
	r.live.Data.Datasets[0].BackgroundColor = p.AccentFill
	r.live.Options.Scales.X.Ticks.Color = p.TextSecondary
	r.live.Options.Scales.X.Grid.Color = p.Border
	r.live.Options.Scales.Y.Ticks.Color = p.TextSecondary
	r.live.Options.Scales.Y.Grid.Color = p.Border
	r.live.Options.Plugins.Legend.Labels.Color = p.TextPrimary
}

func (r *Renderer) Dispose() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live = nil
}

// Config returns the live configuration, or false when no chart is live.
func (r *Renderer) Config() (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.live == nil {
		return nil, false
	}

	// Snapshot the dataset slice so a later Restyle cannot mutate a
	// configuration already handed to a caller.
	cfg := *r.live
	cfg.Data.Datasets = append([]Dataset(nil), r.live.Data.Datasets...)
	return cfg, true
}
