package tokens

// ColorScale is a palette ramp from step 50 to step 900.
type ColorScale struct {
	Name  string
	Steps Scale
}

var steps = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

func ramp(name string, hexes ...string) ColorScale {
	scale := make(Scale, len(hexes))
	for i, hex := range hexes {
		scale[i] = Token{Name: steps[i], Value: hex}
	}
	return ColorScale{Name: name, Steps: scale}
}

// Colors are the palette ramps in display order.
var Colors = []ColorScale{
	ramp("primary", "#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"),
	ramp("secondary", "#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a"),
	ramp("success", "#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"),
	ramp("warning", "#fffbeb", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#f59e0b", "#d97706", "#b45309", "#92400e", "#78350f"),
	ramp("error", "#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"),
	ramp("info", "#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63"),
	ramp("neutral", "#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827"),
}

// SemanticColors groups role-based colours. Utility classes are named
// <utility>-<group>-<name>, e.g. bg-background-primary or text-text-muted.
var SemanticColors = []ColorScale{
	{Name: "background", Steps: Scale{
		{"primary", "#ffffff"},
		{"secondary", "#f9fafb"},
		{"tertiary", "#f3f4f6"},
	}},
	{Name: "text", Steps: Scale{
		{"primary", "#111827"},
		{"secondary", "#4b5563"},
		{"muted", "#9ca3af"},
		{"inverse", "#ffffff"},
	}},
	{Name: "border", Steps: Scale{
		{"primary", "#e5e7eb"},
		{"secondary", "#d1d5db"},
		{"focus", "#3b82f6"},
	}},
	{Name: "admin", Steps: Scale{
		{"sidebar", "#1e293b"},
		{"topbar", "#ffffff"},
		{"content", "#f9fafb"},
		{"card", "#ffffff"},
	}},
}

// Color returns the hex value of group-name, for example Color("primary", "500") or
// Color("text", "muted").
func Color(group, name string) (string, bool) {
	for _, set := range [][]ColorScale{Colors, SemanticColors} {
		for _, scale := range set {
			if scale.Name == group {
				return scale.Steps.Lookup(name)
			}
		}
	}
	return "", false
}

// Swatch is a single palette entry.
type Swatch struct {
	Scale string
	Step  string
	Hex   string
}

// Palette flattens Colors into swatches in display order.
func Palette() []Swatch {
	out := make([]Swatch, 0, len(Colors)*len(steps))
	for _, scale := range Colors {
		for _, t := range scale.Steps {
			out = append(out, Swatch{Scale: scale.Name, Step: t.Name, Hex: t.Value})
		}
	}
	return out
}
