package classmerge

import (
	"strings"
	"unicode"
)

// standalone utilities that carry no value segment.
var standaloneGroups = map[string]string{
	"block":        "display",
	"inline-block": "display",
	"inline":       "display",
	"flex":         "display",
	"inline-flex":  "display",
	"grid":         "display",
	"inline-grid":  "display",
	"table":        "display",
	"contents":     "display",
	"hidden":       "display",
	"flow-root":    "display",

	"static":   "position",
	"fixed":    "position",
	"absolute": "position",
	"relative": "position",
	"sticky":   "position",

	"visible":   "visibility",
	"invisible": "visibility",
	"collapse":  "visibility",

	"underline":    "text-decoration",
	"overline":     "text-decoration",
	"line-through": "text-decoration",
	"no-underline": "text-decoration",

	"uppercase":   "text-transform",
	"lowercase":   "text-transform",
	"capitalize":  "text-transform",
	"normal-case": "text-transform",

	"italic":     "font-style",
	"not-italic": "font-style",

	"truncate": "text-overflow",

	"sr-only":     "sr",
	"not-sr-only": "sr",

	"antialiased":          "font-smoothing",
	"subpixel-antialiased": "font-smoothing",
}

type valueClassifier func(value string) string

// prefixGroups maps a utility prefix to either a fixed group or a value classifier.
var prefixGroups = map[string]valueClassifier{
	"p":  fixed("p"),
	"px": fixed("px"),
	"py": fixed("py"),
	"pt": fixed("pt"),
	"pr": fixed("pr"),
	"pb": fixed("pb"),
	"pl": fixed("pl"),
	"ps": fixed("ps"),
	"pe": fixed("pe"),
	"m":  fixed("m"),
	"mx": fixed("mx"),
	"my": fixed("my"),
	"mt": fixed("mt"),
	"mr": fixed("mr"),
	"mb": fixed("mb"),
	"ml": fixed("ml"),
	"ms": fixed("ms"),
	"me": fixed("me"),

	"space-x": fixed("space-x"),
	"space-y": fixed("space-y"),
	"gap":     fixed("gap"),
	"gap-x":   fixed("gap-x"),
	"gap-y":   fixed("gap-y"),

	"w":     fixed("w"),
	"min-w": fixed("min-w"),
	"max-w": fixed("max-w"),
	"h":     fixed("h"),
	"min-h": fixed("min-h"),
	"max-h": fixed("max-h"),
	"size":  fixed("size"),

	"inset":   fixed("inset"),
	"inset-x": fixed("inset-x"),
	"inset-y": fixed("inset-y"),
	"top":     fixed("top"),
	"right":   fixed("right"),
	"bottom":  fixed("bottom"),
	"left":    fixed("left"),
	"z":       fixed("z"),

	"overflow":   fixed("overflow"),
	"overflow-x": fixed("overflow-x"),
	"overflow-y": fixed("overflow-y"),

	"flex":          classifyFlex,
	"basis":         fixed("basis"),
	"grow":          fixed("grow"),
	"shrink":        fixed("shrink"),
	"order":         fixed("order"),
	"grid-cols":     fixed("grid-cols"),
	"grid-rows":     fixed("grid-rows"),
	"col-span":      fixed("col-span"),
	"row-span":      fixed("row-span"),
	"items":         fixed("align-items"),
	"justify":       fixed("justify-content"),
	"self":          fixed("align-self"),
	"content":       fixed("align-content"),
	"place-items":   fixed("place-items"),
	"place-content": fixed("place-content"),

	"text":        classifyText,
	"font":        classifyFont,
	"leading":     fixed("leading"),
	"tracking":    fixed("tracking"),
	"whitespace":  fixed("whitespace"),
	"break":       fixed("word-break"),
	"line-clamp":  fixed("line-clamp"),
	"placeholder": fixed("placeholder-color"),
	"decoration":  fixed("decoration"),
	"align":       fixed("vertical-align"),
	"list":        fixed("list-style"),

	"underline-offset": fixed("underline-offset"),

	"bg":      classifyBackground,
	"from":    fixed("gradient-from"),
	"via":     fixed("gradient-via"),
	"to":      fixed("gradient-to"),
	"opacity": fixed("opacity"),
	"fill":    fixed("fill"),
	"stroke":  fixed("stroke"),

	"border":   classifyBorder(""),
	"border-x": classifyBorder("x"),
	"border-y": classifyBorder("y"),
	"border-t": classifyBorder("t"),
	"border-r": classifyBorder("r"),
	"border-b": classifyBorder("b"),
	"border-l": classifyBorder("l"),
	"border-s": classifyBorder("s"),
	"border-e": classifyBorder("e"),

	"divide-x": fixed("divide-x"),
	"divide-y": fixed("divide-y"),

	"rounded":    fixed("rounded"),
	"rounded-t":  fixed("rounded-t"),
	"rounded-r":  fixed("rounded-r"),
	"rounded-b":  fixed("rounded-b"),
	"rounded-l":  fixed("rounded-l"),
	"rounded-tl": fixed("rounded-tl"),
	"rounded-tr": fixed("rounded-tr"),
	"rounded-br": fixed("rounded-br"),
	"rounded-bl": fixed("rounded-bl"),

	"shadow":         fixed("shadow"),
	"ring":           classifyRing("ring"),
	"ring-offset":    classifyRing("ring-offset"),
	"outline":        classifyOutline,
	"outline-offset": fixed("outline-offset"),

	"transition": fixed("transition"),
	"duration":   fixed("duration"),
	"ease":       fixed("ease"),
	"delay":      fixed("delay"),
	"animate":    fixed("animate"),

	"translate-x": fixed("translate-x"),
	"translate-y": fixed("translate-y"),
	"rotate":      fixed("rotate"),
	"scale":       fixed("scale"),
	"origin":      fixed("transform-origin"),

	"cursor":         fixed("cursor"),
	"select":         fixed("user-select"),
	"pointer-events": fixed("pointer-events"),
	"resize":         fixed("resize"),
	"object":         fixed("object-fit"),
	"aspect":         fixed("aspect"),
}

// conflictingGroups lists the narrower groups a wider group overrides when it comes later.
var conflictingGroups = map[string][]string{
	"p":  {"px", "py", "pt", "pr", "pb", "pl", "ps", "pe"},
	"px": {"pr", "pl"},
	"py": {"pt", "pb"},
	"m":  {"mx", "my", "mt", "mr", "mb", "ml", "ms", "me"},
	"mx": {"mr", "ml"},
	"my": {"mt", "mb"},

	"size":     {"w", "h"},
	"gap":      {"gap-x", "gap-y"},
	"overflow": {"overflow-x", "overflow-y"},

	"inset":   {"inset-x", "inset-y", "top", "right", "bottom", "left"},
	"inset-x": {"right", "left"},
	"inset-y": {"top", "bottom"},

	"rounded":   {"rounded-t", "rounded-r", "rounded-b", "rounded-l", "rounded-tl", "rounded-tr", "rounded-br", "rounded-bl"},
	"rounded-t": {"rounded-tl", "rounded-tr"},
	"rounded-r": {"rounded-tr", "rounded-br"},
	"rounded-b": {"rounded-br", "rounded-bl"},
	"rounded-l": {"rounded-tl", "rounded-bl"},

	"border-w":       {"border-w-x", "border-w-y", "border-w-t", "border-w-r", "border-w-b", "border-w-l", "border-w-s", "border-w-e"},
	"border-w-x":     {"border-w-r", "border-w-l"},
	"border-w-y":     {"border-w-t", "border-w-b"},
	"border-color":   {"border-color-x", "border-color-y", "border-color-t", "border-color-r", "border-color-b", "border-color-l", "border-color-s", "border-color-e"},
	"border-color-x": {"border-color-r", "border-color-l"},
	"border-color-y": {"border-color-t", "border-color-b"},

	"font-size": {"leading"},
}

var (
	baseFontSizes = []string{"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl", "5xl", "6xl", "7xl", "8xl", "9xl"}

	textAlignments = set("left", "center", "right", "justify", "start", "end")
	textWraps      = set("wrap", "nowrap", "balance", "pretty")
	textOverflows  = set("ellipsis", "clip")

	fontWeights = set("thin", "extralight", "light", "normal", "medium", "semibold", "bold", "extrabold", "black")

	borderStyles = set("solid", "dashed", "dotted", "double", "hidden", "none")

	bgSizes       = set("auto", "cover", "contain")
	bgPositions   = set("bottom", "center", "left", "left-bottom", "left-top", "right", "right-bottom", "right-top", "top")
	bgRepeats     = set("repeat", "no-repeat", "repeat-x", "repeat-y", "repeat-round", "repeat-space")
	bgAttachments = set("fixed", "local", "scroll")
	bgClips       = set("clip-border", "clip-padding", "clip-content", "clip-text")

	flexDirections = set("row", "row-reverse", "col", "col-reverse")
	flexWraps      = set("wrap", "wrap-reverse", "nowrap")

	outlineStyles = set("none", "dashed", "dotted", "double", "solid")
)

func fixed(group string) valueClassifier {
	return func(string) string { return group }
}

func set(values ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}

func has(values map[string]struct{}, v string) bool {
	_, ok := values[v]
	return ok
}

func classifyText(value string) string {
	switch {
	case value == "":
		return ""
	case has(textAlignments, value):
		return "text-align"
	case has(textWraps, value):
		return "text-wrap"
	case has(textOverflows, value):
		return "text-overflow"
	case isArbitrary(value):
		if isArbitraryLength(value) {
			return "font-size"
		}
		return "text-color"
	}
	return "text-color"
}

func classifyFont(value string) string {
	if has(fontWeights, value) || isNumeric(value) {
		return "font-weight"
	}
	return "font-family"
}

func classifyFlex(value string) string {
	switch {
	case has(flexDirections, value):
		return "flex-direction"
	case has(flexWraps, value):
		return "flex-wrap"
	}
	return "flex"
}

func classifyBackground(value string) string {
	switch {
	case has(bgSizes, value):
		return "bg-size"
	case has(bgPositions, value):
		return "bg-position"
	case has(bgRepeats, value):
		return "bg-repeat"
	case has(bgAttachments, value):
		return "bg-attachment"
	case has(bgClips, value):
		return "bg-clip"
	case value == "none" || strings.HasPrefix(value, "gradient-"):
		return "bg-image"
	}
	return "bg-color"
}

func classifyBorder(side string) valueClassifier {
	suffix := ""
	if side != "" {
		suffix = "-" + side
	}
	return func(value string) string {
		switch {
		case value == "" || isNumeric(value) || isArbitraryLength(value):
			return "border-w" + suffix
		case side == "" && has(borderStyles, value):
			return "border-style"
		case side == "" && (value == "collapse" || value == "separate"):
			return "border-collapse"
		}
		return "border-color" + suffix
	}
}

func classifyRing(prefix string) valueClassifier {
	return func(value string) string {
		switch {
		case value == "" || isNumeric(value) || isArbitraryLength(value):
			return prefix + "-w"
		case prefix == "ring" && value == "inset":
			return "ring-inset"
		}
		return prefix + "-color"
	}
}

func classifyOutline(value string) string {
	switch {
	case value == "" || has(outlineStyles, value):
		return "outline-style"
	case isNumeric(value) || isArbitraryLength(value):
		return "outline-w"
	}
	return "outline-color"
}

func isNumeric(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if !unicode.IsDigit(r) && r != '.' {
			return false
		}
	}
	return true
}

func isArbitrary(value string) bool {
	return strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]")
}

func isArbitraryLength(value string) bool {
	if !isArbitrary(value) {
		return false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(value, "["), "]")
	inner = strings.TrimPrefix(inner, "length:")
	return inner != "" && (unicode.IsDigit(rune(inner[0])) || inner[0] == '.')
}
