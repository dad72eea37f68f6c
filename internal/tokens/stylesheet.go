package tokens

import (
	"fmt"
	"strings"
	"sync"
)

var stylesheet = sync.OnceValue(render)

// Stylesheet renders every token as a :root custom property followed by the design
// system utilities the primitives reference. The output is deterministic.
func Stylesheet() string {
	return stylesheet()
}

func varName(parts ...string) string {
	return "--" + strings.ReplaceAll(strings.Join(parts, "-"), ".", "_")
}

func render() string {
	var b strings.Builder

	b.WriteString(":root {\n")
	decl := func(name, value string) { fmt.Fprintf(&b, "  %s: %s;\n", name, value) }
	for _, set := range [][]ColorScale{Colors, SemanticColors} {
		for _, scale := range set {
			for _, t := range scale.Steps {
				decl(varName("color", scale.Name, t.Name), t.Value)
			}
		}
	}
	for _, t := range FontFamilies {
		decl(varName("font", t.Name), t.Value)
	}
	for _, fs := range FontSizes {
		decl(varName("text", fs.Name), fs.Size)
		decl(varName("text", fs.Name, "line-height"), fs.LineHeight)
	}
	for _, t := range FontWeights {
		decl(varName("font-weight", t.Name), t.Value)
	}
	for _, t := range LineHeights {
		decl(varName("leading", t.Name), t.Value)
	}
	for _, t := range LetterSpacing {
		decl(varName("tracking", t.Name), t.Value)
	}
	for _, t := range Spacing {
		decl(varName("spacing", t.Name), t.Value)
	}
	for _, t := range AdminSpacing {
		decl(varName("admin", t.Name), t.Value)
	}
	for _, t := range Shadows {
		decl(varName("shadow", t.Name), t.Value)
	}
	for _, t := range SemanticShadows {
		decl(varName("shadow", t.Name), t.Value)
	}
	for _, t := range Radius {
		decl(varName("radius", t.Name), t.Value)
	}
	for _, t := range ComponentRadius {
		decl(varName("radius", t.Name), t.Value)
	}
	b.WriteString("}\n")

	rule := func(selector string, body ...string) {
		fmt.Fprintf(&b, "%s { %s; }\n", selector, strings.Join(body, "; "))
	}

	for _, set := range [][]ColorScale{Colors, SemanticColors} {
		for _, scale := range set {
			for _, t := range scale.Steps {
				name := scale.Name + "-" + t.Name
				v := "var(" + varName("color", scale.Name, t.Name) + ")"
				rule(".bg-"+name, "background-color: "+v)
				rule(".text-"+name, "color: "+v)
				rule(".border-"+name, "border-color: "+v)
				rule(`.hover\:bg-`+name+":hover", "background-color: "+v)
				rule(`.hover\:text-`+name+":hover", "color: "+v)
				rule(`.active\:bg-`+name+":active", "background-color: "+v)
				rule(`.focus\:border-`+name+":focus", "border-color: "+v)
			}
		}
	}

	for _, ts := range TextStyles {
		body := []string{"font-size: " + ts.Size, "line-height: " + ts.LineHeight, "font-weight: " + ts.Weight}
		if ts.Tracking != "" {
			body = append(body, "letter-spacing: "+ts.Tracking)
		}
		if ts.Family != "" {
			body = append(body, "font-family: "+ts.Family)
		}
		rule(".text-"+ts.Name, body...)
	}

	for _, t := range SemanticShadows {
		v := "box-shadow: var(" + varName("shadow", t.Name) + ")"
		rule(".shadow-"+t.Name, v)
		rule(`.hover\:shadow-`+t.Name+":hover", v)
	}
	for _, t := range ComponentRadius {
		rule(".rounded-"+t.Name, "border-radius: var("+varName("radius", t.Name)+")")
	}

	rule(".w-sidebar", "width: var(--admin-sidebar-width)")
	rule(".w-sidebar-collapsed", "width: var(--admin-sidebar-collapsed)")
	rule(".h-topbar", "height: var(--admin-topbar-height)")
	rule(".admin-layout", "display: grid", "grid-template-columns: auto 1fr", "min-height: 100vh")
	rule(".admin-sidebar",
		"width: var(--admin-sidebar-width)",
		"background-color: var(--color-admin-sidebar)",
		"color: var(--color-text-inverse)",
		"transition: width 200ms ease-in-out")
	rule(".admin-sidebar-collapsed", "width: var(--admin-sidebar-collapsed)")
	rule(".admin-topbar",
		"height: var(--admin-topbar-height)",
		"background-color: var(--color-admin-topbar)",
		"border-bottom: 1px solid var(--color-border-primary)",
		"box-shadow: var(--shadow-sm)")
	rule(".admin-content",
		"background-color: var(--color-admin-content)",
		"padding: var(--admin-content-padding)",
		"overflow: auto")
	rule(".admin-card",
		"background-color: var(--color-admin-card)",
		"border-radius: var(--radius-card)",
		"box-shadow: var(--shadow-card)",
		"border: 1px solid var(--color-border-primary)")
	rule(".admin-card-hover:hover", "box-shadow: var(--shadow-card-hover)")
	rule(".focus-ring:focus", "outline: none", "box-shadow: var(--shadow-focus)")
	rule(".focus-ring-error:focus", "outline: none", "box-shadow: var(--shadow-focus-error)")
	rule(".focus-ring-success:focus", "outline: none", "box-shadow: var(--shadow-focus-success)")

	return b.String()
}
