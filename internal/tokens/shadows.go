package tokens

// Shadows is the base elevation scale plus coloured variants.
var Shadows = Scale{
	{"none", "none"},
	{"sm", "0 1px 2px 0 rgb(0 0 0 / 0.05)"},
	{"base", "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)"},
	{"md", "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)"},
	{"lg", "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)"},
	{"xl", "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)"},
	{"2xl", "0 25px 50px -12px rgb(0 0 0 / 0.25)"},
	{"inner", "inset 0 2px 4px 0 rgb(0 0 0 / 0.05)"},
	{"primary", "0 4px 6px -1px rgb(59 130 246 / 0.15), 0 2px 4px -2px rgb(59 130 246 / 0.15)"},
	{"success", "0 4px 6px -1px rgb(34 197 94 / 0.15), 0 2px 4px -2px rgb(34 197 94 / 0.15)"},
	{"warning", "0 4px 6px -1px rgb(245 158 11 / 0.15), 0 2px 4px -2px rgb(245 158 11 / 0.15)"},
	{"error", "0 4px 6px -1px rgb(239 68 68 / 0.15), 0 2px 4px -2px rgb(239 68 68 / 0.15)"},
}

// SemanticShadows aliases the base scale for components, elevation levels and focus rings.
var SemanticShadows = Scale{
	{"elevation-1", mustLookup(Shadows, "sm")},
	{"elevation-2", mustLookup(Shadows, "base")},
	{"elevation-3", mustLookup(Shadows, "md")},
	{"elevation-4", mustLookup(Shadows, "lg")},
	{"elevation-5", mustLookup(Shadows, "xl")},
	{"elevation-6", mustLookup(Shadows, "2xl")},
	{"card", mustLookup(Shadows, "base")},
	{"card-hover", mustLookup(Shadows, "md")},
	{"button", mustLookup(Shadows, "sm")},
	{"button-hover", mustLookup(Shadows, "base")},
	{"dropdown", mustLookup(Shadows, "lg")},
	{"modal", mustLookup(Shadows, "2xl")},
	{"tooltip", mustLookup(Shadows, "md")},
	{"focus", "0 0 0 3px rgb(59 130 246 / 0.1)"},
	{"focus-error", "0 0 0 3px rgb(239 68 68 / 0.1)"},
	{"focus-success", "0 0 0 3px rgb(34 197 94 / 0.1)"},
}
