package tokens

// Radius is the border radius scale.
var Radius = Scale{
	{"none", "0px"},
	{"sm", "0.125rem"},
	{"base", "0.25rem"},
	{"md", "0.375rem"},
	{"lg", "0.5rem"},
	{"xl", "0.75rem"},
	{"2xl", "1rem"},
	{"3xl", "1.5rem"},
	{"full", "9999px"},
}

// ComponentRadius names the radius each primitive uses.
var ComponentRadius = Scale{
	{"button", mustLookup(Radius, "md")},
	{"input", mustLookup(Radius, "md")},
	{"card", mustLookup(Radius, "lg")},
	{"badge", mustLookup(Radius, "full")},
	{"avatar", mustLookup(Radius, "full")},
	{"modal", mustLookup(Radius, "xl")},
	{"dropdown", mustLookup(Radius, "lg")},
}
