package excmd

import "strings"

// nameEntry is one (fullName, abbreviation) pair in the canonical command
// table. An empty abbreviation means the full name is the only accepted
// form.
type nameEntry struct {
	full   string
	abbrev string
}

// commandTable is the closed, ordered table of Vim ex-command names this
// package recognizes. Order matters: Expand returns the first match.
var commandTable = []nameEntry{
	{"close", "clo"},
	{"delete", "d"},
	{"substitute", "s"},
	{"smagic", "sm"},
	{"snomagic", "sno"},
	{"edit", "e"},
	{"quit", "q"},
	{"qall", "qa"},
	{"quitall", "quita"},
	{"wq", ""},
	{"xit", "x"},
	{"exit", "exi"},
	{"yank", "y"},
	{"put", "pu"},
	{"join", "j"},
	{"make", "mak"},
	{"fold", "fo"},
	{"retab", "ret"},
	{"source", "so"},
	{"split", "sp"},
	{"set", "se"},
	{"registers", "reg"},
	{"display", "di"},
	{"marks", "marks"},
	{"tabnext", "tabn"},
	{"tabprevious", "tabp"},
	{"tabNext", "tabN"},
	{"tabfirst", "tabfir"},
	{"tabrewind", "tabr"},
	{"tablast", "tabl"},
	{"nohlsearch", "noh"},
	{"redo", "red"},
	{"undo", "u"},
	{"map", ""},
	{"noremap", "no"},
	{"unmap", "unm"},
	{"mapclear", "mapc"},
	{"nmap", "nm"},
	{"nnoremap", "nn"},
	{"nunmap", "nun"},
	{"nmapclear", "nmapc"},
	{"vmap", "vm"},
	{"vnoremap", "vn"},
	{"vunmap", "vu"},
	{"vmapclear", "vmapc"},
	{"xmap", "xm"},
	{"xnoremap", "xn"},
	{"xunmap", "xu"},
	{"xmapclear", "xmapc"},
	{"smap", "sm"},
	{"snoremap", "snor"},
	{"sunmap", "sunm"},
	{"smapclear", "smapc"},
	{"omap", "om"},
	{"onoremap", "ono"},
	{"ounmap", "ou"},
	{"omapclear", "omapc"},
	{"imap", "im"},
	{"inoremap", "ino"},
	{"iunmap", "iu"},
	{"imapclear", "imapc"},
	{"lmap", "lm"},
	{"lnoremap", "ln"},
	{"lunmap", "lu"},
	{"lmapclear", "lmapc"},
	{"cmap", "cm"},
	{"cnoremap", "cno"},
	{"cunmap", "cu"},
	{"cmapclear", "cmapc"},
	{"/", ""},
	{"?", ""},
	{"<", ""},
	{">", ""},
	{"&", ""},
	{"~", ""},
}

// Expand implements §4.C6's expand(input): the first full name F such that
// input equals F, or input is a non-empty prefix of F that extends
// abbrev(F). Input that matches nothing is returned unchanged.
func Expand(input string) string {
	for _, e := range commandTable {
		if input == e.full {
			return e.full
		}
		if e.abbrev == "" {
			continue
		}
		if strings.HasPrefix(input, e.abbrev) && strings.HasPrefix(e.full, input) {
			return e.full
		}
	}
	return input
}
