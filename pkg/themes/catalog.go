package themes

import "sort"

// Name is a prompt renderer theme identifier
type Name = string

// DefaultTheme is used whenever the requested theme cannot be resolved
const DefaultTheme Name = "quick-term"

// catalog lists the themes shipped with the prompt renderer. Membership is
// case-sensitive.
var catalog = map[Name]struct{}{
	"1_shell":                  {},
	"M365Princess":             {},
	"agnoster":                 {},
	"agnoster.minimal":         {},
	"agnosterplus":             {},
	"aliens":                   {},
	"amro":                     {},
	"atomic":                   {},
	"atomicBit":                {},
	"avit":                     {},
	"blue-owl":                 {},
	"blueish":                  {},
	"bubbles":                  {},
	"bubblesextra":             {},
	"bubblesline":              {},
	"capr4n":                   {},
	"catppuccin":               {},
	"catppuccin_frappe":        {},
	"catppuccin_latte":         {},
	"catppuccin_macchiato":     {},
	"catppuccin_mocha":         {},
	"cert":                     {},
	"chips":                    {},
	"cinnamon":                 {},
	"clean-detailed":           {},
	"cloud-context":            {},
	"cloud-native-azure":       {},
	"cobalt2":                  {},
	"craver":                   {},
	"darkblood":                {},
	"devious-diamonds":         {},
	"di4am0nd":                 {},
	"dracula":                  {},
	"easy-term":                {},
	"emodipt":                  {},
	"emodipt-extend":           {},
	"fish":                     {},
	"free-ukraine":             {},
	"froczh":                   {},
	"glowsticks":               {},
	"gmay":                     {},
	"grandpa-style":            {},
	"gruvbox":                  {},
	"half-life":                {},
	"honukai":                  {},
	"hotstick.minimal":         {},
	"hul10":                    {},
	"hunk":                     {},
	"huvix":                    {},
	"if_tea":                   {},
	"illusi0n":                 {},
	"iterm2":                   {},
	"jandedobbeleer":           {},
	"jblab_2021":               {},
	"jonnychipz":               {},
	"json":                     {},
	"jtracey93":                {},
	"jv_sitecorian":            {},
	"kali":                     {},
	"kushal":                   {},
	"lambda":                   {},
	"lambdageneration":         {},
	"larserikfinholt":          {},
	"lightgreen":               {},
	"marcduiker":               {},
	"markbull":                 {},
	"material":                 {},
	"microverse-power":         {},
	"mojada":                   {},
	"montys":                   {},
	"mt":                       {},
	"multiverse-neon":          {},
	"negligible":               {},
	"neko":                     {},
	"night-owl":                {},
	"nordtron":                 {},
	"nu4a":                     {},
	"onehalf.minimal":          {},
	"paradox":                  {},
	"pararussel":               {},
	"patriksvensson":           {},
	"peru":                     {},
	"pixelrobots":              {},
	"plague":                   {},
	"poshmon":                  {},
	"powerlevel10k_classic":    {},
	"powerlevel10k_lean":       {},
	"powerlevel10k_modern":     {},
	"powerlevel10k_rainbow":    {},
	"powerline":                {},
	"probua.minimal":           {},
	"pure":                     {},
	"quick-term":               {},
	"remk":                     {},
	"robbyrussell":             {},
	"rudolfs-dark":             {},
	"rudolfs-light":            {},
	"sim-web":                  {},
	"slim":                     {},
	"slimfat":                  {},
	"smoothie":                 {},
	"sonicboom_dark":           {},
	"sonicboom_light":          {},
	"sorin":                    {},
	"space":                    {},
	"spaceship":                {},
	"star":                     {},
	"stelbent-compact.minimal": {},
	"stelbent.minimal":         {},
	"takuya":                   {},
	"the-unnamed":              {},
	"thecyberden":              {},
	"tiwahu":                   {},
	"tokyo":                    {},
	"tokyonight_storm":         {},
	"tonybaloney":              {},
	"uew":                      {},
	"unicorn":                  {},
	"velvet":                   {},
	"wholespace":               {},
	"wopian":                   {},
	"xtoys":                    {},
	"ys":                       {},
	"zash":                     {},
}

// Valid reports whether name is in the catalog
func Valid(name string) bool {
	_, ok := catalog[name]
	return ok
}

// Names returns the catalog sorted alphabetically
func Names() []Name {
	names := make([]Name, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
