package registry

// Static lookup tables. Keys are normalized (lowercase, single spaces);
// Entry fields carry the real upstream codes, dashes included.

// sportAlias folds an alternate sport spelling onto a canonical sport
// key, optionally pinning the league the shorthand implies.
type sportAlias struct {
	sport  string
	league string
}

var sportAliases = map[string]sportAlias{
	"ncaaf":    {sport: "football", league: "college football"},
	"cfb":      {sport: "football", league: "college football"},
	"ncaab":    {sport: "basketball", league: "mens college basketball"},
	"wncaab":   {sport: "basketball", league: "womens college basketball"},
	"ufc":      {sport: "mma", league: "ufc"},
	"formula1": {sport: "racing", league: "f1"},
	"futbol":   {sport: "soccer"},
}

// defaultLeagues supplies the league for single-league sports when the
// caller omits one.
var defaultLeagues = map[string]string{
	"football":   "nfl",
	"basketball": "nba",
	"baseball":   "mlb",
	"hockey":     "nhl",
	"soccer":     "eng.1",
	"mma":        "ufc",
	"golf":       "pga",
	"tennis":     "atp",
	"racing":     "f1",
}

// leagues maps sport -> normalized league key -> entry.
var leagues = map[string]map[string]Entry{
	"football": {
		"nfl":              {Sport: "football", League: "nfl", Weekly: true},
		"college football": {Sport: "football", League: "college-football", Weekly: true},
		"cfl":              {Sport: "football", League: "cfl", Weekly: true},
		"xfl":              {Sport: "football", League: "xfl", Weekly: true},
		"ufl":              {Sport: "football", League: "ufl", Weekly: true},
	},
	"basketball": {
		"nba":                       {Sport: "basketball", League: "nba"},
		"wnba":                      {Sport: "basketball", League: "wnba"},
		"mens college basketball":   {Sport: "basketball", League: "mens-college-basketball"},
		"womens college basketball": {Sport: "basketball", League: "womens-college-basketball"},
	},
	"baseball": {
		"mlb":              {Sport: "baseball", League: "mlb"},
		"college baseball": {Sport: "baseball", League: "college-baseball"},
	},
	"hockey": {
		"nhl": {Sport: "hockey", League: "nhl"},
	},
	"mma": {
		"ufc": {Sport: "mma", League: "ufc"},
	},
	"golf": {
		"pga":  {Sport: "golf", League: "pga"},
		"lpga": {Sport: "golf", League: "lpga"},
	},
	"tennis": {
		"atp": {Sport: "tennis", League: "atp"},
		"wta": {Sport: "tennis", League: "wta"},
	},
	"racing": {
		"f1":      {Sport: "racing", League: "f1"},
		"nascar":  {Sport: "racing", League: "nascar-premier"},
		"indycar": {Sport: "racing", League: "irl"},
	},
	"soccer": soccerLeagues(),
}

// leagueAliases maps sport -> normalized alias -> canonical league key.
var leagueAliases = map[string]map[string]string{
	"football": {
		"ncaaf": "college football",
		"cfb":   "college football",
	},
	"basketball": {
		"ncaab":        "mens college basketball",
		"ncaam":        "mens college basketball",
		"ncaaw":        "womens college basketball",
		"wncaab":       "womens college basketball",
		"college":      "mens college basketball",
		"mens college": "mens college basketball",
	},
	"baseball": {
		"ncaa baseball": "college baseball",
	},
	"racing": {
		"formula 1":   "f1",
		"formula one": "f1",
		"indy":        "indycar",
	},
	"soccer": soccerAliases,
}

// soccerAliases maps common league names to ESPN soccer codes. The
// canonical key for each soccer league is its ESPN code itself.
var soccerAliases = map[string]string{
	// England
	"epl":              "eng.1",
	"premier league":   "eng.1",
	"championship":     "eng.2",
	"league one":       "eng.3",
	"league two":       "eng.4",
	"fa cup":           "eng.fa",
	"efl cup":          "eng.league_cup",
	"community shield": "eng.charity",
	// Spain
	"la liga":      "esp.1",
	"segunda":      "esp.2",
	"copa del rey": "esp.copa_del_rey",
	"supercopa":    "esp.super_cup",
	// Germany
	"bundesliga":   "ger.1",
	"2 bundesliga": "ger.2",
	"dfb pokal":    "ger.dfb_pokal",
	// Italy
	"serie a":      "ita.1",
	"serie b":      "ita.2",
	"coppa italia": "ita.coppa_italia",
	// France
	"ligue 1": "fra.1",
	"ligue 2": "fra.2",
	// Americas
	"mls":               "usa.1",
	"nwsl":              "usa.nwsl",
	"liga mx":           "mex.1",
	"brazilian serie a": "bra.1",
	"argentina primera": "arg.1",
	// UEFA / FIFA
	"champions league":  "uefa.champions",
	"ucl":               "uefa.champions",
	"europa league":     "uefa.europa",
	"conference league": "uefa.europa.conf",
	"euro":              "uefa.euro",
	"nations league":    "uefa.nations",
	"world cup":         "fifa.world",
	"club world cup":    "fifa.cwc",
	"copa libertadores": "conmebol.libertadores",
	"copa america":      "conmebol.america",
	// Rest of Europe and beyond
	"eredivisie":           "ned.1",
	"primeira liga":        "por.1",
	"scottish premiership": "sco.1",
	"super lig":            "tur.1",
	"saudi pro league":     "sau.1",
	"j league":             "jpn.1",
	"k league":             "kor.1",
	"a league":             "aus.1",
}

func soccerLeagues() map[string]Entry {
	codes := []string{
		"eng.1", "eng.2", "eng.3", "eng.4", "eng.fa", "eng.league_cup", "eng.charity",
		"esp.1", "esp.2", "esp.copa_del_rey", "esp.super_cup",
		"ger.1", "ger.2", "ger.dfb_pokal",
		"ita.1", "ita.2", "ita.coppa_italia",
		"fra.1", "fra.2",
		"usa.1", "usa.nwsl", "mex.1", "bra.1", "arg.1",
		"uefa.champions", "uefa.europa", "uefa.europa.conf", "uefa.euro", "uefa.nations",
		"fifa.world", "fifa.cwc",
		"conmebol.libertadores", "conmebol.america",
		"ned.1", "por.1", "sco.1", "tur.1", "sau.1", "jpn.1", "kor.1", "aus.1",
	}
	table := make(map[string]Entry, len(codes))
	for _, code := range codes {
		table[code] = Entry{Sport: "soccer", League: code}
	}
	return table
}

// conferenceAliases folds league spellings onto conference table keys.
var conferenceAliases = map[string]string{
	"football":                "nfl",
	"college football":        "ncaaf",
	"basketball":              "nba",
	"mens college basketball": "ncaab",
	"baseball":                "mlb",
}

// conferences holds upstream group IDs used by the scoreboard groups
// filter. Names are upper snake case to match lookup normalization.
var conferences = map[string]map[string]int{
	"ncaaf": {
		"FBS": 80, "FCS": 81,
		"SEC": 8, "BIG_TEN": 5, "BIG_12": 4, "ACC": 1, "PAC_12": 9,
		"AAC": 151, "MOUNTAIN_WEST": 17, "SUN_BELT": 37, "MAC": 15,
		"CUSA": 12, "INDEPENDENT": 18, "IVY": 22,
	},
	"ncaab": {
		"SEC": 3, "BIG_TEN": 7, "BIG_12": 8, "ACC": 2, "PAC_12": 21,
		"BIG_EAST": 4, "AAC": 62, "MOUNTAIN_WEST": 44, "ATLANTIC_10": 3,
		"WCC": 26, "MVC": 18, "IVY": 22, "SOUTHERN": 24, "COLONIAL": 10,
		"HORIZON": 48, "MAAC": 45,
	},
	"nfl": {
		"AFC": 1, "NFC": 2,
		"AFC_EAST": 4, "AFC_NORTH": 12, "AFC_SOUTH": 13, "AFC_WEST": 6,
		"NFC_EAST": 1, "NFC_NORTH": 10, "NFC_SOUTH": 8, "NFC_WEST": 7,
	},
	"nba": {
		"EASTERN": 5, "WESTERN": 6,
		"ATLANTIC": 1, "CENTRAL": 2, "SOUTHEAST": 3,
		"NORTHWEST": 4, "PACIFIC": 7, "SOUTHWEST": 8,
	},
	"mlb": {
		"AMERICAN": 1, "NATIONAL": 2,
		"AL_EAST": 3, "AL_CENTRAL": 4, "AL_WEST": 5,
		"NL_EAST": 6, "NL_CENTRAL": 7, "NL_WEST": 8,
	},
}
