package wowchunk

// ClientVersion selects the client generation to assume when working with
// format definitions. Remastered classic clients sit next to their closest
// retail relative.
type ClientVersion int

const (
	VersionClassic ClientVersion = 0
	VersionTBC     ClientVersion = 10
	VersionWotLK   ClientVersion = 20
	VersionCata    ClientVersion = 30
	VersionMoP     ClientVersion = 40
	VersionWoD     ClientVersion = 50
	VersionLegion  ClientVersion = 60
	VersionBfA     ClientVersion = 70
	VersionSL      ClientVersion = 80
	VersionDF      ClientVersion = 90

	VersionClassicNew ClientVersion = 71
	VersionTBCNew     ClientVersion = 81
	VersionWotLKNew   ClientVersion = 91

	// VersionAny marks a feature present in every client since its introduction.
	VersionAny ClientVersion = 100000
)

// ClientLocale is a client localization option. A superset over all versions.
type ClientLocale int

const (
	LocaleEnGB ClientLocale = iota
	LocaleEnUS
	LocaleDeDE
	LocaleKoKR
	LocaleFrFR
	LocaleZhCN
	LocaleZhTW
	LocaleEsES
	LocaleEsMX
	LocaleRuRU
	LocaleAuto
)

var localeStrings = [...]string{
	"enGB", "enUS", "deDE", "koKR", "frFR", "zhCN", "zhTW", "esES", "esMX", "ruRU",
}

// String returns the locale code as it appears in client data paths.
func (l ClientLocale) String() string {
	if l < 0 || int(l) >= len(localeStrings) {
		return "auto"
	}
	return localeStrings[l]
}
